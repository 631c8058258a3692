package risk

import (
	"encoding/json"
	"fmt"
)

// QuestionType distinguishes how a question is answered
type QuestionType string

const (
	QuestionText   QuestionType = "text"
	QuestionRadio  QuestionType = "radio"
	QuestionSelect QuestionType = "select"
)

// QuestionOption is one selectable answer. Value is a number for scored
// radio options and a string for select options.
type QuestionOption struct {
	Text  string      `json:"text"`
	Value interface{} `json:"value"`
}

// Question is one questionnaire entry
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Type    QuestionType     `json:"type"`
	Options []QuestionOption `json:"options"`
}

// AnswerValue is a submitted answer, either numeric or textual. The client
// sends whichever shape the question asked for; both are accepted here and
// the engine decides which side it reads.
type AnswerValue struct {
	Number *float64
	Text   string
}

// UnmarshalJSON accepts a JSON number or string
func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		a.Number = &num
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		a.Text = str
		return nil
	}

	return fmt.Errorf("answer must be a number or a string, got %s", string(data))
}

// MarshalJSON renders whichever side is set
func (a AnswerValue) MarshalJSON() ([]byte, error) {
	if a.Number != nil {
		return json.Marshal(*a.Number)
	}
	return json.Marshal(a.Text)
}

// AnswerSet maps question IDs to submitted answers
type AnswerSet map[string]AnswerValue
