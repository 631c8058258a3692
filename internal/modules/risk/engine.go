package risk

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/edufolio/edufolio/internal/domain"
)

// Score thresholds separating the risk buckets
const (
	conservativeMax = 45
	balancedMax     = 90
	growthMax       = 140
)

// preferenceQuestions answer towards portfolio construction, not the score.
// dividendPreference and esgFocus are radio questions whose values would
// otherwise leak into the total.
var preferenceQuestions = map[string]bool{
	"dividendPreference": true,
	"esgFocus":           true,
}

// Engine scores questionnaire submissions into a risk bucket
type Engine struct {
	log zerolog.Logger
}

// NewEngine creates a new risk engine
func NewEngine(log zerolog.Logger) *Engine {
	return &Engine{
		log: log.With().Str("service", "risk").Logger(),
	}
}

// Score sums the numeric answers of the scored radio questions. Unanswered
// questions contribute nothing.
func (e *Engine) Score(answers AnswerSet) int {
	total := 0.0
	for _, q := range questions {
		if q.Type != QuestionRadio || preferenceQuestions[q.ID] {
			continue
		}
		if answer, ok := answers[q.ID]; ok && answer.Number != nil {
			total += *answer.Number
		}
	}
	return int(total)
}

// BucketFor maps a score onto its risk bucket
func (e *Engine) BucketFor(score int) domain.RiskBucket {
	switch {
	case score <= conservativeMax:
		return domain.BucketConservative
	case score <= balancedMax:
		return domain.BucketBalanced
	case score <= growthMax:
		return domain.BucketGrowth
	default:
		return domain.BucketAggressive
	}
}

// Preferences extracts the construction-shaping answers
func (e *Engine) Preferences(answers AnswerSet) domain.InvestorPreferences {
	prefs := domain.InvestorPreferences{
		SectorPreference: "any",
	}

	if amount, ok := answers["investmentAmount"]; ok {
		switch {
		case amount.Number != nil:
			prefs.InvestmentAmount = *amount.Number
		case amount.Text != "":
			parsed, err := strconv.ParseFloat(strings.TrimSpace(amount.Text), 64)
			if err != nil {
				e.log.Warn().Str("value", amount.Text).Msg("Unparseable investment amount, using 0")
			} else {
				prefs.InvestmentAmount = parsed
			}
		}
	}
	if prefs.InvestmentAmount < 0 {
		prefs.InvestmentAmount = 0
	}

	if sector, ok := answers["sectorPreference"]; ok && sector.Text != "" {
		prefs.SectorPreference = sector.Text
	}

	if esg, ok := answers["esgFocus"]; ok && esg.Number != nil {
		prefs.ESGFocus = *esg.Number == 1
	}

	return prefs
}

// Evaluate scores the submission and returns the resulting profile and the
// investor's construction preferences.
func (e *Engine) Evaluate(answers AnswerSet) (domain.RiskProfile, domain.InvestorPreferences) {
	score := e.Score(answers)
	bucket := e.BucketFor(score)

	e.log.Info().
		Int("score", score).
		Str("bucket", string(bucket)).
		Msg("Questionnaire scored")

	profile := domain.RiskProfile{
		Score:  score,
		Bucket: bucket,
	}

	return profile, e.Preferences(answers)
}
