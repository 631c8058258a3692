package risk

// questions is the fixed questionnaire. Radio option values are score
// contributions; the preference questions at the end shape portfolio
// construction instead of the risk score.
var questions = []Question{
	{
		ID:   "investmentAmount",
		Text: "What is the approximate amount you plan to invest?",
		Type: QuestionText,
		Options: []QuestionOption{
			{Text: "e.g., 10000", Value: "10000"},
		},
	},
	{
		ID:   "horizon",
		Text: "What is your investment horizon?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "< 2 years", Value: 0},
			{Text: "2-5 years", Value: 15},
			{Text: "5-10 years", Value: 30},
			{Text: "> 10 years", Value: 40},
		},
	},
	{
		ID:   "drawdownTolerance",
		Text: "What is the maximum temporary loss you can accept?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "5%", Value: 0},
			{Text: "10%", Value: 10},
			{Text: "20%", Value: 25},
			{Text: "35%+", Value: 40},
		},
	},
	{
		ID:   "incomeStability",
		Text: "How stable is your current income?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Low stability", Value: 0},
			{Text: "Medium stability", Value: 10},
			{Text: "High stability", Value: 20},
		},
	},
	{
		ID:   "experience",
		Text: "What is your investment experience?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "None", Value: 0},
			{Text: "Basic", Value: 10},
			{Text: "Advanced", Value: 20},
		},
	},
	{
		ID:   "goals",
		Text: "What is your primary goal for this investment?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Capital Preservation (minimize loss)", Value: 0},
			{Text: "Generating regular income", Value: 10},
			{Text: "A balance of growth and income", Value: 20},
			{Text: "Long-term wealth growth", Value: 30},
		},
	},
	{
		ID:   "volatilityReaction",
		Text: "When the market drops 20%, you are most likely to:",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Sell to avoid further losses", Value: 0},
			{Text: "Feel anxious, but do nothing", Value: 10},
			{Text: "Hold and wait for recovery", Value: 15},
			{Text: "See it as an opportunity to buy more", Value: 25},
		},
	},
	{
		ID:   "liquidity",
		Text: "How likely are you to need to withdraw a significant portion (>25%) of these funds in the next 3 years?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Very Likely", Value: 0},
			{Text: "Somewhat Likely", Value: 10},
			{Text: "Unlikely", Value: 20},
		},
	},
	{
		ID:   "sectorPreference",
		Text: "Which sectors are you most interested in?",
		Type: QuestionSelect,
		Options: []QuestionOption{
			{Text: "Any / No Preference", Value: "any"},
			{Text: "Technology", Value: "Technology"},
			{Text: "Healthcare", Value: "Healthcare"},
			{Text: "Financials", Value: "Financials"},
			{Text: "Consumer Discretionary", Value: "Consumer Discretionary"},
			{Text: "Industrials", Value: "Industrials"},
		},
	},
	{
		ID:   "dividendPreference",
		Text: "How important are regular dividend payments to you?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Not important", Value: 0},
			{Text: "Somewhat important", Value: 10},
			{Text: "Very important", Value: 20},
		},
	},
	{
		ID:   "esgFocus",
		Text: "Do you have an interest in companies with high ESG (Environmental, Social, Governance) ratings?",
		Type: QuestionRadio,
		Options: []QuestionOption{
			{Text: "Yes", Value: 1},
			{Text: "No", Value: 0},
		},
	},
}

// Questions returns the questionnaire in presentation order
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
