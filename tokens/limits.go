package tokens

// ModelLimits contains context window sizes (in tokens) for common models.
var ModelLimits = map[string]int{
	// Claude 4 models
	"claude-opus-4":   200000,
	"claude-sonnet-4": 200000,

	// Claude 3.5 models
	"claude-3.5-sonnet": 200000,
	"claude-3.5-haiku":  200000,

	// Claude 3 models
	"claude-3-opus":   200000,
	"claude-3-sonnet": 200000,
	"claude-3-haiku":  200000,

	// Default fallback
	"default": 100000,
}

// GetModelLimit returns the token limit for a model, or the default
// window if the model is unknown.
func GetModelLimit(model string) int {
	if limit, ok := ModelLimits[model]; ok {
		return limit
	}
	return ModelLimits["default"]
}

// CharBudget converts a model's context window into a character budget
// using the default chars-per-token ratio. Prompt assembly works in
// characters; this bridges from the token limits providers publish.
func CharBudget(model string) int {
	return CharBudgetWithRatio(model, DefaultCharsPerToken)
}

// CharBudgetWithRatio converts a model's context window into a character
// budget with a custom chars-per-token ratio. If charsPerToken is <= 0,
// the default ratio is used.
func CharBudgetWithRatio(model string, charsPerToken float64) int {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return int(float64(GetModelLimit(model)) * charsPerToken)
}
