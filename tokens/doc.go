// Package tokens provides character counting, token estimation, and
// model context-window limits for sizing prompt budgets.
//
// Prompt assembly budgets in raw characters, but model limits are
// published in tokens. This package bridges the two.
//
// # Counters
//
// RuneCounter counts exact characters (Unicode code points):
//
//	n := tokens.CountChars("héllo")  // 5
//
// EstimatingCounter converts characters to approximate tokens using a
// ~4 chars/token rule of thumb:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")   // ~3 tokens
//	fits := counter.Fits(text, 1000)          // true if <= 1000 tokens
//
// # Model Limits
//
// Convert a model's context window to a character budget:
//
//	chars := tokens.CharBudget("claude-sonnet-4")  // 200000 tokens * 4
//
// Unknown models fall back to a conservative default window. See
// ModelLimits for the full table.
//
// # Allocation
//
// Split one budget across the standard prompt components:
//
//	alloc := tokens.NewAllocation(100000)
//	// 20% system, 40% context, 30% user, 10% reserved
//	b := builder.New(alloc.Context)
package tokens
