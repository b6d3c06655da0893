// Package builder assembles labeled text sections into a prompt whose
// total character length never exceeds a fixed budget.
//
// Length-constrained backends reject or silently truncate oversized
// inputs; the builder enforces the limit up front instead. Each section
// offered to the builder either fits whole, fits partially through a
// pluggable extraction strategy, or is rejected.
//
// # Basic Usage
//
//	b := builder.New(4096)
//	ok, err := b.Add(section.New("system", systemPrompt))
//	ok, err = b.AddText(userMessage)
//	text := b.Prompt().Render("\n\n")
//
// Rejection for capacity is signaled by the boolean, not an error:
//
//	ok, err := b.Add(s)
//	if err != nil {
//	    // nil section: a bug at the call site
//	}
//	if !ok {
//	    // did not fit: stop adding, or try a shorter variant
//	}
//
// # Partial Fits
//
// With an extractor configured, a section that does not fit whole is
// shortened to the remaining budget and appended under its original
// source tag:
//
//	b := builder.New(4096, builder.WithExtractor(extract.Boundary))
//
// The extractor must honor its contract of returning at most maxLen
// characters; the builder does not re-validate.
//
// # Model Budgets
//
// Budgets can be derived from a model's context window:
//
//	b := builder.NewForModel("claude-sonnet-4")
//
// # Length Accounting
//
// All lengths are raw character counts (Unicode code points). There is
// no tokenizer awareness; use the tokens package to size budgets against
// token limits.
package builder
