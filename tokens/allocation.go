package tokens

// DefaultSystemPercent is the default share for system prompts.
const DefaultSystemPercent = 20

// DefaultContextPercent is the default share for context.
const DefaultContextPercent = 40

// DefaultUserPercent is the default share for user messages.
const DefaultUserPercent = 30

// DefaultReservedPercent is the default share reserved for the response.
const DefaultReservedPercent = 10

// Allocation splits a total character budget across the standard prompt
// components. Each share can seed its own builder:
//
//	alloc := tokens.NewAllocation(tokens.CharBudget("claude-sonnet-4"))
//	sys := builder.New(alloc.System)
//	ctx := builder.New(alloc.Context)
type Allocation struct {
	// Total is the full character budget.
	Total int

	// System is the character budget for system prompts.
	System int

	// Context is the character budget for task context, history, etc.
	Context int

	// User is the character budget for user messages.
	User int

	// Reserved is the character budget held back for the response.
	Reserved int
}

// NewAllocation splits total proportionally using the default shares:
// 20% system, 40% context, 30% user, 10% reserved.
func NewAllocation(total int) Allocation {
	return NewAllocationWithShares(total,
		DefaultSystemPercent, DefaultContextPercent,
		DefaultUserPercent, DefaultReservedPercent)
}

// NewAllocationWithShares splits total using relative weights, which are
// normalized. For example, (100000, 20, 40, 30, 10) allocates 20% to
// system, 40% to context, 30% to user and 10% reserved.
func NewAllocationWithShares(total, system, context, user, reserved int) Allocation {
	sum := system + context + user + reserved
	if sum == 0 {
		sum = 100
	}
	return Allocation{
		Total:    total,
		System:   total * system / sum,
		Context:  total * context / sum,
		User:     total * user / sum,
		Reserved: total * reserved / sum,
	}
}

// Remaining returns the characters left from the total after the given
// amounts were used, keeping the reserved share intact. Never negative.
func (a Allocation) Remaining(systemUsed, contextUsed, userUsed int) int {
	remaining := a.Total - systemUsed - contextUsed - userUsed - a.Reserved
	if remaining < 0 {
		return 0
	}
	return remaining
}
