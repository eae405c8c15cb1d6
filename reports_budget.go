package spendwise

// BudgetTier is the qualitative label derived from the share of the monthly
// budget already consumed.
type BudgetTier int

const (
	OnTrack     BudgetTier = iota // at most 80% consumed
	AlmostThere                   // above 80%, up to 100%
	OverBudget                    // above 100%
)

func (t BudgetTier) String() string {
	switch t {
	case OnTrack:
		return "On Track"
	case AlmostThere:
		return "Almost There"
	case OverBudget:
		return "Over Budget"
	default:
		return "unknown"
	}
}

// BudgetStatus relates the amount spent over a period to the monthly budget.
type BudgetStatus struct {
	Budget    Money
	Spent     Money
	Remaining Money   // Budget - Spent, not clamped: negative when over budget
	Used      Percent // share of budget consumed, capped at 100
	Tier      BudgetTier
}

// NewBudgetStatus computes the budget consumption status. A zero or negative
// budget reports 0% used and stays OnTrack, guarding the division.
func NewBudgetStatus(budget, spent Money) *BudgetStatus {
	status := &BudgetStatus{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Sub(spent),
	}
	if !budget.IsPositive() {
		return status
	}

	used := spent.Amount().Div(budget.Amount()).InexactFloat64() * 100
	switch {
	case used > 100:
		status.Tier = OverBudget
	case used > 80:
		status.Tier = AlmostThere
	default:
		status.Tier = OnTrack
	}
	// the reported percentage is capped, the tier is computed from the raw ratio
	if used > 100 {
		used = 100
	}
	status.Used = Percent(used)
	return status
}
