package goals

import "github.com/shopspring/decimal"

// Goal is a savings target with a running saved amount and an optional
// deadline.
type Goal struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	Deadline     *string         `json:"deadline"` // YYYY-MM-DD or null
	CreatedAt    string          `json:"created_at"`
}

type CreateRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	SavedAmount  decimal.Decimal `json:"saved_amount"`
	Deadline     *string         `json:"deadline"`
}

// WithProgress is a list row annotated with percentage completion.
type WithProgress struct {
	Goal
	Progress int64 `json:"progress"`
}

// Progress is how far along the goal is, 0..100. A zero target reads as 0.
func (g Goal) Progress() int64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	pct := g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	return pct
}
