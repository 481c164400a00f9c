package fixedexpenses

import "github.com/shopspring/decimal"

// FixedExpense is a recurring monthly obligation anchored to a
// day-of-month rather than a concrete date.
type FixedExpense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDay      int             `json:"due_day"`
}

type CreateRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	DueDay      int             `json:"due_day"`
}

// Upcoming is a fixed expense annotated with how many days remain until
// its next due date.
type Upcoming struct {
	FixedExpense
	DaysUntilDue int `json:"days_until_due"`
}
