package transactions

import "github.com/shopspring/decimal"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

type CreateRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Date        string          `json:"date"`
}

// Filters narrows a listing; zero-valued fields add no predicate.
type Filters struct {
	Type     string
	Category string
	From     string // inclusive, YYYY-MM-DD
	To       string // inclusive, YYYY-MM-DD
}

type ListResponse struct {
	Items []Transaction `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
