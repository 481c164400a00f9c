package dashboard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Summary struct {
	Period       Range           `json:"period"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
	IncomeCount  int64           `json:"income_count"`
	ExpenseCount int64           `json:"expense_count"`
	TopCategory  *TopCategory    `json:"top_category"`
}

type TopCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// Summarize computes income/expense totals and counts within the range,
// plus the single heaviest expense category. Empty ranges yield zeros.
func (r *Repo) Summarize(ctx context.Context, rng Range) (Summary, error) {
	s := Summary{Period: rng}

	err := r.Pool.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0) AS total_income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount END), 0) AS total_expense,
			COUNT(*) FILTER (WHERE type = 'income') AS income_count,
			COUNT(*) FILTER (WHERE type = 'expense') AS expense_count
		FROM transactions
		WHERE date BETWEEN $1::date AND $2::date
	`, rng.Start, rng.End).Scan(&s.TotalIncome, &s.TotalExpense, &s.IncomeCount, &s.ExpenseCount)
	if err != nil {
		return Summary{}, err
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpense)

	var top TopCategory
	err = r.Pool.QueryRow(ctx, `
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE type = 'expense' AND date BETWEEN $1::date AND $2::date
		GROUP BY category
		ORDER BY total DESC
		LIMIT 1
	`, rng.Start, rng.End).Scan(&top.Category, &top.Total)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// No expenses in range; top_category stays null.
	case err != nil:
		return Summary{}, err
	default:
		s.TopCategory = &top
	}

	return s, nil
}
