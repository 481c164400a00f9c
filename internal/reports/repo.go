package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// MonthTotals is one calendar month of the report.
type MonthTotals struct {
	Month        string          `json:"month"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// Monthly sums income and expense amounts per calendar month between
// from and to inclusive, ordered chronologically.
func (r *Repo) Monthly(ctx context.Context, from, to string) ([]MonthTotals, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT to_char(date, 'YYYY-MM') AS month,
		        COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) AS total_income,
		        COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) AS total_expense
		 FROM transactions
		 WHERE date BETWEEN $1::date AND $2::date
		 GROUP BY to_char(date, 'YYYY-MM')
		 ORDER BY month ASC`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []MonthTotals{}
	for rows.Next() {
		var m MonthTotals
		if err := rows.Scan(&m.Month, &m.TotalIncome, &m.TotalExpense); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
