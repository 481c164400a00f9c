package fixedexpenses

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]FixedExpense, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, description, amount, category, due_day
		 FROM fixed_expenses
		 ORDER BY due_day ASC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FixedExpense, 0)
	for rows.Next() {
		var fe FixedExpense
		if err := rows.Scan(&fe.ID, &fe.Description, &fe.Amount, &fe.Category, &fe.DueDay); err != nil {
			return nil, err
		}
		out = append(out, fe)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*FixedExpense, error) {
	var fe FixedExpense
	err := r.Pool.QueryRow(ctx,
		`SELECT id, description, amount, category, due_day
		 FROM fixed_expenses WHERE id = $1`,
		id,
	).Scan(&fe.ID, &fe.Description, &fe.Amount, &fe.Category, &fe.DueDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fe, nil
}

func (r *Repo) Create(ctx context.Context, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO fixed_expenses (description, amount, category, due_day)
		 VALUES ($1, $2, $3, $4)`,
		req.Description, req.Amount, req.Category, req.DueDay,
	)
	return err
}

func (r *Repo) Update(ctx context.Context, id int64, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE fixed_expenses
		 SET description = $1, amount = $2, category = $3, due_day = $4
		 WHERE id = $5`,
		req.Description, req.Amount, req.Category, req.DueDay, id,
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM fixed_expenses WHERE id = $1`, id)
	return err
}
