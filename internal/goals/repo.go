package goals

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

const goalColumns = `id, name, target_amount, saved_amount, deadline::text, created_at::text`

func (r *Repo) List(ctx context.Context) ([]Goal, error) {
	// Undated goals sink to the bottom; dated ones come soonest-first.
	rows, err := r.Pool.Query(ctx,
		`SELECT `+goalColumns+`
		 FROM acquisition_goals
		 ORDER BY deadline IS NULL, deadline ASC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Goal, 0)
	for rows.Next() {
		var g Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.TargetAmount, &g.SavedAmount, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*Goal, error) {
	var g Goal
	err := r.Pool.QueryRow(ctx,
		`SELECT `+goalColumns+` FROM acquisition_goals WHERE id = $1`,
		id,
	).Scan(&g.ID, &g.Name, &g.TargetAmount, &g.SavedAmount, &g.Deadline, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repo) Create(ctx context.Context, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO acquisition_goals (name, target_amount, saved_amount, deadline)
		 VALUES ($1, $2, $3, $4::date)`,
		req.Name, req.TargetAmount, req.SavedAmount, req.Deadline,
	)
	return err
}

func (r *Repo) Update(ctx context.Context, id int64, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE acquisition_goals
		 SET name = $1, target_amount = $2, saved_amount = $3, deadline = $4::date
		 WHERE id = $5`,
		req.Name, req.TargetAmount, req.SavedAmount, req.Deadline, id,
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM acquisition_goals WHERE id = $1`, id)
	return err
}
