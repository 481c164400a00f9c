package transactions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

// buildWhere turns the present filters into a WHERE clause with positional
// args. Absent filters contribute nothing.
func buildWhere(f Filters) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.From != "" {
		add("date >= $%d::date", f.From)
	}
	if f.To != "" {
		add("date <= $%d::date", f.To)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *Repo) List(ctx context.Context, f Filters, limit, offset int) ([]Transaction, int64, error) {
	where, args := buildWhere(f)

	var total int64
	if err := r.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM transactions "+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		`SELECT id, description, amount, category, type, date::text
		 FROM transactions %s
		 ORDER BY date DESC, id DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)
	rows, err := r.Pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Transaction, 0, limit)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Type, &t.Date); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

// Get returns nil without error when no row matches.
func (r *Repo) Get(ctx context.Context, id int64) (*Transaction, error) {
	var t Transaction
	err := r.Pool.QueryRow(ctx,
		`SELECT id, description, amount, category, type, date::text
		 FROM transactions WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Description, &t.Amount, &t.Category, &t.Type, &t.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) Create(ctx context.Context, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO transactions (description, amount, category, type, date)
		 VALUES ($1, $2, $3, $4, $5::date)`,
		req.Description, req.Amount, req.Category, req.Type, req.Date,
	)
	return err
}

func (r *Repo) Update(ctx context.Context, id int64, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx,
		`UPDATE transactions
		 SET description = $1, amount = $2, category = $3, type = $4, date = $5::date
		 WHERE id = $6`,
		req.Description, req.Amount, req.Category, req.Type, req.Date, id,
	)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}
