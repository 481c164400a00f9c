package categories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// undefinedTable is the Postgres error code raised when the categories
// migration has not been applied.
const undefinedTable = "42P01"

// IsMissingTable reports whether err means the backing table is absent.
func IsMissingTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == undefinedTable
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*Category, error) {
	var c Category
	err := r.Pool.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repo) Create(ctx context.Context, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO categories (name) VALUES ($1)`, req.Name)
	return err
}

func (r *Repo) Update(ctx context.Context, id int64, req CreateRequest) error {
	_, err := r.Pool.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, req.Name, id)
	return err
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	_, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
