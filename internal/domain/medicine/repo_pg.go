package medicine

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const medicineCols = `id, name, stock, price, expiry_date`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.Name, &m.Stock, &m.Price, &m.ExpiryDate)
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medicine) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO medicine (name, stock, price, expiry_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		m.Name, m.Stock, m.Price, m.ExpiryDate).Scan(&m.ID)
	return apperr.FromPG(err, "medicine")
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Medicine, error) {
	m, err := scanMedicine(r.pool.QueryRow(ctx, `SELECT `+medicineCols+` FROM medicine WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG(err, "medicine")
	}
	return m, nil
}

func (r *repoPG) GetByName(ctx context.Context, name string) (*Medicine, error) {
	m, err := scanMedicine(r.pool.QueryRow(ctx, `SELECT `+medicineCols+` FROM medicine WHERE name = $1`, name))
	if err != nil {
		return nil, apperr.FromPG(err, "medicine")
	}
	return m, nil
}

func (r *repoPG) Update(ctx context.Context, m *Medicine) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medicine SET name=$2, stock=$3, price=$4, expiry_date=$5
		WHERE id = $1`,
		m.ID, m.Name, m.Stock, m.Price, m.ExpiryDate)
	if err != nil {
		return apperr.FromPG(err, "medicine")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicine not found")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medicine WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, "medicine")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicine not found")
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medicine`).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG(err, "medicine")
	}

	rows, err := r.pool.Query(ctx, `SELECT `+medicineCols+` FROM medicine ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, apperr.FromPG(err, "medicine")
	}
	defer rows.Close()

	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}
