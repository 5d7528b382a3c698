package doctor

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `id, name, specialization, phone, email`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialization, &d.Phone, &d.Email)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctor (name, specialization, phone, email)
		VALUES ($1,$2,$3,$4)
		RETURNING id`,
		d.Name, d.Specialization, d.Phone, d.Email).Scan(&d.ID)
	return apperr.FromPG(err, "doctor")
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG(err, "doctor")
	}
	return d, nil
}

func (r *repoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE doctor SET name=$2, specialization=$3, phone=$4, email=$5
		WHERE id = $1`,
		d.ID, d.Name, d.Specialization, d.Phone, d.Email)
	if err != nil {
		return apperr.FromPG(err, "doctor")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("doctor not found")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, "doctor")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("doctor not found")
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG(err, "doctor")
	}

	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, apperr.FromPG(err, "doctor")
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

func (r *repoPG) AppointmentCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment WHERE doctor_id = $1`, id).Scan(&count)
	return count, apperr.FromPG(err, "appointment")
}
