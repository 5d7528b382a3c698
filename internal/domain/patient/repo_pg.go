package patient

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, name, phone, email, address, city, state, pin_code, age, gender, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Address, &p.City,
		&p.State, &p.PinCode, &p.Age, &p.Gender, &p.CreatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient (name, phone, email, address, city, state, pin_code, age, gender)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at`,
		p.Name, p.Phone, p.Email, p.Address, p.City, p.State, p.PinCode, p.Age, p.Gender).
		Scan(&p.ID, &p.CreatedAt)
	return apperr.FromPG(err, "patient")
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG(err, "patient")
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patient SET name=$2, phone=$3, email=$4, address=$5, city=$6,
			state=$7, pin_code=$8, age=$9, gender=$10
		WHERE id = $1`,
		p.ID, p.Name, p.Phone, p.Email, p.Address, p.City, p.State, p.PinCode, p.Age, p.Gender)
	if err != nil {
		return apperr.FromPG(err, "patient")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient not found")
	}
	return nil
}

func (r *repoPG) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM appointment WHERE patient_id = $1`, id); err != nil {
		return apperr.FromPG(err, "appointment")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM bill WHERE patient_id = $1`, id); err != nil {
		return apperr.FromPG(err, "bill")
	}
	tag, err := tx.Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, "patient")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient not found")
	}

	return tx.Commit(ctx)
}

func (r *repoPG) ListActive(ctx context.Context, filter ListFilter, limit, offset int) ([]*Patient, int, error) {
	where := ` WHERE id NOT IN (SELECT patient_id FROM bill WHERE status = 'paid')`
	var args []interface{}
	idx := 1

	if filter.Search != "" {
		where += fmt.Sprintf(` AND (name ILIKE $%d OR phone ILIKE $%d)`, idx, idx)
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	if filter.Gender != "" {
		where += fmt.Sprintf(` AND gender = $%d`, idx)
		args = append(args, filter.Gender)
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG(err, "patient")
	}

	query := `SELECT ` + patientCols + ` FROM patient` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperr.FromPG(err, "patient")
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
