package billing

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const billCols = `id, patient_id, amount, description, status, created_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	err := row.Scan(&b.ID, &b.PatientID, &b.Amount, &b.Description, &b.Status, &b.CreatedAt)
	return &b, err
}

func (r *repoPG) Create(ctx context.Context, b *Bill) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bill (patient_id, amount, description, status)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		b.PatientID, b.Amount, b.Description, b.Status).Scan(&b.ID, &b.CreatedAt)
	return apperr.FromPG(err, "bill")
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Bill, error) {
	b, err := scanBill(r.pool.QueryRow(ctx, `SELECT `+billCols+` FROM bill WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG(err, "bill")
	}
	return b, nil
}

func (r *repoPG) Update(ctx context.Context, b *Bill) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bill SET patient_id=$2, amount=$3, description=$4
		WHERE id = $1`,
		b.ID, b.PatientID, b.Amount, b.Description)
	if err != nil {
		return apperr.FromPG(err, "bill")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("bill not found")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bill WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, "bill")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("bill not found")
	}
	return nil
}

func (r *repoPG) SetStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE bill SET status=$2 WHERE id = $1`, id, status)
	if err != nil {
		return apperr.FromPG(err, "bill")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("bill not found")
	}
	return nil
}

func (r *repoPG) ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Bill, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bill WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG(err, "bill")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+billCols+` FROM bill
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, status, limit, offset)
	if err != nil {
		return nil, 0, apperr.FromPG(err, "bill")
	}
	defer rows.Close()

	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

func (r *repoPG) HasCompletedAppointment(ctx context.Context, patientID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointment
			WHERE patient_id = $1 AND status = 'completed'
		)`, patientID).Scan(&exists)
	if err != nil {
		return false, apperr.FromPG(err, "appointment")
	}
	return exists, nil
}
