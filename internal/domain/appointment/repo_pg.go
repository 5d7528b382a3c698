package appointment

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, patient_id, doctor_id, date, time, status`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Time, &a.Status)
	return &a, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointment (patient_id, doctor_id, date, time, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		a.PatientID, a.DoctorID, a.Date, a.Time, a.Status).Scan(&a.ID)
	return apperr.FromPG(err, "appointment")
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	a, err := scanAppointment(r.pool.QueryRow(ctx, `SELECT `+apptCols+` FROM appointment WHERE id = $1`, id))
	if err != nil {
		return nil, apperr.FromPG(err, "appointment")
	}
	return a, nil
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment SET patient_id=$2, doctor_id=$3, date=$4, time=$5, status=$6
		WHERE id = $1`,
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Time, a.Status)
	if err != nil {
		return apperr.FromPG(err, "appointment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("appointment not found")
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointment WHERE id = $1`, id)
	if err != nil {
		return apperr.FromPG(err, "appointment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("appointment not found")
	}
	return nil
}

func (r *repoPG) ListDetailed(ctx context.Context, limit, offset int) ([]*Detail, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&total); err != nil {
		return nil, 0, apperr.FromPG(err, "appointment")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.patient_id, a.doctor_id, a.date, a.time, a.status,
			p.name, d.name
		FROM appointment a
		JOIN patient p ON p.id = a.patient_id
		JOIN doctor d ON d.id = a.doctor_id
		ORDER BY a.date DESC, a.time DESC
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, apperr.FromPG(err, "appointment")
	}
	defer rows.Close()

	var items []*Detail
	for rows.Next() {
		var d Detail
		if err := rows.Scan(&d.ID, &d.PatientID, &d.DoctorID, &d.Date, &d.Time,
			&d.Status, &d.PatientName, &d.DoctorName); err != nil {
			return nil, 0, err
		}
		items = append(items, &d)
	}
	return items, total, rows.Err()
}
