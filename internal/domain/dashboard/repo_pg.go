package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patient),
			(SELECT COUNT(*) FROM doctor),
			(SELECT COUNT(*) FROM appointment),
			(SELECT COUNT(*) FROM medicine)`).
		Scan(&s.Patients, &s.Doctors, &s.Appointments, &s.Medicines)
	if err != nil {
		return nil, apperr.FromPG(err, "dashboard")
	}
	return &s, nil
}
