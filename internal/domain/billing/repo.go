package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id int64) (*Bill, error)
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) error
	SetStatus(ctx context.Context, id int64, status string) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]*Bill, int, error)
	// HasCompletedAppointment reports whether the patient has at least one
	// appointment in status "completed".
	HasCompletedAppointment(ctx context.Context, patientID int64) (bool, error)
}
