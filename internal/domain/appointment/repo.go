package appointment

import "context"

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int64) error
	// ListDetailed returns appointments joined with patient and doctor names.
	ListDetailed(ctx context.Context, limit, offset int) ([]*Detail, int, error)
}
