package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)
	// AppointmentCount reports how many appointments reference the doctor.
	AppointmentCount(ctx context.Context, id int64) (int, error)
}
