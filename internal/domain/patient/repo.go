package patient

import "context"

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	// DeleteCascade removes the patient and every appointment and bill that
	// references it, in one transaction.
	DeleteCascade(ctx context.Context, id int64) error
	// ListActive returns patients that have no bill in status "paid",
	// narrowed by the filter.
	ListActive(ctx context.Context, filter ListFilter, limit, offset int) ([]*Patient, int, error)
}
