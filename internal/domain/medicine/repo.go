package medicine

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id int64) (*Medicine, error)
	// GetByName matches the name exactly, case-sensitively.
	GetByName(ctx context.Context, name string) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*Medicine, int, error)
}
