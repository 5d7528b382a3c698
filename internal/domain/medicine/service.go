package medicine

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

const dateLayout = "2006-01-02"

type Service struct {
	medicines Repository
}

func NewService(medicines Repository) *Service {
	return &Service{medicines: medicines}
}

func fromInput(in Input) (*Medicine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	m := &Medicine{Name: name}

	if in.Stock != "" {
		stock, err := strconv.Atoi(in.Stock)
		if err != nil {
			return nil, apperr.Validation("stock must be a number, got %q", in.Stock)
		}
		m.Stock = stock
	}

	price, err := strconv.ParseFloat(in.Price, 64)
	if err != nil {
		return nil, apperr.Validation("price must be a number, got %q", in.Price)
	}
	m.Price = price

	if in.ExpiryDate != "" {
		expiry, err := time.Parse(dateLayout, strings.TrimSpace(in.ExpiryDate))
		if err != nil {
			return nil, apperr.Validation("expiry_date must be YYYY-MM-DD, got %q", in.ExpiryDate)
		}
		m.ExpiryDate = &expiry
	}

	return m, nil
}

// Create adds a medicine. A medicine whose name matches an existing one
// exactly (case-sensitively) is rejected; the user should edit the existing
// record instead.
func (s *Service) Create(ctx context.Context, in Input) (*Medicine, error) {
	m, err := fromInput(in)
	if err != nil {
		return nil, err
	}

	existing, err := s.medicines.GetByName(ctx, m.Name)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("medicine %q already exists; update the existing record or use a different name", m.Name)
	}

	if err := s.medicines.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

// Update overwrites the medicine without re-checking name uniqueness.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Medicine, error) {
	m, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	if _, err := s.medicines.GetByID(ctx, id); err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.medicines.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.medicines.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.List(ctx, limit, offset)
}
