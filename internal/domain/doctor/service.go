package doctor

import (
	"context"
	"strings"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func fromInput(in Input) (*Doctor, error) {
	name := strings.TrimSpace(in.Name)
	specialization := strings.TrimSpace(in.Specialization)
	phone := strings.TrimSpace(in.Phone)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if specialization == "" {
		return nil, apperr.Validation("specialization is required")
	}
	if phone == "" {
		return nil, apperr.Validation("phone is required")
	}

	d := &Doctor{Name: name, Specialization: specialization, Phone: phone}
	if in.Email != "" {
		email := in.Email
		d.Email = &email
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Doctor, error) {
	d, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*Doctor, error) {
	d, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	if _, err := s.doctors.GetByID(ctx, id); err != nil {
		return nil, err
	}
	d.ID = id
	if err := s.doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete refuses to remove a doctor that still has appointments; the caller
// must reassign or delete them first.
func (s *Service) Delete(ctx context.Context, id int64) error {
	count, err := s.doctors.AppointmentCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("doctor has %d appointment(s); delete or reassign them first", count)
	}
	return s.doctors.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, limit, offset)
}
