package patient

import (
	"context"
	"strconv"
	"strings"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromInput validates the submitted fields and builds a Patient. Name and
// phone are required; age must be numeric when present.
func fromInput(in Input) (*Patient, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if phone == "" {
		return nil, apperr.Validation("phone is required")
	}

	p := &Patient{
		Name:    name,
		Phone:   phone,
		Email:   optional(in.Email),
		Address: optional(in.Address),
		City:    optional(in.City),
		State:   optional(in.State),
		PinCode: optional(in.PinCode),
		Gender:  optional(in.Gender),
	}
	if in.Age != "" {
		age, err := strconv.Atoi(in.Age)
		if err != nil {
			return nil, apperr.Validation("age must be a number, got %q", in.Age)
		}
		p.Age = &age
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in Input) (*Patient, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// Update overwrites all mutable fields of an existing patient.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Patient, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	existing, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the patient together with all appointments and bills that
// reference it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.patients.DeleteCascade(ctx, id)
}

// List returns the active roster: patients without any paid bill, narrowed by
// a case-insensitive name/phone substring search and an exact gender match.
func (s *Service) List(ctx context.Context, filter ListFilter, limit, offset int) ([]*Patient, int, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Gender = strings.TrimSpace(filter.Gender)
	return s.patients.ListActive(ctx, filter, limit, offset)
}
