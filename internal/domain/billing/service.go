package billing

import (
	"context"
	"strconv"
	"strings"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

type Service struct {
	bills Repository
}

func NewService(bills Repository) *Service {
	return &Service{bills: bills}
}

func fromInput(in Input) (*Bill, error) {
	patientID, err := strconv.ParseInt(strings.TrimSpace(in.PatientID), 10, 64)
	if err != nil {
		return nil, apperr.Validation("patient_id must be a number, got %q", in.PatientID)
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
	if err != nil {
		return nil, apperr.Validation("amount must be a number, got %q", in.Amount)
	}

	b := &Bill{PatientID: patientID, Amount: amount}
	if in.Description != "" {
		desc := in.Description
		b.Description = &desc
	}
	return b, nil
}

// Create opens a new bill in status "pending".
func (s *Service) Create(ctx context.Context, in Input) (*Bill, error) {
	b, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	b.Status = StatusPending
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

// Update overwrites patient, amount and description. Status only moves
// through MarkPaid and Restore.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Bill, error) {
	b, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	existing, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.ID = existing.ID
	b.Status = existing.Status
	b.CreatedAt = existing.CreatedAt
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bills.Delete(ctx, id)
}

// MarkPaid settles a bill. The patient must have a completed appointment;
// otherwise the bill is left untouched and a state error is reported for the
// user.
func (s *Service) MarkPaid(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	completed, err := s.bills.HasCompletedAppointment(ctx, b.PatientID)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, apperr.State("cannot mark bill as paid: patient appointment is not completed yet")
	}

	if err := s.bills.SetStatus(ctx, id, StatusPaid); err != nil {
		return nil, err
	}
	b.Status = StatusPaid
	return b, nil
}

// Restore moves a bill back to "pending" unconditionally.
func (s *Service) Restore(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.bills.SetStatus(ctx, id, StatusPending); err != nil {
		return nil, err
	}
	b.Status = StatusPending
	return b, nil
}

func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.bills.ListByStatus(ctx, StatusPending, limit, offset)
}

// ListPaid is the history view.
func (s *Service) ListPaid(ctx context.Context, limit, offset int) ([]*Bill, int, error) {
	return s.bills.ListByStatus(ctx, StatusPaid, limit, offset)
}
