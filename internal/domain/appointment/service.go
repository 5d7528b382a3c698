package appointment

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

const dateLayout = "2006-01-02"

type Service struct {
	appointments Repository
}

func NewService(appointments Repository) *Service {
	return &Service{appointments: appointments}
}

func parseRef(value, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, apperr.Validation("%s must be a number, got %q", field, value)
	}
	return id, nil
}

func fromInput(in Input) (*Appointment, error) {
	patientID, err := parseRef(in.PatientID, "patient_id")
	if err != nil {
		return nil, err
	}
	doctorID, err := parseRef(in.DoctorID, "doctor_id")
	if err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, apperr.Validation("date must be YYYY-MM-DD, got %q", in.Date)
	}
	if strings.TrimSpace(in.Time) == "" {
		return nil, apperr.Validation("time is required")
	}

	return &Appointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      strings.TrimSpace(in.Time),
	}, nil
}

// Create schedules a new appointment. Both references must point at existing
// rows; the store reports a foreign key error otherwise.
func (s *Service) Create(ctx context.Context, in Input) (*Appointment, error) {
	a, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	a.Status = StatusScheduled
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// Update overwrites the appointment. Status is free text; an empty status
// keeps the current one.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Appointment, error) {
	a, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	existing, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.ID = existing.ID
	a.Status = in.Status
	if a.Status == "" {
		a.Status = existing.Status
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Detail, int, error) {
	return s.appointments.ListDetailed(ctx, limit, offset)
}
