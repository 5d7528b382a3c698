package appointment

import (
	"context"
	"sort"
	"testing"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

// mockRepo keeps appointments in memory. Known patient and doctor ids stand
// in for foreign key constraints.
type mockRepo struct {
	appointments map[int64]*Appointment
	nextID       int64
	patients     map[int64]string
	doctors      map[int64]string
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		appointments: make(map[int64]*Appointment),
		patients:     map[int64]string{1: "Asha"},
		doctors:      map[int64]string{1: "Dr. Rao"},
	}
}

func (m *mockRepo) checkRefs(a *Appointment) error {
	if _, ok := m.patients[a.PatientID]; !ok {
		return apperr.ForeignKey("appointment references a missing record")
	}
	if _, ok := m.doctors[a.DoctorID]; !ok {
		return apperr.ForeignKey("appointment references a missing record")
	}
	return nil
}

func (m *mockRepo) Create(_ context.Context, a *Appointment) error {
	if err := m.checkRefs(a); err != nil {
		return err
	}
	m.nextID++
	a.ID = m.nextID
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, apperr.NotFound("appointment not found")
	}
	cp := *a
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, a *Appointment) error {
	if _, ok := m.appointments[a.ID]; !ok {
		return apperr.NotFound("appointment not found")
	}
	if err := m.checkRefs(a); err != nil {
		return err
	}
	cp := *a
	m.appointments[a.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.appointments[id]; !ok {
		return apperr.NotFound("appointment not found")
	}
	delete(m.appointments, id)
	return nil
}

func (m *mockRepo) ListDetailed(_ context.Context, limit, offset int) ([]*Detail, int, error) {
	var items []*Detail
	for _, a := range m.appointments {
		items = append(items, &Detail{
			Appointment: *a,
			PatientName: m.patients[a.PatientID],
			DoctorName:  m.doctors[a.DoctorID],
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	total := len(items)
	if offset >= len(items) {
		return nil, total, nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items, total, nil
}

func validInput() Input {
	return Input{PatientID: "1", DoctorID: "1", Date: "2024-01-01", Time: "10:00"}
}

func TestCreate_DefaultsToScheduled(t *testing.T) {
	svc := NewService(newMockRepo())
	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Errorf("status = %q, want %q", a.Status, StatusScheduled)
	}
	if a.Date.Year() != 2024 || a.Date.Month() != 1 || a.Date.Day() != 1 {
		t.Errorf("unexpected date %v", a.Date)
	}
}

func TestCreate_RejectsMalformedInput(t *testing.T) {
	svc := NewService(newMockRepo())
	cases := []Input{
		{PatientID: "x", DoctorID: "1", Date: "2024-01-01", Time: "10:00"},
		{PatientID: "1", DoctorID: "", Date: "2024-01-01", Time: "10:00"},
		{PatientID: "1", DoctorID: "1", Date: "01/01/2024", Time: "10:00"},
		{PatientID: "1", DoctorID: "1", Date: "2024-01-01", Time: ""},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("input %+v: expected validation error, got %v", in, err)
		}
	}
}

func TestCreate_MissingReferences(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.PatientID = "42"
	if _, err := svc.Create(context.Background(), in); apperr.KindOf(err) != apperr.KindForeignKey {
		t.Errorf("expected foreign key error for missing patient, got %v", err)
	}

	in = validInput()
	in.DoctorID = "42"
	if _, err := svc.Create(context.Background(), in); apperr.KindOf(err) != apperr.KindForeignKey {
		t.Errorf("expected foreign key error for missing doctor, got %v", err)
	}
}

func TestUpdate_OverwritesStatusFreeText(t *testing.T) {
	svc := NewService(newMockRepo())
	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	in := validInput()
	in.Status = "completed"
	updated, err := svc.Update(context.Background(), a.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("status = %q, want completed", updated.Status)
	}

	in.Status = "no-show"
	updated, err = svc.Update(context.Background(), a.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "no-show" {
		t.Errorf("free-text status rejected: %q", updated.Status)
	}
}

func TestUpdate_EmptyStatusKeepsCurrent(t *testing.T) {
	svc := NewService(newMockRepo())
	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	in := validInput()
	in.Status = "completed"
	if _, err := svc.Update(context.Background(), a.ID, in); err != nil {
		t.Fatal(err)
	}

	in.Status = ""
	updated, err := svc.Update(context.Background(), a.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != "completed" {
		t.Errorf("status = %q, want completed preserved", updated.Status)
	}
}

func TestList_JoinsNames(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	items, total, err := svc.List(context.Background(), 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(items))
	}
	if items[0].PatientName != "Asha" || items[0].DoctorName != "Dr. Rao" {
		t.Errorf("join missing names: %+v", items[0])
	}
}
