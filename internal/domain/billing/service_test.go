package billing

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
)

// mockRepo keeps bills in memory; completedPatients stands in for the
// appointment table's completed rows.
type mockRepo struct {
	bills             map[int64]*Bill
	nextID            int64
	completedPatients map[int64]bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		bills:             make(map[int64]*Bill),
		completedPatients: make(map[int64]bool),
	}
}

func (m *mockRepo) Create(_ context.Context, b *Bill) error {
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now()
	cp := *b
	m.bills[b.ID] = &cp
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Bill, error) {
	b, ok := m.bills[id]
	if !ok {
		return nil, apperr.NotFound("bill not found")
	}
	cp := *b
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, b *Bill) error {
	existing, ok := m.bills[b.ID]
	if !ok {
		return apperr.NotFound("bill not found")
	}
	cp := *b
	cp.Status = existing.Status
	cp.CreatedAt = existing.CreatedAt
	m.bills[b.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.bills[id]; !ok {
		return apperr.NotFound("bill not found")
	}
	delete(m.bills, id)
	return nil
}

func (m *mockRepo) SetStatus(_ context.Context, id int64, status string) error {
	b, ok := m.bills[id]
	if !ok {
		return apperr.NotFound("bill not found")
	}
	b.Status = status
	return nil
}

func (m *mockRepo) ListByStatus(_ context.Context, status string, limit, offset int) ([]*Bill, int, error) {
	var items []*Bill
	for _, b := range m.bills {
		if b.Status == status {
			items = append(items, b)
		}
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

func (m *mockRepo) HasCompletedAppointment(_ context.Context, patientID int64) (bool, error) {
	return m.completedPatients[patientID], nil
}

func seedBill(t *testing.T, svc *Service, patientID string) *Bill {
	t.Helper()
	b, err := svc.Create(context.Background(), Input{
		PatientID: patientID, Amount: "500", Description: "consult",
	})
	if err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	return b
}

func TestCreate_DefaultsToPending(t *testing.T) {
	svc := NewService(newMockRepo())
	b := seedBill(t, svc, "1")
	if b.Status != StatusPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.Amount != 500 {
		t.Errorf("amount = %f, want 500", b.Amount)
	}
}

func TestCreate_RejectsMalformedInput(t *testing.T) {
	svc := NewService(newMockRepo())
	cases := []Input{
		{PatientID: "", Amount: "500"},
		{PatientID: "abc", Amount: "500"},
		{PatientID: "1", Amount: "lots"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("input %+v: expected validation error, got %v", in, err)
		}
	}
}

func TestMarkPaid_GatedOnCompletedAppointment(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	b := seedBill(t, svc, "1")

	_, err := svc.MarkPaid(context.Background(), b.ID)
	if apperr.KindOf(err) != apperr.KindState {
		t.Fatalf("expected state error without completed appointment, got %v", err)
	}
	if repo.bills[b.ID].Status != StatusPending {
		t.Error("failed mark-paid must leave status unchanged")
	}

	repo.completedPatients[1] = true
	paid, err := svc.MarkPaid(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.Status != StatusPaid {
		t.Errorf("status = %q, want paid", paid.Status)
	}
}

func TestRestore_Unconditional(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	b := seedBill(t, svc, "1")

	// Restore works on a pending bill and on a paid one alike.
	restored, err := svc.Restore(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.Status != StatusPending {
		t.Errorf("status = %q, want pending", restored.Status)
	}

	repo.completedPatients[1] = true
	if _, err := svc.MarkPaid(context.Background(), b.ID); err != nil {
		t.Fatal(err)
	}
	repo.completedPatients[1] = false

	restored, err = svc.Restore(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("restore must not require a completed appointment: %v", err)
	}
	if restored.Status != StatusPending {
		t.Errorf("status = %q, want pending", restored.Status)
	}
}

func TestUpdate_PreservesStatusAndCreatedAt(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	b := seedBill(t, svc, "1")
	repo.completedPatients[1] = true
	if _, err := svc.MarkPaid(context.Background(), b.ID); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(context.Background(), b.ID, Input{
		PatientID: "1", Amount: "750", Description: "surgery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Amount != 750 {
		t.Errorf("amount = %f, want 750", updated.Amount)
	}
	if updated.Status != StatusPaid {
		t.Errorf("update must not change status, got %q", updated.Status)
	}
	if !updated.CreatedAt.Equal(b.CreatedAt) {
		t.Error("created_at must be immutable")
	}
}

func TestLists_SplitByStatus(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	pendingBill := seedBill(t, svc, "1")
	paidBill := seedBill(t, svc, "2")
	repo.completedPatients[2] = true
	if _, err := svc.MarkPaid(context.Background(), paidBill.ID); err != nil {
		t.Fatal(err)
	}

	pending, total, err := svc.ListPending(context.Background(), 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || pending[0].ID != pendingBill.ID {
		t.Errorf("unexpected pending list: %+v", pending)
	}

	paid, total, err := svc.ListPaid(context.Background(), 50, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || paid[0].ID != paidBill.ID {
		t.Errorf("unexpected paid list: %+v", paid)
	}
}

func TestMarkPaid_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.MarkPaid(context.Background(), 404)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
