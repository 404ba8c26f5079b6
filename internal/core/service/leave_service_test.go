package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/core/ports"
)

type stubLeaveRepo struct {
	requests []*domain.LeaveRequest
	nextID   int
}

func newStubLeaveRepo() *stubLeaveRepo {
	return &stubLeaveRepo{}
}

func cloneRequest(r *domain.LeaveRequest) *domain.LeaveRequest {
	clone := *r
	return &clone
}

func (r *stubLeaveRepo) Insert(_ context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error) {
	stored := cloneRequest(request)
	r.nextID++
	stored.ID = fmt.Sprintf("req-%d", r.nextID)
	r.requests = append(r.requests, stored)
	return cloneRequest(stored), nil
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, employeeID string, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	var out []*domain.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID && req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubLeaveRepo) ListByStatus(_ context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	var out []*domain.LeaveRequest
	for _, req := range r.requests {
		if req.Status == status {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubLeaveRepo) ListDecided(_ context.Context) ([]*domain.LeaveRequest, error) {
	var out []*domain.LeaveRequest
	for _, req := range r.requests {
		if req.Status != domain.StatusPending {
			out = append(out, cloneRequest(req))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *stubLeaveRepo) UpdateStatus(_ context.Context, id string, status domain.LeaveStatus, decidedAt time.Time) error {
	for _, req := range r.requests {
		if req.ID == id {
			req.Status = status
			req.UpdatedAt = decidedAt
			return nil
		}
	}
	return domain.ErrRequestNotFound
}

func newLeaveFixture(t *testing.T) (*LeaveService, *stubLeaveRepo, *domain.Identity) {
	t.Helper()

	identities := newStubIdentityRepo()
	requests := newStubLeaveRepo()
	authSvc := NewAuthService(identities, zerolog.Nop())

	employee, err := authSvc.Register(context.Background(), validRegisterInput(domain.AccountEmployee))
	if err != nil {
		t.Fatalf("register fixture employee: %v", err)
	}

	return NewLeaveService(requests, identities, zerolog.Nop()), requests, employee
}

func TestLeaveService_CreateRequest_ForcesPending(t *testing.T) {
	svc, _, employee := newLeaveFixture(t)

	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		EmployeeID: employee.ID,
		StartDate:  "2024-01-10",
		EndDate:    "2024-01-12",
		Category:   domain.CategorySick,
		Reason:     "flu",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if created.Status != domain.StatusPending {
		t.Fatalf("status = %s, want pending", created.Status)
	}
	if created.Duration() != 3 {
		t.Fatalf("duration = %d, want 3", created.Duration())
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Fatalf("updated_at %v before created_at %v", created.UpdatedAt, created.CreatedAt)
	}

	pending, err := svc.ListRequests(context.Background(), employee.ID, domain.StatusPending)
	if err != nil {
		t.Fatalf("ListRequests returned error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != created.ID {
		t.Fatalf("expected the new request in the pending tab, got %+v", pending)
	}

	for _, tab := range []domain.LeaveStatus{domain.StatusApproved, domain.StatusRejected} {
		list, err := svc.ListRequests(context.Background(), employee.ID, tab)
		if err != nil {
			t.Fatalf("ListRequests(%s) returned error: %v", tab, err)
		}
		if len(list) != 0 {
			t.Fatalf("expected empty %s tab, got %d rows", tab, len(list))
		}
	}
}

func TestLeaveService_CreateRequest_UnknownCategory(t *testing.T) {
	svc, repo, employee := newLeaveFixture(t)

	_, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		EmployeeID: employee.ID,
		StartDate:  "2024-01-10",
		EndDate:    "2024-01-12",
		Category:   "Sabbatical",
		Reason:     "travel",
	})
	if err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(repo.requests) != 0 {
		t.Fatalf("expected no insert on invalid category")
	}
}

func TestLeaveService_CreateRequest_InvertedRangeAccepted(t *testing.T) {
	svc, _, employee := newLeaveFixture(t)

	// Start after end is stored as given; duration uses the absolute
	// difference.
	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		EmployeeID: employee.ID,
		StartDate:  "2024-01-12",
		EndDate:    "2024-01-10",
		Category:   domain.CategoryCasual,
		Reason:     "errand",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}
	if created.Duration() != 3 {
		t.Fatalf("duration = %d, want 3", created.Duration())
	}
}

func TestLeaveService_ListRequests_UnknownTab(t *testing.T) {
	svc, _, employee := newLeaveFixture(t)

	if _, err := svc.ListRequests(context.Background(), employee.ID, "cancelled"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestLeaveService_DecideRequest_MovesRowToHistory(t *testing.T) {
	svc, _, employee := newLeaveFixture(t)

	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		EmployeeID: employee.ID,
		StartDate:  "2024-01-10",
		EndDate:    "2024-01-12",
		Category:   domain.CategorySick,
		Reason:     "flu",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}

	if err := svc.DecideRequest(context.Background(), created.ID, domain.StatusApproved); err != nil {
		t.Fatalf("DecideRequest returned error: %v", err)
	}

	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board returned error: %v", err)
	}
	if len(board.Pending) != 0 {
		t.Fatalf("expected empty pending list, got %d rows", len(board.Pending))
	}
	if len(board.History) != 1 {
		t.Fatalf("expected one history row, got %d", len(board.History))
	}

	decided := board.History[0]
	if decided.Request.Status != domain.StatusApproved {
		t.Fatalf("status = %s, want approved", decided.Request.Status)
	}
	if decided.Request.UpdatedAt.Before(decided.Request.CreatedAt) {
		t.Fatalf("updated_at %v before created_at %v", decided.Request.UpdatedAt, decided.Request.CreatedAt)
	}
	if decided.Requester == nil || decided.Requester.ID != employee.ID {
		t.Fatalf("expected requester profile joined, got %+v", decided.Requester)
	}
}

func TestLeaveService_DecideRequest_InvalidDecision(t *testing.T) {
	svc, _, employee := newLeaveFixture(t)

	created, err := svc.CreateRequest(context.Background(), ports.CreateRequestInput{
		EmployeeID: employee.ID,
		StartDate:  "2024-01-10",
		EndDate:    "2024-01-10",
		Category:   domain.CategoryAnnual,
		Reason:     "rest",
	})
	if err != nil {
		t.Fatalf("CreateRequest returned error: %v", err)
	}

	// A decided request can never be sent back to pending, and only the two
	// decision values are accepted at all.
	for _, decision := range []domain.LeaveStatus{domain.StatusPending, "cancelled", ""} {
		if err := svc.DecideRequest(context.Background(), created.ID, decision); err != domain.ErrInvalidDecision {
			t.Fatalf("decision %q: expected ErrInvalidDecision, got %v", decision, err)
		}
	}
}

func TestLeaveService_DecideRequest_NotFound(t *testing.T) {
	svc, _, _ := newLeaveFixture(t)

	if err := svc.DecideRequest(context.Background(), "missing", domain.StatusRejected); err != domain.ErrRequestNotFound {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestLeaveService_Board_Ordering(t *testing.T) {
	svc, repo, employee := newLeaveFixture(t)

	// Seed three requests with distinct timestamps, then decide the oldest
	// and the newest.
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ids := make([]string, 3)
	for i := 0; i < 3; i++ {
		stored, err := repo.Insert(context.Background(), &domain.LeaveRequest{
			EmployeeID: employee.ID,
			StartDate:  base.AddDate(0, 0, 10+i),
			EndDate:    base.AddDate(0, 0, 11+i),
			Category:   domain.CategoryAnnual,
			Reason:     "trip",
			Status:     domain.StatusPending,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
			UpdatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		ids[i] = stored.ID
	}

	if err := repo.UpdateStatus(context.Background(), ids[0], domain.StatusApproved, base.Add(5*time.Hour)); err != nil {
		t.Fatalf("seed decide: %v", err)
	}
	if err := repo.UpdateStatus(context.Background(), ids[2], domain.StatusRejected, base.Add(6*time.Hour)); err != nil {
		t.Fatalf("seed decide: %v", err)
	}

	board, err := svc.Board(context.Background())
	if err != nil {
		t.Fatalf("Board returned error: %v", err)
	}

	if len(board.Pending) != 1 || board.Pending[0].Request.ID != ids[1] {
		t.Fatalf("unexpected pending list: %+v", board.Pending)
	}
	// History is ordered by decision time descending: the reject came last.
	if len(board.History) != 2 {
		t.Fatalf("expected two history rows, got %d", len(board.History))
	}
	if board.History[0].Request.ID != ids[2] || board.History[1].Request.ID != ids[0] {
		t.Fatalf("unexpected history order: %s, %s", board.History[0].Request.ID, board.History[1].Request.ID)
	}
}
