package ports

import (
	"context"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// CreateRequestInput is the DTO passed from the transport layer when an
// employee applies for leave. Dates are wire-format strings ("2006-01-02").
type CreateRequestInput struct {
	EmployeeID string
	StartDate  string
	EndDate    string
	Category   domain.LeaveCategory
	Reason     string
}

// RequestWithRequester pairs a leave request with the profile of the employee
// who filed it, as surfaced on the manager dashboard. The requester is read
// only for display; decisions never write identity fields.
type RequestWithRequester struct {
	Request   *domain.LeaveRequest
	Requester *domain.Identity // nil when the referenced identity is gone
}

// ManagerBoard holds the two disjoint precomputed lists shown on the manager
// dashboard: pending requests (created_at desc) and decided requests
// (updated_at desc). Tab switching between them never refetches.
type ManagerBoard struct {
	Pending []RequestWithRequester
	History []RequestWithRequester
}

// LeaveService defines the use-case operations over leave requests.
type LeaveService interface {
	// ListRequests returns the employee's own requests filtered by exactly
	// one status, newest first.
	ListRequests(ctx context.Context, employeeID string, status domain.LeaveStatus) ([]*domain.LeaveRequest, error)

	// CreateRequest inserts a new request with status forced to pending.
	CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.LeaveRequest, error)

	// Board fetches both manager lists, each joined with requester profiles.
	Board(ctx context.Context) (*ManagerBoard, error)

	// DecideRequest transitions a request to approved or rejected and stamps
	// updated_at. It never transitions back to pending.
	DecideRequest(ctx context.Context, requestID string, decision domain.LeaveStatus) error
}
