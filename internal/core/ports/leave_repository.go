package ports

import (
	"context"
	"time"

	"github.com/easyleave/leave-api/internal/core/domain"
)

// LeaveRepository defines persistence operations for leave requests.
type LeaveRepository interface {
	// Insert stores a new request and returns the stored row.
	Insert(ctx context.Context, request *domain.LeaveRequest) (*domain.LeaveRequest, error)

	// ListByEmployee returns the employee's requests with the given status,
	// ordered by created_at descending.
	ListByEmployee(ctx context.Context, employeeID string, status domain.LeaveStatus) ([]*domain.LeaveRequest, error)

	// ListByStatus returns all requests with the given status, ordered by
	// created_at descending.
	ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.LeaveRequest, error)

	// ListDecided returns all requests whose status is not pending, ordered
	// by updated_at descending.
	ListDecided(ctx context.Context) ([]*domain.LeaveRequest, error)

	// UpdateStatus sets the status and updated_at of the request identified
	// by id. Unknown ids surface as domain.ErrRequestNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.LeaveStatus, decidedAt time.Time) error
}
