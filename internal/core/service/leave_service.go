package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/core/ports"
)

// LeaveService implements the leave request use cases for both dashboards.
type LeaveService struct {
	requests   ports.LeaveRepository
	identities ports.IdentityRepository
	logger     zerolog.Logger
}

func NewLeaveService(requests ports.LeaveRepository, identities ports.IdentityRepository, logger zerolog.Logger) *LeaveService {
	return &LeaveService{requests: requests, identities: identities, logger: logger}
}

// ListRequests returns the employee's own requests with exactly the given
// status, newest first. Each tab change on the dashboard is a full refetch
// through this method.
func (s *LeaveService) ListRequests(ctx context.Context, employeeID string, status domain.LeaveStatus) ([]*domain.LeaveRequest, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.requests.ListByEmployee(ctx, employeeID, status)
}

// CreateRequest inserts a new leave request with status forced to pending.
// Start and end dates are stored as given; the range is intentionally not
// validated for order.
func (s *LeaveService) CreateRequest(ctx context.Context, input ports.CreateRequestInput) (*domain.LeaveRequest, error) {
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	start, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end_date: %w", err)
	}

	now := time.Now().UTC()
	request := &domain.LeaveRequest{
		EmployeeID: input.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Category:   input.Category,
		Reason:     input.Reason,
		Status:     domain.StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.requests.Insert(ctx, request)
	if err != nil {
		s.logger.Error().Err(err).Str("employee_id", input.EmployeeID).Msg("failed to insert leave request")
		return nil, err
	}

	s.logger.Info().
		Str("request_id", created.ID).
		Str("employee_id", created.EmployeeID).
		Str("category", string(created.Category)).
		Msg("leave request submitted")

	return created, nil
}

// Board fetches both manager lists: pending requests by created_at descending
// and decided requests by updated_at descending, each joined with the
// requester's profile. The two fetches stay separate so a decision handler
// can refresh both, mirroring how the dashboard reloads.
func (s *LeaveService) Board(ctx context.Context) (*ports.ManagerBoard, error) {
	pending, err := s.requests.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	history, err := s.requests.ListDecided(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	profiles, err := s.requesterProfiles(ctx, pending, history)
	if err != nil {
		return nil, err
	}

	return &ports.ManagerBoard{
		Pending: joinRequesters(pending, profiles),
		History: joinRequesters(history, profiles),
	}, nil
}

// DecideRequest transitions a pending request to approved or rejected and
// stamps updated_at. There is no optimistic lock: two managers racing on the
// same request resolve by last write wins.
func (s *LeaveService) DecideRequest(ctx context.Context, requestID string, decision domain.LeaveStatus) error {
	if !domain.StatusPending.CanTransitionTo(decision) {
		return domain.ErrInvalidDecision
	}

	if err := s.requests.UpdateStatus(ctx, requestID, decision, time.Now().UTC()); err != nil {
		if err != domain.ErrRequestNotFound {
			s.logger.Error().Err(err).Str("request_id", requestID).Msg("failed to update leave request")
		}
		return err
	}

	s.logger.Info().Str("request_id", requestID).Str("decision", string(decision)).Msg("leave request decided")
	return nil
}

// requesterProfiles batch-loads every employee identity referenced by the
// given request lists, keyed by store-assigned ID.
func (s *LeaveService) requesterProfiles(ctx context.Context, lists ...[]*domain.LeaveRequest) (map[string]*domain.Identity, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, list := range lists {
		for _, r := range list {
			if _, ok := seen[r.EmployeeID]; ok {
				continue
			}
			seen[r.EmployeeID] = struct{}{}
			ids = append(ids, r.EmployeeID)
		}
	}
	if len(ids) == 0 {
		return map[string]*domain.Identity{}, nil
	}

	identities, err := s.identities.FindByIDs(ctx, domain.AccountEmployee, ids)
	if err != nil {
		return nil, fmt.Errorf("load requester profiles: %w", err)
	}

	profiles := make(map[string]*domain.Identity, len(identities))
	for _, identity := range identities {
		profiles[identity.ID] = identity
	}
	return profiles, nil
}

func joinRequesters(requests []*domain.LeaveRequest, profiles map[string]*domain.Identity) []ports.RequestWithRequester {
	joined := make([]ports.RequestWithRequester, len(requests))
	for i, r := range requests {
		joined[i] = ports.RequestWithRequester{
			Request:   r,
			Requester: profiles[r.EmployeeID],
		}
	}
	return joined
}
