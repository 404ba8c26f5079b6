package handler

import (
	"time"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// --- Domain → HTTP response ---

func toIdentityResponse(identity *domain.Identity) identityResponse {
	return identityResponse{
		ID:            identity.ID,
		EmployeeID:    identity.EmployeeID,
		Name:          identity.Name,
		Role:          identity.Role,
		Email:         identity.Email,
		PhotoURL:      identity.PhotoURL,
		DateOfJoining: identity.DateOfJoining.Format(dateLayout),
		DateOfBirth:   identity.DateOfBirth.Format(dateLayout),
	}
}

func toLeaveRequestResponse(r *domain.LeaveRequest) leaveRequestResponse {
	return leaveRequestResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Category:     string(r.Category),
		Reason:       r.Reason,
		Status:       string(r.Status),
		DurationDays: r.Duration(),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toLeaveRequestList(requests []*domain.LeaveRequest) []leaveRequestResponse {
	out := make([]leaveRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = toLeaveRequestResponse(r)
	}
	return out
}

func toManagerRequestList(items []ports.RequestWithRequester) []managerRequestResponse {
	out := make([]managerRequestResponse, len(items))
	for i, item := range items {
		out[i] = managerRequestResponse{
			leaveRequestResponse: toLeaveRequestResponse(item.Request),
		}
		if item.Requester != nil {
			requester := toIdentityResponse(item.Requester)
			out[i].Requester = &requester
		}
	}
	return out
}

func toBoardResponse(board *ports.ManagerBoard) managerDashboardResponse {
	return managerDashboardResponse{
		Pending: toManagerRequestList(board.Pending),
		History: toManagerRequestList(board.History),
	}
}
