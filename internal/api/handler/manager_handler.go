package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/easyleave/leave-api/internal/api/metrics"
	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/core/ports"
	"github.com/easyleave/leave-api/internal/session"
)

// ManagerHandler serves the manager dashboard screen.
type ManagerHandler struct {
	leaveService ports.LeaveService
	sessions     session.Store
}

func NewManagerHandler(leaveService ports.LeaveService, sessions session.Store) *ManagerHandler {
	return &ManagerHandler{leaveService: leaveService, sessions: sessions}
}

// Board handles GET /manager-dashboard.
//
// Without a session the mount redirects to the auth screen before any fetch.
// Otherwise both lists are fetched up front — pending by submission time,
// history by decision time — each joined with the requester's profile, which
// also backs the profile modal. Switching tabs between them is client-side
// and never refetches.
//
// @Summary      Manager dashboard
// @Tags         manager
// @Produce      json
// @Success      200  {object}  managerDashboardResponse
// @Failure      500  {object}  errorResponse
// @Router       /manager-dashboard [get]
func (h *ManagerHandler) Board(c echo.Context) error {
	if _, err := h.sessions.Current(c.Request().Context()); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	board, err := h.leaveService.Board(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load leave requests"})
	}

	return c.JSON(http.StatusOK, toBoardResponse(board))
}

// Decide handles POST /manager-dashboard/leave-requests/:id/decision —
// the approve and reject controls on a pending row.
//
// The decision writes only status and updated_at on the request, then both
// lists are refetched so the row moves from pending into history.
//
// @Summary      Approve or reject a leave request
// @Tags         manager
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Leave request id"
// @Param        body  body      decisionRequest  true  "approved or rejected"
// @Success      200   {object}  managerDashboardResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /manager-dashboard/leave-requests/{id}/decision [post]
func (h *ManagerHandler) Decide(c echo.Context) error {
	if _, err := h.sessions.Current(c.Request().Context()); err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var req decisionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	decision := domain.LeaveStatus(req.Status)
	if err := h.leaveService.DecideRequest(c.Request().Context(), c.Param("id"), decision); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDecision):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrRequestNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "leave request not found"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update leave request"})
		}
	}

	metrics.LeaveDecisionsTotal.WithLabelValues(req.Status).Inc()

	// Refetch both lists after the write so the decided row shows up in
	// history on the response.
	board, err := h.leaveService.Board(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load leave requests"})
	}

	return c.JSON(http.StatusOK, toBoardResponse(board))
}
