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

// EmployeeHandler serves the employee dashboard screen.
type EmployeeHandler struct {
	leaveService ports.LeaveService
	sessions     session.Store
}

func NewEmployeeHandler(leaveService ports.LeaveService, sessions session.Store) *EmployeeHandler {
	return &EmployeeHandler{leaveService: leaveService, sessions: sessions}
}

// Dashboard handles GET /employee-dashboard?status=<tab>.
//
// Without a session the mount redirects to the auth screen before any fetch.
// Otherwise it fetches the session identity's own requests filtered by the
// selected status tab, newest first; every tab change is a full refetch
// through this endpoint.
//
// @Summary      Employee dashboard
// @Tags         employee
// @Produce      json
// @Param        status  query     string  false  "Status tab: pending (default), approved, or rejected"
// @Success      200     {object}  employeeDashboardResponse
// @Failure      400     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /employee-dashboard [get]
func (h *EmployeeHandler) Dashboard(c echo.Context) error {
	sess, err := h.sessions.Current(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	tab := domain.StatusPending
	if raw := c.QueryParam("status"); raw != "" {
		tab = domain.LeaveStatus(raw)
		if !tab.Valid() {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown status tab"})
		}
	}

	requests, err := h.leaveService.ListRequests(c.Request().Context(), sess.Identity.ID, tab)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load leave history"})
	}

	return c.JSON(http.StatusOK, employeeDashboardResponse{
		Profile:   toIdentityResponse(&sess.Identity),
		StatusTab: string(tab),
		Requests:  toLeaveRequestList(requests),
	})
}

// Apply handles POST /employee-dashboard/leave-requests — the "apply for
// leave" form submit.
//
// The new request's status is forced to pending. On success the pending tab
// is refetched and returned so the screen shows the fresh list. Start and
// end dates are stored as given; their order is not validated.
//
// @Summary      Submit a leave request
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        body  body      applyLeaveRequest  true  "Leave request fields"
// @Success      201   {object}  employeeDashboardResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /employee-dashboard/leave-requests [post]
func (h *EmployeeHandler) Apply(c echo.Context) error {
	sess, err := h.sessions.Current(c.Request().Context())
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	var req applyLeaveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.leaveService.CreateRequest(c.Request().Context(), ports.CreateRequestInput{
		EmployeeID: sess.Identity.ID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Category:   domain.LeaveCategory(req.Category),
		Reason:     req.Reason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "unknown leave category"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to submit leave request"})
	}

	metrics.LeaveRequestsSubmittedTotal.WithLabelValues(string(created.Category)).Inc()

	// Refetch after the write, same as the dashboard reloading its list.
	requests, err := h.leaveService.ListRequests(c.Request().Context(), sess.Identity.ID, domain.StatusPending)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load leave history"})
	}

	return c.JSON(http.StatusCreated, employeeDashboardResponse{
		Profile:   toIdentityResponse(&sess.Identity),
		StatusTab: string(domain.StatusPending),
		Requests:  toLeaveRequestList(requests),
	})
}
