package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/easyleave/leave-api/internal/core/domain"
	"github.com/easyleave/leave-api/internal/session"
)

func TestEmployeeHandler_Dashboard_NoSessionRedirects(t *testing.T) {
	svc := &stubLeaveService{listErr: domain.ErrRequestNotFound}
	h := NewEmployeeHandler(svc, session.NewMemoryStore())

	c, rec := newTestContext(http.MethodGet, "/employee-dashboard", "")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("location = %q, want /", loc)
	}
	// listErr would surface as a 500 if the guard had fetched anything.
}

func TestEmployeeHandler_Dashboard_DefaultTab(t *testing.T) {
	identity := testIdentity()
	svc := &stubLeaveService{}
	h := NewEmployeeHandler(svc, authenticatedStore(t, identity, domain.AccountEmployee))

	c, rec := newTestContext(http.MethodGet, "/employee-dashboard", "")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp employeeDashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.StatusTab != "pending" {
		t.Fatalf("status_tab = %q, want pending", resp.StatusTab)
	}
	if resp.Profile.ID != identity.ID {
		t.Fatalf("profile id = %q, want %q", resp.Profile.ID, identity.ID)
	}
}

func TestEmployeeHandler_Dashboard_UnknownTab(t *testing.T) {
	h := NewEmployeeHandler(&stubLeaveService{}, authenticatedStore(t, testIdentity(), domain.AccountEmployee))

	c, rec := newTestContext(http.MethodGet, "/employee-dashboard?status=cancelled", "")
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEmployeeHandler_Apply_Success(t *testing.T) {
	identity := testIdentity()
	svc := &stubLeaveService{}
	h := NewEmployeeHandler(svc, authenticatedStore(t, identity, domain.AccountEmployee))

	c, rec := newTestContext(http.MethodPost, "/employee-dashboard/leave-requests", `{
		"start_date": "2024-01-10",
		"end_date": "2024-01-12",
		"category": "Sick Leave",
		"reason": "flu"
	}`)
	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}

	var resp employeeDashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.StatusTab != "pending" {
		t.Fatalf("status_tab = %q, want pending", resp.StatusTab)
	}
	if len(resp.Requests) != 1 {
		t.Fatalf("expected the fresh pending list with one row, got %d", len(resp.Requests))
	}

	row := resp.Requests[0]
	if row.Status != "pending" {
		t.Fatalf("status = %q, want pending", row.Status)
	}
	if row.Category != "Sick Leave" || row.Reason != "flu" {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.StartDate != "2024-01-10" || row.EndDate != "2024-01-12" {
		t.Fatalf("unexpected dates: %s .. %s", row.StartDate, row.EndDate)
	}
	if row.DurationDays != 3 {
		t.Fatalf("duration_days = %d, want 3", row.DurationDays)
	}
	if row.EmployeeID != identity.ID {
		t.Fatalf("employee_id = %q, want the session identity id %q", row.EmployeeID, identity.ID)
	}
}

func TestEmployeeHandler_Apply_UnknownCategory(t *testing.T) {
	svc := &stubLeaveService{}
	h := NewEmployeeHandler(svc, authenticatedStore(t, testIdentity(), domain.AccountEmployee))

	c, rec := newTestContext(http.MethodPost, "/employee-dashboard/leave-requests", `{
		"start_date": "2024-01-10",
		"end_date": "2024-01-12",
		"category": "Sabbatical",
		"reason": "travel"
	}`)
	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(svc.requests) != 0 {
		t.Fatalf("expected no request stored on invalid category")
	}
}

func TestEmployeeHandler_Apply_MissingFields(t *testing.T) {
	h := NewEmployeeHandler(&stubLeaveService{}, authenticatedStore(t, testIdentity(), domain.AccountEmployee))

	c, rec := newTestContext(http.MethodPost, "/employee-dashboard/leave-requests", `{
		"start_date": "2024-01-10",
		"category": "Sick Leave"
	}`)
	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEmployeeHandler_Apply_NoSessionRedirects(t *testing.T) {
	svc := &stubLeaveService{}
	h := NewEmployeeHandler(svc, session.NewMemoryStore())

	c, rec := newTestContext(http.MethodPost, "/employee-dashboard/leave-requests", `{
		"start_date": "2024-01-10",
		"end_date": "2024-01-12",
		"category": "Sick Leave",
		"reason": "flu"
	}`)
	if err := h.Apply(c); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if len(svc.requests) != 0 {
		t.Fatalf("expected no write without a session")
	}
}
