package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// redirectResponse tells the client which route to navigate to next.
type redirectResponse struct {
	Redirect string `json:"redirect"`
}

// --- Request types ---

type loginRequest struct {
	AccountType string `json:"account_type" validate:"required,oneof=employee manager"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required"`
}

type registerRequest struct {
	AccountType   string `json:"account_type"    validate:"required,oneof=employee manager"`
	Name          string `json:"name"            validate:"required"`
	PhotoURL      string `json:"photo_url"       validate:"omitempty,url"`
	EmployeeID    string `json:"employee_id"     validate:"required"`
	Role          string `json:"role"            validate:"required"`
	DateOfJoining string `json:"date_of_joining" validate:"required,datetime=2006-01-02"`
	DateOfBirth   string `json:"date_of_birth"   validate:"required,datetime=2006-01-02"`
	Email         string `json:"email"           validate:"required,email"`
	Password      string `json:"password"        validate:"required"`
}

type applyLeaveRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Category  string `json:"category"   validate:"required"`
	Reason    string `json:"reason"     validate:"required"`
}

type decisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// domain types so the JSON contract is not coupled to internal changes.

type identityResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photo_url,omitempty"`
	DateOfJoining string `json:"date_of_joining"`
	DateOfBirth   string `json:"date_of_birth"`
}

type loginResponse struct {
	User        identityResponse `json:"user"`
	AccountType string           `json:"account_type"`
	Redirect    string           `json:"redirect"`
}

type registerResponse struct {
	User     identityResponse `json:"user"`
	Redirect string           `json:"redirect"`
}

// leaveRequestResponse carries one request row plus its display duration,
// the inclusive day count between start and end.
type leaveRequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Category     string `json:"category"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	DurationDays int    `json:"duration_days"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type employeeDashboardResponse struct {
	Profile   identityResponse       `json:"profile"`
	StatusTab string                 `json:"status_tab"`
	Requests  []leaveRequestResponse `json:"requests"`
}

// managerRequestResponse is a request joined with the requester's profile,
// which also backs the dashboard's profile modal.
type managerRequestResponse struct {
	leaveRequestResponse
	Requester *identityResponse `json:"requester,omitempty"`
}

type managerDashboardResponse struct {
	Pending []managerRequestResponse `json:"pending"`
	History []managerRequestResponse `json:"history"`
}
