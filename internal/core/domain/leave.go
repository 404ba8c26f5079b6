package domain

import (
	"errors"
	"math"
	"time"
)

// LeaveStatus represents the lifecycle state of a leave request.
type LeaveStatus string

const (
	StatusPending  LeaveStatus = "pending"
	StatusApproved LeaveStatus = "approved"
	StatusRejected LeaveStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions. A decided
// request never returns to pending.
var validTransitions = map[LeaveStatus][]LeaveStatus{
	StatusPending: {StatusApproved, StatusRejected},
}

var ErrRequestNotFound = errors.New("leave request not found")
var ErrInvalidDecision = errors.New("decision must be approved or rejected")
var ErrInvalidCategory = errors.New("unknown leave category")
var ErrInvalidStatus = errors.New("unknown leave status")

// Valid reports whether the status is one of the three known values.
func (s LeaveStatus) Valid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s LeaveStatus) CanTransitionTo(next LeaveStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// LeaveCategory is the closed set of leave types an employee may request.
type LeaveCategory string

const (
	CategoryAnnual             LeaveCategory = "Annual Leave"
	CategorySick               LeaveCategory = "Sick Leave"
	CategoryCasual             LeaveCategory = "Casual Leave"
	CategoryMaternityPaternity LeaveCategory = "Maternity/Paternity Leave"
	CategoryUnpaid             LeaveCategory = "Unpaid Leave"
	CategoryCompensatoryOff    LeaveCategory = "Compensatory Off"
)

// Categories lists every selectable leave category.
var Categories = []LeaveCategory{
	CategoryAnnual,
	CategorySick,
	CategoryCasual,
	CategoryMaternityPaternity,
	CategoryUnpaid,
	CategoryCompensatoryOff,
}

// Valid reports whether the category is a member of the closed set.
func (c LeaveCategory) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// LeaveRequest is one employee's request for time off. EmployeeID references
// the store-assigned ID of an employees-table Identity, not the 7-digit
// Identity.EmployeeID. Only Status and UpdatedAt are ever mutated, and only
// by a manager decision.
type LeaveRequest struct {
	ID         string        `json:"id" bson:"_id,omitempty"`
	EmployeeID string        `json:"employee_id" bson:"employee_id"`
	StartDate  time.Time     `json:"start_date" bson:"start_date"`
	EndDate    time.Time     `json:"end_date" bson:"end_date"`
	Category   LeaveCategory `json:"category" bson:"category"`
	Reason     string        `json:"reason" bson:"reason"`
	Status     LeaveStatus   `json:"status" bson:"status"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
}

// Duration returns the inclusive day count for the request's date range.
func (r LeaveRequest) Duration() int {
	return DurationDays(r.StartDate, r.EndDate)
}

// DurationDays computes the inclusive day count between two dates:
// ceil(|end - start| / 24h) + 1, so start == end yields 1. The absolute
// difference means an inverted range produces the same count as the ordered
// one; ranges are intentionally not validated for order.
func DurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}
