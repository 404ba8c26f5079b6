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

// AuthHandler serves the auth and registration screens.
type AuthHandler struct {
	authService ports.AuthService
	sessions    session.Store
}

func NewAuthHandler(authService ports.AuthService, sessions session.Store) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Login handles POST / — the auth screen's submit action.
//
// On exactly one credential match the session holder is populated and the
// response names the dashboard route for the selected account type. Zero
// matches and lookup failures produce one generic message.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Account type and credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       / [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	accountType := domain.AccountType(req.AccountType)
	identity, err := h.authService.Authenticate(c.Request().Context(), accountType, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(req.AccountType, "failure").Inc()
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	}

	if err := h.sessions.Save(c.Request().Context(), &session.Session{
		Identity:    *identity,
		AccountType: accountType,
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "an error occurred during login"})
	}

	metrics.LoginsTotal.WithLabelValues(req.AccountType, "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		User:        toIdentityResponse(identity),
		AccountType: req.AccountType,
		Redirect:    accountType.DashboardPath(),
	})
}

// Register handles POST /register — the registration screen's submit action.
//
// The 7-digit identifier is validated locally before any store call;
// duplicate employee_id or email surfaces as a conflict, every other store
// failure as one generic message.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Profile fields"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		AccountType:   domain.AccountType(req.AccountType),
		Name:          req.Name,
		PhotoURL:      req.PhotoURL,
		EmployeeID:    req.EmployeeID,
		Role:          req.Role,
		DateOfJoining: req.DateOfJoining,
		DateOfBirth:   req.DateOfBirth,
		Email:         req.Email,
		Password:      req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEmployeeID):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "employee id must be exactly 7 digits"})
		case errors.Is(err, domain.ErrIdentityExists):
			return c.JSON(http.StatusConflict, errorResponse{Error: "employee id or email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "registration failed, please try again"})
		}
	}

	metrics.RegistrationsTotal.WithLabelValues(req.AccountType).Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		User:     toIdentityResponse(identity),
		Redirect: "/",
	})
}

// Logout handles POST /logout — clears both session keys together and sends
// the client back to the auth screen.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      303
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "logout failed"})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
