package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/swdsms/incident-api/internal/api/metrics"
	"github.com/swdsms/incident-api/internal/core/domain"
	"github.com/swdsms/incident-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user by exact username/role/password match.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("missing_credentials").Inc()
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingCredentials})
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			metrics.LoginsTotal.WithLabelValues("missing_credentials").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingCredentials})
		case errors.Is(err, domain.ErrAccountNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgAccountNotFound})
		case errors.Is(err, domain.ErrIncorrectPassword):
			metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: msgIncorrectPassword})
		default:
			return serverError(c, err)
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		ID:       result.ID,
		Username: result.Username,
		Role:     result.Role,
	})
}

// Signup creates a new account. Accounts are usable immediately: status is
// always "approved", there is no review queue.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFields})
	}

	req := normalizeSignup(payload)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFields})
	}

	result, err := h.authService.Signup(c.Request().Context(), req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingFields})
		case errors.Is(err, domain.ErrDuplicateAccount):
			return c.JSON(http.StatusConflict, errorResponse{Error: msgDuplicateAccount})
		default:
			return serverError(c, err)
		}
	}

	metrics.SignupsTotal.WithLabelValues(string(result.Role)).Inc()
	return c.JSON(http.StatusCreated, signupResponse{
		Message: "Account created",
		User: signupUserResponse{
			ID:       result.ID,
			Username: result.Username,
			Role:     result.Role,
			Status:   result.Status,
		},
	})
}

// serverError renders an unclassified failure. Schema-missing errors carry
// operator guidance instead of the raw store message.
func serverError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSchemaMissing) {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgSchemaMissingGuidance})
	}
	msg := err.Error()
	if msg == "" {
		msg = msgServerError
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: msg})
}
