package handler

import (
	"time"

	"github.com/swdsms/incident-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Client-visible error messages. Kept as fixed strings so the frontend can
// match on them.
const (
	msgMissingCredentials    = "Missing credentials"
	msgAccountNotFound       = "Account not found"
	msgIncorrectPassword     = "Incorrect password"
	msgMissingFields         = "Missing fields"
	msgDuplicateAccount      = "Username or email already exists"
	msgMissingReportFields   = "Missing required fields"
	msgReportNotFound        = "Report not found"
	msgFailedToUpdateReport  = "Failed to update report"
	msgFailedToLoadUsers     = "Failed to load users"
	msgServerError           = "Server error"
	msgSchemaMissingGuidance = "Database schema missing: apply the SQL files in database/migrations (or restart with DATABASE_MIGRATE=true), then retry"
)

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

// signupRequest holds the signup payload after alias normalization. The
// validate tags back the presence check required before any store call.
type signupRequest struct {
	Role      string `json:"role"      validate:"required"`
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname"  validate:"required"`
	Username  string `json:"username"  validate:"required"`
	Email     string `json:"email"     validate:"required"`
	Password  string `json:"password"  validate:"required"`
}

type signupUserResponse struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	Status   string      `json:"status"`
}

type signupResponse struct {
	Message string             `json:"message"`
	User    signupUserResponse `json:"user"`
}

// createReportRequest holds the report payload after alias normalization.
// Codename is the only optional field and stays nil when absent.
type createReportRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Codename    *string `json:"codename"`
	Grade       string  `json:"grade"       validate:"required"`
	Type        string  `json:"type"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Date        string  `json:"date"        validate:"required"`
}

// userResponse is the account projection used in the admin listing. Owned
// by the transport layer so the JSON contract (password never present) is
// not coupled to internal model changes.
type userResponse struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	Status    string      `json:"status"`
	Email     string      `json:"email"`
	Firstname string      `json:"firstname"`
	Lastname  string      `json:"lastname"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Status:    u.Status,
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		CreatedAt: u.CreatedAt,
	}
}
