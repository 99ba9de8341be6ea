package domain

import "time"

// Role classifies an account. Only the three enumerated values ever reach
// the store; NormalizeRole is the single place free-form input is folded in.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

// NormalizeRole maps client-supplied role strings to a closed Role value.
// Unrecognized input, including typos and empty strings, falls back to
// parent. Case-sensitive: "Teacher" is not "teacher".
func NormalizeRole(s string) Role {
	switch s {
	case string(RoleTeacher):
		return RoleTeacher
	case string(RoleStudent):
		return RoleStudent
	default:
		return RoleParent
	}
}

// UserStatusApproved is the only status ever written. The column exists for
// a manual-approval workflow that was removed; every signup is usable
// immediately and login never inspects it.
const UserStatusApproved = "approved"

// User models an account in the system. Passwords are stored and compared
// as-is: hashing is out of scope for this product.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"`
	Email     string    `json:"email"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	CreatedAt time.Time `json:"created_at"`
}
