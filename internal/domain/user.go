package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleAdmin    UserRole = "admin"
)

// PasswordFormat records how the stored credential must be compared.
// Decided once when the password is written; legacy rows without a format
// are prefix-sniffed at verification time.
type PasswordFormat string

const (
	PasswordBcrypt      PasswordFormat = "bcrypt"
	PasswordPlainLegacy PasswordFormat = "plain"
)

type User struct {
	ID             int64          `json:"id"`
	Email          string         `json:"email" validate:"required,email"`
	PasswordHash   string         `json:"-"`
	PasswordFormat PasswordFormat `json:"-"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone,omitempty"`
	Role           UserRole       `json:"role"`
	IsBanned       bool           `json:"is_banned,omitempty"`
	BannedAt       *time.Time     `json:"banned_at,omitempty"`
	BanReason      string         `json:"ban_reason,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
