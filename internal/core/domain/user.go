package domain

import "time"

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a user of the application in the domain.
//
// PasswordHash, RefreshTokenHash and PasswordResetTokenHash are credential
// material: they are excluded from JSON serialization and only the pgsql
// repository and the credential services ever touch them.
type User struct {
	UserID   string `json:"userID" validate:"required"`
	FullName string `json:"fullName" validate:"required,min=4"`
	Username string `json:"username" validate:"required,min=4"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"required,oneof=user admin"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`

	// PasswordHash stores the bcrypt hash of the user's password. The
	// plaintext is never persisted.
	PasswordHash string `json:"-"`

	// RefreshTokenHash stores the SHA-256 digest of the last issued refresh
	// token. A presented refresh token is only accepted if its digest equals
	// this value, which enforces a single active session per user.
	RefreshTokenHash string `json:"-"`

	// PasswordResetTokenHash stores the SHA-256 digest of the outstanding
	// password reset token, if any. The plaintext token is only ever held by
	// the user it was delivered to.
	PasswordResetTokenHash    string     `json:"-"`
	PasswordResetTokenExpires *time.Time `json:"-"`
	PasswordResetAt           *time.Time `json:"passwordResetAt,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
