package models

import (
	"database/sql"
	"time"
)

// User is the database representation of a user row.
// Credential columns are nullable because a row may exist without an
// outstanding refresh token or reset token.
type User struct {
	UserID       string         `db:"user_id"`
	FullName     string         `db:"full_name"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	Role         string         `db:"role"`
	Phone        sql.NullString `db:"phone"`
	PasswordHash string         `db:"password_hash"`

	RefreshTokenHash sql.NullString `db:"refresh_token_hash"`

	PasswordResetTokenHash    sql.NullString `db:"password_reset_token_hash"`
	PasswordResetTokenExpires sql.NullTime   `db:"password_reset_token_expires"`
	PasswordResetAt           sql.NullTime   `db:"password_reset_at"`

	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
