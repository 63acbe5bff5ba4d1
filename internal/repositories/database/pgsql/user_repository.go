package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pranavks/user_account_app/internal/apperrors"
	"github.com/pranavks/user_account_app/internal/core/domain"
	portsrepo "github.com/pranavks/user_account_app/internal/core/ports/repositories"
	"github.com/pranavks/user_account_app/internal/models"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a pgx-backed user repository.
func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// userColumns is the full projection, credential fields included. Lookups by
// username/email must include the password hash for the login flow.
const userColumns = `user_id, full_name, username, email, role, phone, password_hash,
	refresh_token_hash, password_reset_token_hash, password_reset_token_expires,
	password_reset_at, created_at, last_updated_at`

// NormalizeEmail applies the same lowercase/trim normalization at lookup time
// that is applied at write time; without this, lookups silently miss.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toModelUser(d domain.User) models.User {
	m := models.User{
		UserID:        d.UserID,
		FullName:      strings.TrimSpace(d.FullName),
		Username:      strings.TrimSpace(d.Username),
		Email:         NormalizeEmail(d.Email),
		Role:          string(d.Role),
		PasswordHash:  d.PasswordHash,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
	if d.Phone != "" {
		m.Phone = sql.NullString{String: d.Phone, Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.PasswordResetTokenHash != "" {
		m.PasswordResetTokenHash = sql.NullString{String: d.PasswordResetTokenHash, Valid: true}
	}
	if d.PasswordResetTokenExpires != nil {
		m.PasswordResetTokenExpires = sql.NullTime{Time: *d.PasswordResetTokenExpires, Valid: true}
	}
	if d.PasswordResetAt != nil {
		m.PasswordResetAt = sql.NullTime{Time: *d.PasswordResetAt, Valid: true}
	}
	return m
}

func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:        m.UserID,
		FullName:      m.FullName,
		Username:      m.Username,
		Email:         m.Email,
		Role:          domain.Role(m.Role),
		PasswordHash:  m.PasswordHash,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
	if m.Phone.Valid {
		d.Phone = m.Phone.String
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.PasswordResetTokenHash.Valid {
		d.PasswordResetTokenHash = m.PasswordResetTokenHash.String
	}
	if m.PasswordResetTokenExpires.Valid {
		t := m.PasswordResetTokenExpires.Time
		d.PasswordResetTokenExpires = &t
	}
	if m.PasswordResetAt.Valid {
		t := m.PasswordResetAt.Time
		d.PasswordResetAt = &t
	}
	return d
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.FullName,
		&m.Username,
		&m.Email,
		&m.Role,
		&m.Phone,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.PasswordResetTokenHash,
		&m.PasswordResetTokenExpires,
		&m.PasswordResetAt,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, full_name, username, email, role, phone, password_hash, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.FullName,
		m.Username,
		m.Email,
		m.Role,
		m.Phone,
		m.PasswordHash,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE user_id = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByResetTokenDigest(ctx context.Context, digest string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE password_reset_token_hash = $1;`, userColumns)
	user, err := scanUser(r.db.QueryRow(ctx, query, digest))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by reset token digest: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
        SELECT %s FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `, userColumns)
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        UPDATE users
        SET full_name = $1, phone = $2, password_hash = $3, last_updated_at = $4
        WHERE user_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.FullName,
		m.Phone,
		m.PasswordHash,
		m.LastUpdatedAt,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, last_updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, refreshTokenHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = NULL, last_updated_at = $1
        WHERE user_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) SetPasswordResetToken(ctx context.Context, userID string, tokenDigest string, expiresAt time.Time) error {
	// Overwrites any outstanding token pair; issuing a new reset token
	// invalidates the previous one.
	query := `
        UPDATE users
        SET password_reset_token_hash = $1, password_reset_token_expires = $2, last_updated_at = $3
        WHERE user_id = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, tokenDigest, expiresAt, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to set password reset token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePasswordAfterReset(ctx context.Context, userID string, passwordHash string, resetAt time.Time) error {
	// Single-row atomic update: the new hash lands together with the token
	// pair being cleared, so a reset token can never be replayed.
	query := `
        UPDATE users
        SET password_hash = $1,
            password_reset_token_hash = NULL,
            password_reset_token_expires = NULL,
            password_reset_at = $2,
            last_updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, passwordHash, resetAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update password after reset for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
