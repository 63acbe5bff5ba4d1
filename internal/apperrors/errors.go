package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller's credentials are missing or wrong.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrHashingFailed indicates that the password hashing primitive malfunctioned,
// e.g. a malformed stored hash. A plain credential mismatch is reported as
// ErrUnauthorized instead, never as ErrHashingFailed.
var ErrHashingFailed = errors.New("password hashing failed")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrResetTokenExpired indicates the presented password reset token is past its expiry.
var ErrResetTokenExpired = errors.New("password reset token expired")
