package user

import "errors"

var (
	// -- Validation --
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidRole   = errors.New("invalid role")

	// -- Conflicts --
	ErrUserExists = errors.New("user already exists")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// -- Token --
	ErrTokenDisabled = errors.New("token signing is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// PgUniqueViolation is the SQLSTATE PostgreSQL reports for unique_violation.
const PgUniqueViolation = "23505"

// IsValidation reports whether err is caused by client input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidRole)
}
