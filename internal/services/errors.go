// internal/services/errors.go
package services

import "errors"

// Sentinel errors handlers translate into the HTTP error taxonomy.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is not active")
	ErrForbidden          = errors.New("operation not permitted")
)
