package domain

import (
	"errors"
	"fmt"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

var (
	MessageUserNotAllowed    = "user not allowed"
	MessageFailedBodyRequest = "failed to parse request body"

	ErrParseUUID         = errors.New("failed to parse UUID")
	ErrCredentialsWrong  = errors.New("username or password is wrong")
	ErrTokenNotFound     = errors.New("failed to token not found")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrInvalidPermission = errors.New("cannot evaluate a permission that is not a plain action name")
)

// NotFoundError marks an absent entity. The message text is returned verbatim
// in response bodies, so callers build it once and keep it intact.
type NotFoundError struct {
	Message string
}

func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidStateError covers structural validation failures and store write
// failures surfaced with the underlying cause's message.
type InvalidStateError struct {
	Message string
}

func NewInvalidStateError(format string, args ...any) *InvalidStateError {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidStateError) Error() string { return e.Message }
