// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// Error kinds. Every error returned by the service layer unwraps to one
	// of these, which decides the HTTP status.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")

	// User-related errors
	ErrUserNotFound          = &Error{Kind: ErrNotFound, Message: "User not found"}
	ErrEmailAlreadyExists    = &Error{Kind: ErrInvalidInput, Message: "User with this email already exists"}
	ErrInvalidEmailFormat    = &Error{Kind: ErrInvalidInput, Message: "Invalid email format"}
	ErrRestrictedEmailDomain = &Error{Kind: ErrInvalidInput, Message: "Please use your organization email address. Personal email domains are not allowed"}
	ErrInvalidRole           = &Error{Kind: ErrInvalidInput, Message: "Invalid role"}
	ErrInvalidCredentials    = &Error{Kind: ErrUnauthorized, Message: "Invalid credentials"}
	ErrSelfDelete            = &Error{Kind: ErrConflict, Message: "You cannot delete your own account"}
	ErrNotOwner              = &Error{Kind: ErrUnauthorized, Message: "You do not have access to this resource"}
	ErrAdminOnly             = &Error{Kind: ErrUnauthorized, Message: "Only administrators can perform this action"}
	ErrInvalidStatus         = &Error{Kind: ErrInvalidInput, Message: "Invalid status"}

	// Profile-related errors
	ErrOrganizationNotFound = &Error{Kind: ErrNotFound, Message: "Organization not found"}
	ErrMaintainerNotFound   = &Error{Kind: ErrNotFound, Message: "Maintainer not found"}
	ErrFreelancerNotFound   = &Error{Kind: ErrNotFound, Message: "Freelancer not found"}

	// Training-related errors
	ErrTrainingNotFound     = &Error{Kind: ErrNotFound, Message: "Training not found"}
	ErrApplicationNotFound  = &Error{Kind: ErrNotFound, Message: "Application not found"}
	ErrTrainingClosed       = &Error{Kind: ErrInvalidInput, Message: "Training is not accepting applications"}
	ErrAlreadyApplied       = &Error{Kind: ErrInvalidInput, Message: "You have already applied to this training"}
	ErrInvalidDateRange     = &Error{Kind: ErrInvalidInput, Message: "End date must not be before start date"}
	ErrCategoryNotFound     = &Error{Kind: ErrNotFound, Message: "Category not found"}
	ErrLocationNotFound     = &Error{Kind: ErrNotFound, Message: "Location not found"}
	ErrStackNotFound        = &Error{Kind: ErrNotFound, Message: "Stack not found"}
	ErrDuplicateCategory    = &Error{Kind: ErrInvalidInput, Message: "Category with this name already exists"}
	ErrDuplicateLocation    = &Error{Kind: ErrInvalidInput, Message: "Location with this state and district already exists"}
	ErrDuplicateStack       = &Error{Kind: ErrInvalidInput, Message: "Stack with this name already exists"}
	ErrCategoryInUse        = &Error{Kind: ErrConflict, Message: "Cannot delete category with associated trainings"}
	ErrLocationInUse        = &Error{Kind: ErrConflict, Message: "Cannot delete location with associated trainings"}
	ErrStackInUse           = &Error{Kind: ErrConflict, Message: "Cannot delete stack with associated trainings"}

	// Bulk action errors
	ErrEmptyIDs      = &Error{Kind: ErrInvalidInput, Message: "IDs must be a non-empty array"}
	ErrInvalidAction = &Error{Kind: ErrInvalidInput, Message: "Invalid action"}
	ErrInvalidID     = &Error{Kind: ErrInvalidInput, Message: "Invalid ID"}
)

// Error is a client-facing error. Message is safe to return in a response
// body; Kind selects the status code.
type Error struct {
	Kind    error
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Is lets a sentinel *Error match copies produced by WithDetails.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details ...string) *Error {
	return &Error{Kind: e.Kind, Message: e.Message, Details: details}
}

// Invalid builds an ErrInvalidInput error with a formatted message.
func Invalid(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds an ErrNotFound error with a formatted message.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds an ErrConflict error with a formatted message.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized builds an ErrUnauthorized error with a formatted message.
func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}
