package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// InvalidTransitionError is returned when a mail item lifecycle action would
// move the status backward or otherwise off the pending -> notified ->
// delivered path.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

// Is enables errors.Is() comparison for InvalidTransitionError; any two
// transition errors compare equal so callers can match the class.
func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// UsageLimitError is returned when an operation would exceed the
// organization's plan limits.
type UsageLimitError struct {
	Limit   string
	Allowed int
}

func (e *UsageLimitError) Error() string {
	return fmt.Sprintf("plan limit reached: %s (max %d)", e.Limit, e.Allowed)
}

// Is enables errors.Is() comparison for UsageLimitError
func (e *UsageLimitError) Is(target error) bool {
	_, ok := target.(*UsageLimitError)
	return ok
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound      = &NotFoundError{Entity: "membership"}
	ErrRecipientNotFound       = &NotFoundError{Entity: "recipient"}
	ErrMailItemNotFound        = &NotFoundError{Entity: "mail item"}
	ErrIntegrationNotFound     = &NotFoundError{Entity: "integration"}
	ErrStorageLocationNotFound = &NotFoundError{Entity: "storage location"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user and organization"}
	ErrIntegrationExists  = &AlreadyExistsError{Entity: "integration", Context: "for this channel in the organization"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidMailItemType     = errors.New("invalid mail item type")
	ErrInvalidRecipientType    = errors.New("invalid recipient type")
	ErrInvalidIntegrationType  = errors.New("invalid integration type")
	ErrInvalidPlanType         = errors.New("invalid plan type")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrRecipientInactive       = errors.New("recipient is inactive")
	ErrBillingNotConfigured    = errors.New("billing provider is not configured")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidResetToken   = &AuthenticationError{Message: "invalid or expired reset token"}
	ErrUserInactive        = &AuthenticationError{Message: "user account is inactive"}
	ErrNotOrganizationUser = &AuthorizationError{Message: "user is not a member of this organization"}
	ErrAdminRequired       = &AuthorizationError{Message: "organization admin role required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsUsageLimit checks if an error is a UsageLimitError
func IsUsageLimit(err error) bool {
	var limitErr *UsageLimitError
	return errors.As(err, &limitErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewUsageLimitError creates a new UsageLimitError
func NewUsageLimitError(limit string, allowed int) error {
	return &UsageLimitError{Limit: limit, Allowed: allowed}
}
