package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for callers. Every error returned by a use case
// maps to exactly one kind.
type Kind string

// Error kinds
const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindPermissionDenied   Kind = "permission-denied"
	KindInvalidArgument    Kind = "invalid-argument"
	KindNotFound           Kind = "not-found"
	KindFailedPrecondition Kind = "failed-precondition"
	KindAlreadyExists      Kind = "already-exists"
	KindInternal           Kind = "internal"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidArgument       = 4000
	CodeInsufficientPoints    = 4001
	CodeInvalidAmount         = 4002
	CodeInvalidID             = 4003
	CodeCustomerNotVerified   = 4004
	CodeZeroYieldCredit       = 4005
	CodeInvalidConfig         = 4006
	CodeNotAManager           = 4007
	CodeManagerNotAssigned    = 4008
	CodeUnauthenticated       = 4010
	CodePermissionDenied      = 4030
	CodeSelfDealing           = 4031
	CodeWrongBunk             = 4032
	CodeNotFound              = 4040
	CodeUserNotFound          = 4041
	CodeBunkNotFound          = 4042
	CodeConfigNotFound        = 4043
	CodeAlreadyExists         = 4090
	CodeDuplicateRequest      = 4091
	CodeFailedPrecondition    = 4120
	CodeInvalidCreditPercent  = 4121
	CodeInvalidRedemptionRate = 4122

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Error is a domain error carrying a kind and a stable numeric code.
// Sentinels are *Error values, so errors.Is works through wrapping.
type Error struct {
	Kind    Kind
	Code    int
	Message string
}

// New creates a domain error
func New(kind Kind, code int, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// Base error types
var (
	// ErrUnauthenticated is returned when no actor identity is present
	ErrUnauthenticated = New(KindUnauthenticated, CodeUnauthenticated, "the operation requires an authenticated caller")

	// ErrPermissionDenied is returned when the actor lacks the required role
	ErrPermissionDenied = New(KindPermissionDenied, CodePermissionDenied, "permission denied")

	// ErrSelfDealing is returned when a manager targets their own account
	ErrSelfDealing = New(KindPermissionDenied, CodeSelfDealing, "managers cannot credit or redeem points for themselves")

	// ErrWrongBunk is returned when a manager acts at a bunk other than their assignment
	ErrWrongBunk = New(KindPermissionDenied, CodeWrongBunk, "manager is not assigned to this bunk")

	// ErrSelfDeletion is returned when an admin tries to delete their own account
	ErrSelfDeletion = New(KindPermissionDenied, CodePermissionDenied, "users cannot delete their own account")

	// ErrInvalidArgument is returned for malformed input
	ErrInvalidArgument = New(KindInvalidArgument, CodeInvalidArgument, "invalid argument")

	// ErrInvalidID is returned when an identifier is empty or malformed
	ErrInvalidID = New(KindInvalidArgument, CodeInvalidID, "invalid identifier")

	// ErrInvalidAmount is returned when an amount or point count is not a positive finite number
	ErrInvalidAmount = New(KindInvalidArgument, CodeInvalidAmount, "amount must be a positive number")

	// ErrInvalidConfigUpdate is returned when a config patch is malformed or out of range
	ErrInvalidConfigUpdate = New(KindInvalidArgument, CodeInvalidConfig, "invalid configuration update")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = New(KindNotFound, CodeNotFound, "resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = New(KindNotFound, CodeUserNotFound, "user not found")

	// ErrBunkNotFound is returned when the requested bunk doesn't exist
	ErrBunkNotFound = New(KindNotFound, CodeBunkNotFound, "bunk not found")

	// ErrConfigNotFound is returned when the global config singleton is missing
	ErrConfigNotFound = New(KindNotFound, CodeConfigNotFound, "global configuration not found")

	// ErrFailedPrecondition is returned for generic business-rule violations
	ErrFailedPrecondition = New(KindFailedPrecondition, CodeFailedPrecondition, "failed precondition")

	// ErrCustomerNotVerified is returned when crediting or redeeming for an unverified customer
	ErrCustomerNotVerified = New(KindFailedPrecondition, CodeCustomerNotVerified, "customer is not verified")

	// ErrInsufficientPoints is returned when a redemption exceeds the balance
	ErrInsufficientPoints = New(KindFailedPrecondition, CodeInsufficientPoints, "insufficient points")

	// ErrZeroYieldCredit is returned when the configured percentage yields no points
	ErrZeroYieldCredit = New(KindFailedPrecondition, CodeZeroYieldCredit, "configured credit yields no points for this amount")

	// ErrInvalidCreditPercentage is returned when the stored credit percentage is unusable
	ErrInvalidCreditPercentage = New(KindFailedPrecondition, CodeInvalidCreditPercent, "invalid credit percentage configured")

	// ErrInvalidRedemptionRate is returned when the stored redemption rate is unusable
	ErrInvalidRedemptionRate = New(KindFailedPrecondition, CodeInvalidRedemptionRate, "invalid redemption rate configured")

	// ErrNotAManager is returned when assigning a user that doesn't hold the manager role
	ErrNotAManager = New(KindFailedPrecondition, CodeNotAManager, "target user is not a manager")

	// ErrManagerNotAssigned is returned when unassigning a manager from a bunk they don't belong to
	ErrManagerNotAssigned = New(KindFailedPrecondition, CodeManagerNotAssigned, "manager is not assigned to this bunk")

	// ErrAlreadyExists is returned for generic duplicates
	ErrAlreadyExists = New(KindAlreadyExists, CodeAlreadyExists, "resource already exists")

	// ErrDuplicateUser is returned when registering an email that is already in use
	ErrDuplicateUser = New(KindAlreadyExists, CodeAlreadyExists, "a user with this email already exists")

	// ErrDuplicateRequest is returned when a request id is reused for a different operation
	ErrDuplicateRequest = New(KindAlreadyExists, CodeDuplicateRequest, "request id was already used for a different operation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = New(KindInternal, CodeInternalServer, "internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = New(KindInternal, CodeInternalServer, "database connection error")

	// ErrConflict is returned when a transaction loses a serialization race and may be retried
	ErrConflict = New(KindInternal, CodeInternalServer, "concurrent modification conflict")
)

// Invalidf wraps ErrInvalidArgument with a caller-facing message
func Invalidf(format string, args ...any) error {
	return &detailed{base: ErrInvalidArgument, msg: fmt.Sprintf(format, args...)}
}

// WithMessage returns an error that matches base but reports msg to callers
func WithMessage(base *Error, msg string) error {
	return &detailed{base: base, msg: msg}
}

type detailed struct {
	base *Error
	msg  string
}

func (d *detailed) Error() string { return d.msg }

func (d *detailed) Unwrap() error { return d.base }

// KindOf returns the kind of err. Errors outside the taxonomy are internal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternalServer
}

// HTTPStatus maps an error to its HTTP status code
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindInvalidArgument, KindFailedPrecondition:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show a caller. Internal errors
// never expose their details.
func PublicMessage(err error) string {
	if KindOf(err) == KindInternal {
		return ErrInternalServer.Message
	}
	return err.Error()
}

// IsKind reports whether err belongs to kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return IsKind(err, KindNotFound)
}

// OperationError records which operation failed for whom
type OperationError struct {
	Operation string
	ActorID   string
	TargetID  string
	Err       error
}

// Error implements the error interface for OperationError
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s failed (actor: %s, target: %s): %v", e.Operation, e.ActorID, e.TargetID, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OperationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "operation_error",
		"operation":  e.Operation,
		"actor_id":   e.ActorID,
		"target_id":  e.TargetID,
		"error":      e.Err.Error(),
		"error_kind": string(KindOf(e.Err)),
		"error_code": ErrorCode(e.Err),
	}
}

// NewOperationError wraps err with the operation context
func NewOperationError(operation, actorID, targetID string, err error) error {
	return &OperationError{
		Operation: operation,
		ActorID:   actorID,
		TargetID:  targetID,
		Err:       err,
	}
}
