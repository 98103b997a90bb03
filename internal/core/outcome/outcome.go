// Package outcome is the tagged result returned by the management facades
package outcome

import (
	perr "chargemap/internal/platform/errors"
)

// Kind is the stable machine name of an outcome
type Kind string

const (
	// OK means the operation succeeded and Value is set
	OK Kind = "ok"
	// Validation means the caller sent input the domain rejects
	Validation Kind = "validation_error"
	// NotFound means the addressed station or rating does not exist
	NotFound Kind = "not_found"
	// PermissionDenied means the caller does not own the target
	PermissionDenied Kind = "permission_denied"
	// Unauthenticated means the operation needs a caller identity
	Unauthenticated Kind = "unauthenticated"
	// Conflict means a business rule refused the write
	Conflict Kind = "conflict"
	// SystemFault means something below the domain failed
	SystemFault Kind = "system_fault"
)

// SystemFaultMessage is the only message a system fault ever carries
const SystemFaultMessage = "internal error"

// Result carries either a value or a classified failure
type Result[T any] struct {
	Kind    Kind
	Value   T
	Message string
	Field   string

	cause error
}

// Ok wraps a successful value
func Ok[T any](v T) Result[T] { return Result[T]{Kind: OK, Value: v} }

// Fail builds a failed result of kind k
func Fail[T any](k Kind, msg, field string) Result[T] {
	if k == SystemFault {
		msg, field = SystemFaultMessage, ""
	}
	return Result[T]{Kind: k, Message: msg, Field: field}
}

// From classifies err and returns v on success
func From[T any](v T, err error) Result[T] {
	if err == nil {
		return Ok(v)
	}
	k := KindOf(err)
	if k == SystemFault {
		r := Fail[T](SystemFault, "", "")
		r.cause = err
		return r
	}
	msg := err.Error()
	if e, ok := perr.As(err); ok {
		msg = e.Message()
	}
	r := Fail[T](k, msg, perr.FieldOf(err))
	r.cause = err
	return r
}

// KindOf maps an error code onto an outcome kind
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeValidation, perr.ErrorCodeJSON, perr.ErrorCodeInvalidArgument:
		return Validation
	case perr.ErrorCodeNotFound:
		return NotFound
	case perr.ErrorCodeForbidden:
		return PermissionDenied
	case perr.ErrorCodeUnauthorized:
		return Unauthenticated
	case perr.ErrorCodeConflict, perr.ErrorCodeDuplicateKey:
		return Conflict
	default:
		return SystemFault
	}
}

// IsOK reports whether the result holds a value
func (r Result[T]) IsOK() bool { return r.Kind == OK }

// Cause returns the classified error, nil on success
// system faults keep their cause for logging only
func (r Result[T]) Cause() error { return r.cause }

// Err turns the result back into a coded error for transports
// system faults never leak the underlying cause
func (r Result[T]) Err() error {
	switch r.Kind {
	case OK:
		return nil
	case Validation:
		return perr.Validationf(r.Field, "%s", r.Message)
	case NotFound:
		return perr.NotFoundf("%s", r.Message)
	case PermissionDenied:
		return perr.Forbiddenf("%s", r.Message)
	case Unauthenticated:
		return perr.Unauthorizedf("%s", r.Message)
	case Conflict:
		return perr.Conflictf("%s", r.Message)
	default:
		return perr.Internalf(SystemFaultMessage)
	}
}

// Unwrap returns the value and the transport error in one call
func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err() }
