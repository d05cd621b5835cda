package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrUnavailable       = errors.New("unavailable")
	ErrBindingNotFound   = errors.New("service binding not found")
	ErrMalformedBinding  = errors.New("malformed service binding")
	ErrMissingCredential = errors.New("missing credential")
	ErrMalformedProperty = errors.New("malformed property")
)

// MsgRequired is the validation message for fields that must be present.
const MsgRequired = "required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// BindingNotFoundError reports that cloud mode was detected but no usable
// service binding was discovered. ID is set when a specific binding was asked for.
type BindingNotFoundError struct {
	ID     string
	Labels []string
}

func (e *BindingNotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s: no binding with id %q", ErrBindingNotFound.Error(), e.ID)
	}
	if len(e.Labels) > 0 {
		return fmt.Sprintf("%s: cloud environment detected but no %s binding was discovered",
			ErrBindingNotFound.Error(), strings.Join(e.Labels, " or "))
	}
	return ErrBindingNotFound.Error() + ": cloud environment detected but no binding was discovered"
}

func (e *BindingNotFoundError) Unwrap() error {
	return ErrBindingNotFound
}

// MissingCredentialError reports a credential that neither local settings nor
// the selected binding supplied, raised when a session is opened.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCredential.Error(), e.Field)
}

func (e *MissingCredentialError) Unwrap() error {
	return ErrMissingCredential
}

// MalformedPropertyError wraps a rejection of a property by the broker client.
type MalformedPropertyError struct {
	Key   string
	Value string
	Err   error
}

func (e *MalformedPropertyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", ErrMalformedProperty.Error(), e.Err)
	}
	return fmt.Sprintf("%s %q=%q: %v", ErrMalformedProperty.Error(), e.Key, e.Value, e.Err)
}

func (e *MalformedPropertyError) Unwrap() []error {
	return []error{ErrMalformedProperty, e.Err}
}
