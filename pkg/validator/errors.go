package validator

import (
	"errors"
	"fmt"
)

// Sentinels matched by *ValidationError through errors.Is.
var (
	// ErrNullField is matched when a required field is null.
	ErrNullField = errors.New("field cannot be null")

	// ErrWrongType is matched when a field holds a value of another type.
	ErrWrongType = errors.New("field has wrong type")

	// ErrEmptyString is matched when a field equals the empty string.
	ErrEmptyString = errors.New("field cannot be an empty string")
)

// ErrorKind tags a ValidationError with the violated constraint.
type ErrorKind uint8

const (
	KindNull ErrorKind = iota + 1
	KindWrongType
	KindEmptyString
)

func (k ErrorKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindWrongType:
		return "wrong_type"
	case KindEmptyString:
		return "empty_string"
	default:
		return "unknown"
	}
}

// ValidationError describes why a single field failed validation.
// Expected is only meaningful for KindWrongType.
type ValidationError struct {
	Kind     ErrorKind
	Field    string
	Expected Type
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindNull:
		return fmt.Sprintf("\"%s\" cannot be null.", e.Field)
	case KindWrongType:
		return fmt.Sprintf("\"%s\" must be %s.", e.Field, article(e.Expected))
	case KindEmptyString:
		return fmt.Sprintf("\"%s\" cannot be an empty string.", e.Field)
	default:
		return fmt.Sprintf("\"%s\" is invalid.", e.Field)
	}
}

// Is reports whether target is the sentinel for the error's kind.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrNullField:
		return e.Kind == KindNull
	case ErrWrongType:
		return e.Kind == KindWrongType
	case ErrEmptyString:
		return e.Kind == KindEmptyString
	}
	return false
}

func article(t Type) string {
	switch t {
	case TypeInt:
		return "an integer"
	default:
		return "a " + t.String()
	}
}

func nullError(field string) error {
	return &ValidationError{Kind: KindNull, Field: field}
}

func wrongTypeError(field string, expected Type) error {
	return &ValidationError{Kind: KindWrongType, Field: field, Expected: expected}
}

func emptyStringError(field string) error {
	return &ValidationError{Kind: KindEmptyString, Field: field}
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}
