package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Accessor selects the typed read performed on a field.
type Accessor string

const (
	AccessBool         Accessor = "bool"
	AccessBoolOrNull   Accessor = "bool?"
	AccessInt          Accessor = "int"
	AccessIntOrNull    Accessor = "int?"
	AccessString       Accessor = "string"
	AccessStringOrNull Accessor = "string?"
	AccessRequired     Accessor = "required"
)

var ErrUnknownAccessor = errors.New("unknown accessor")

var accessors = []Accessor{
	AccessBool, AccessBoolOrNull,
	AccessInt, AccessIntOrNull,
	AccessString, AccessStringOrNull,
	AccessRequired,
}

func ParseAccessor(s string) (Accessor, error) {
	for _, a := range accessors {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of %s", ErrUnknownAccessor, s, accessorList())
}

func accessorList() string {
	names := make([]string, len(accessors))
	for i, a := range accessors {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

const nullOutput = "null"

// Apply reads f with the accessor and renders the narrowed value for output.
func (a Accessor) Apply(f validator.Field) (string, error) {
	switch a {
	case AccessBool:
		b, err := f.AsBool()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	case AccessBoolOrNull:
		b, err := f.AsBoolOrNull()
		if err != nil {
			return "", err
		}
		if b == nil {
			return nullOutput, nil
		}
		return strconv.FormatBool(*b), nil
	case AccessInt:
		i, err := f.AsInt()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(i, 10), nil
	case AccessIntOrNull:
		i, err := f.AsIntOrNull()
		if err != nil {
			return "", err
		}
		if i == nil {
			return nullOutput, nil
		}
		return strconv.FormatInt(*i, 10), nil
	case AccessString:
		return f.AsString()
	case AccessStringOrNull:
		s, err := f.AsStringOrNull()
		if err != nil {
			return "", err
		}
		if s == nil {
			return nullOutput, nil
		}
		return *s, nil
	case AccessRequired:
		v, err := f.AsRequired()
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v.Interface()), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownAccessor, a)
	}
}
