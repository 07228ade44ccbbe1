package logger

import (
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Validation expands a validation failure into a "validation" group holding
// field, kind and, for type mismatches, expected. Errors that do not wrap a
// *validator.ValidationError yield an empty Attr.
func Validation(err error) slog.Attr {
	verr, ok := validator.AsValidationError(err)
	if !ok {
		return slog.Attr{}
	}

	attrs := []slog.Attr{
		Field(verr.Field),
		slog.String("kind", verr.Kind.String()),
	}
	if verr.Kind == validator.KindWrongType {
		attrs = append(attrs, slog.String("expected", verr.Expected.String()))
	}
	return Group("validation", attrs...)
}
