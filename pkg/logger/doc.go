// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across commands.
//
// Validation renders a *validator.ValidationError as a "validation" group with
// the keys field, kind and expected, so every rejected value is logged the
// same way.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("fieldcheck")),
//	)
//
//	if _, err := validator.From("age", v).AsInt(); err != nil {
//	    log.Warn("field rejected", logger.Validation(err))
//	}
//
// Error and Validation return an empty Attr for nil or foreign errors, so they
// can be passed without an extra nil check.
package logger
