// Package validator asserts the shape of a single named value of unknown type
// and narrows it to a concrete Go type.
//
// Input usually comes from decoded request bodies or configuration maps where
// every value is an `any`. The package models such a value as a closed sum
// type (Value) and wraps it together with its field name in a Field. Typed
// accessors on Field run the minimal ordered sequence of checks for their
// contract and either return the narrowed value or a *ValidationError naming
// the field and the violated constraint.
//
// # Architecture
//
// Two layers:
//   - Check      – pure predicate bound to exactly one failure kind
//   - Field      – immutable (name, Value) pair exposing typed accessors
//
// Nothing is validated when a Field is built. Each accessor decides which
// checks it needs, runs them in order and stops at the first failure, so a
// single call surfaces at most one error. Field performs no caching and holds
// no mutable state, therefore it is safe to share between goroutines.
//
// # Usage
//
//	age, err := validator.From("age", body["age"]).AsInt()
//	if err != nil {
//	    return err // "age" must be an integer.
//	}
//
//	nick, err := validator.From("nickname", body["nickname"]).AsStringOrNull()
//	if err != nil {
//	    return err
//	}
//	if nick == nil {
//	    // field was not provided
//	}
//
//	f, err := validator.From("name", body["name"]).RequireNonEmptyString()
//	if err != nil {
//	    return err // "name" cannot be an empty string.
//	}
//	name, err := f.AsString()
//
// # Optional fields
//
// The OrNull accessors treat null as "not provided" and return nil without
// error. A present value must still have the requested type.
//
// # Error Handling
//
// Every failure is a *ValidationError carrying the field name, the error kind
// and, for type mismatches, the expected type. Use errors.Is with
// ErrNullField, ErrWrongType or ErrEmptyString to branch on the kind, or
// AsValidationError to inspect the details.
package validator
