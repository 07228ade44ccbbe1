package validator

// Check verifies one constraint on a field's value and returns a
// *ValidationError when it does not hold.
type Check func(field string, v Value) error

// CheckNotNull fails with KindNull when v is null. Empty strings and zero
// integers are not null.
func CheckNotNull(field string, v Value) error {
	if v.IsNull() {
		return nullError(field)
	}
	return nil
}

// CheckIsBool fails when v is not a boolean. Null is not a boolean either;
// run CheckNotNull first to get a distinct error for it.
func CheckIsBool(field string, v Value) error {
	if v.typ != TypeBool {
		return wrongTypeError(field, TypeBool)
	}
	return nil
}

// CheckIsInt fails when v is not an integer. Numeric strings are rejected.
func CheckIsInt(field string, v Value) error {
	if v.typ != TypeInt {
		return wrongTypeError(field, TypeInt)
	}
	return nil
}

func CheckIsString(field string, v Value) error {
	if v.typ != TypeString {
		return wrongTypeError(field, TypeString)
	}
	return nil
}

// CheckStringNotEmpty fails when v equals the empty string. Values of any
// other type never equal "" and pass.
func CheckStringNotEmpty(field string, v Value) error {
	if v.typ == TypeString && v.s == "" {
		return emptyStringError(field)
	}
	return nil
}

// Run executes checks in order and returns the first failure.
// Checks after a failing one are not executed.
func Run(field string, v Value, checks ...Check) error {
	for _, check := range checks {
		if err := check(field, v); err != nil {
			return err
		}
	}
	return nil
}
