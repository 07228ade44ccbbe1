package validator

// Field is an immutable (name, value) pair. Its accessors validate the value
// on every call and narrow it to the requested type.
type Field struct {
	name  string
	value Value
}

// From starts a validation chain. It never fails; checks run only when an
// accessor is called. The value is converted with Of.
func From(name string, value any) Field {
	return Field{name: name, value: Of(value)}
}

func (f Field) Name() string { return f.name }

func (f Field) Value() Value { return f.value }

// RequireNonEmptyString fails when the value is the empty string and
// otherwise returns the field unchanged for a following accessor call.
// The type is not checked: a non-string value passes.
func (f Field) RequireNonEmptyString() (Field, error) {
	if err := CheckStringNotEmpty(f.name, f.value); err != nil {
		return Field{}, err
	}
	return f, nil
}

func (f Field) AsBool() (bool, error) {
	if err := Run(f.name, f.value, CheckNotNull, CheckIsBool); err != nil {
		return false, err
	}
	return f.value.b, nil
}

// AsBoolOrNull returns nil for a null value. A present value must be a boolean.
func (f Field) AsBoolOrNull() (*bool, error) {
	if f.value.IsNull() {
		return nil, nil
	}
	if err := CheckIsBool(f.name, f.value); err != nil {
		return nil, err
	}
	b := f.value.b
	return &b, nil
}

func (f Field) AsInt() (int64, error) {
	if err := Run(f.name, f.value, CheckNotNull, CheckIsInt); err != nil {
		return 0, err
	}
	return f.value.i, nil
}

// AsIntOrNull returns nil for a null value. A present value must be an integer.
func (f Field) AsIntOrNull() (*int64, error) {
	if f.value.IsNull() {
		return nil, nil
	}
	if err := CheckIsInt(f.name, f.value); err != nil {
		return nil, err
	}
	i := f.value.i
	return &i, nil
}

func (f Field) AsString() (string, error) {
	if err := Run(f.name, f.value, CheckNotNull, CheckIsString); err != nil {
		return "", err
	}
	return f.value.s, nil
}

// AsStringOrNull returns nil for a null value. A present value must be a string.
func (f Field) AsStringOrNull() (*string, error) {
	if f.value.IsNull() {
		return nil, nil
	}
	if err := CheckIsString(f.name, f.value); err != nil {
		return nil, err
	}
	s := f.value.s
	return &s, nil
}

// AsRequired returns the value untouched once it is known to be non-null.
func (f Field) AsRequired() (Value, error) {
	if err := CheckNotNull(f.name, f.value); err != nil {
		return Value{}, err
	}
	return f.value, nil
}
