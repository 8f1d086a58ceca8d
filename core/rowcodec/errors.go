package rowcodec

import "fmt"

// FieldTypeError reports a present column value that cannot be converted to
// the declared kind of its field.
type FieldTypeError struct {
	Field string
	Kind  Kind
	Value any
	Err   error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %s: cannot decode %T(%v) as %s: %v", e.Field, e.Value, e.Value, e.Kind, e.Err)
}

func (e *FieldTypeError) Unwrap() error { return e.Err }

// MissingColumnError reports a declared field with no matching column in the row.
type MissingColumnError struct {
	Field string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("field %s: column not present in row", e.Field)
}
