package legs

import "fmt"

// UnknownSideCodeError reports a side code that matches no alias.
type UnknownSideCodeError struct {
	Code string
	// Key is the correlation key of the offending row, when known.
	Key string
	// Row is the index of the offending row in the input.
	Row int
}

func (e *UnknownSideCodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("unknown side code %q", e.Code)
	}
	return fmt.Sprintf("row %d (key %s): unknown side code %q", e.Row, e.Key, e.Code)
}

// MissingKeyError reports a row whose correlation key is NULL or empty.
type MissingKeyError struct {
	Field string
	Row   int
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("row %d: correlation key field %s is empty", e.Row, e.Field)
}
