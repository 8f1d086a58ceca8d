// Package utils provides the strict driver-value converters shared by the row codec.
//
// Drivers hand back the same column in different Go types depending on the
// protocol in use (MySQL text rows yield []byte, SQLite yields int64/float64,
// sqlmock yields whatever the test registered). The converters here accept all
// of those representations and fail with ErrNotConvertible instead of silently
// coercing a bad value to its zero value.
package utils
