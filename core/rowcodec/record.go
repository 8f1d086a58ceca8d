package rowcodec

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldSpec declares one column of a record: its name and target kind.
// A slice of FieldSpec is also the column order used when encoding.
type FieldSpec struct {
	Name string
	Kind Kind
}

// Record is a flat set of named fields. A missing key and an invalid Value
// both mean the field is absent.
type Record map[string]Value

// Get returns the named value, or an absent string when the key is missing.
func (r Record) Get(name string) Value {
	return r[name]
}

// Equal reports whether both records hold the same present/absent pattern and
// payloads for every field in specs.
func (r Record) Equal(o Record, specs []FieldSpec) bool {
	for _, f := range specs {
		a, b := r.value(f), o.value(f)
		if !a.Equal(b) {
			return false
		}
	}
	return true
}

// value returns the named value, treating a missing key as an absent value of
// the declared kind.
func (r Record) value(f FieldSpec) Value {
	v, ok := r[f.Name]
	if !ok || !v.valid {
		return Null(f.Kind)
	}
	return v
}

// String returns a pointer to the named string field, or nil when absent.
func (r Record) String(name string) *string {
	if s, ok := r[name].Str(); ok {
		return &s
	}
	return nil
}

// Int returns a pointer to the named integer field, or nil when absent.
func (r Record) Int(name string) *int64 {
	if i, ok := r[name].Int64(); ok {
		return &i
	}
	return nil
}

// Float returns a pointer to the named float field, or nil when absent.
func (r Record) Float(name string) *float64 {
	if f, ok := r[name].Float64(); ok {
		return &f
	}
	return nil
}

// Decimal returns a pointer to the named decimal field, or nil when absent.
func (r Record) Decimal(name string) *decimal.Decimal {
	if d, ok := r[name].Dec(); ok {
		return &d
	}
	return nil
}

// Bool returns a pointer to the named bool field, or nil when absent.
func (r Record) Bool(name string) *bool {
	if b, ok := r[name].Boolean(); ok {
		return &b
	}
	return nil
}

// Time returns a pointer to the named date or time field, or nil when absent.
func (r Record) Time(name string) *time.Time {
	if t, ok := r[name].Timestamp(); ok {
		return &t
	}
	return nil
}

// StringOr returns the named string field or def when absent.
func (r Record) StringOr(name, def string) string {
	if s, ok := r[name].Str(); ok {
		return s
	}
	return def
}
