package rowcodec

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the declared type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindDecimal
	KindBool
	// KindDate is a calendar date; the time-of-day is dropped on encode.
	KindDate
	// KindTime is a date with time-of-day at second precision.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a single nullable, typed field value.
// The zero Value is an absent string.
type Value struct {
	kind  Kind
	valid bool
	s     string
	i     int64
	f     float64
	d     decimal.Decimal
	b     bool
	t     time.Time
}

// Null returns an absent value of the given kind.
func Null(k Kind) Value { return Value{kind: k} }

// Constructors for present values.
func String(s string) Value { return Value{kind: KindString, valid: true, s: s} }
func Int(i int64) Value { return Value{kind: KindInt, valid: true, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, valid: true, f: f} }
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, valid: true, d: d} }
func Bool(b bool) Value { return Value{kind: KindBool, valid: true, b: b} }
func Date(t time.Time) Value { return Value{kind: KindDate, valid: true, t: t} }
func Time(t time.Time) Value { return Value{kind: KindTime, valid: true, t: t} }

// NullableString returns String(*p), or an absent string when p is nil.
func NullableString(p *string) Value {
	if p == nil {
		return Null(KindString)
	}
	return String(*p)
}

// NullableInt returns Int(*p), or an absent int when p is nil.
func NullableInt(p *int64) Value {
	if p == nil {
		return Null(KindInt)
	}
	return Int(*p)
}

// NullableFloat returns Float(*p), or an absent float when p is nil.
func NullableFloat(p *float64) Value {
	if p == nil {
		return Null(KindFloat)
	}
	return Float(*p)
}

// NullableDecimal returns Decimal(*p), or an absent decimal when p is nil.
func NullableDecimal(p *decimal.Decimal) Value {
	if p == nil {
		return Null(KindDecimal)
	}
	return Decimal(*p)
}

// NullableBool returns Bool(*p), or an absent bool when p is nil.
func NullableBool(p *bool) Value {
	if p == nil {
		return Null(KindBool)
	}
	return Bool(*p)
}

// NullableDate returns Date(*p), or an absent date when p is nil.
func NullableDate(p *time.Time) Value {
	if p == nil {
		return Null(KindDate)
	}
	return Date(*p)
}

// NullableTime returns Time(*p), or an absent time when p is nil.
func NullableTime(p *time.Time) Value {
	if p == nil {
		return Null(KindTime)
	}
	return Time(*p)
}

// Kind reports the declared kind of v.
func (v Value) Kind() Kind { return v.kind }

// Valid reports whether v is present.
func (v Value) Valid() bool { return v.valid }

// Str returns the string payload; ok is false when v is absent or not a string.
func (v Value) Str() (string, bool) { return v.s, v.valid && v.kind == KindString }

// Int64 returns the integer payload.
func (v Value) Int64() (int64, bool) { return v.i, v.valid && v.kind == KindInt }

// Float64 returns the float payload.
func (v Value) Float64() (float64, bool) { return v.f, v.valid && v.kind == KindFloat }

// Dec returns the decimal payload.
func (v Value) Dec() (decimal.Decimal, bool) { return v.d, v.valid && v.kind == KindDecimal }

// Boolean returns the bool payload.
func (v Value) Boolean() (bool, bool) { return v.b, v.valid && v.kind == KindBool }

// Timestamp returns the payload of a date or time value.
func (v Value) Timestamp() (time.Time, bool) {
	return v.t, v.valid && (v.kind == KindDate || v.kind == KindTime)
}

// Equal compares kind, presence and payload. Dates compare at day precision and
// times at second precision, matching what EncodeLiteral writes.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.valid != o.valid {
		return false
	}
	if !v.valid {
		return true
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindDecimal:
		return v.d.Equal(o.d)
	case KindBool:
		return v.b == o.b
	case KindDate:
		return v.t.Format(dateLayout) == o.t.Format(dateLayout)
	case KindTime:
		return v.t.Format(timeLayout) == o.t.Format(timeLayout)
	}
	return false
}
