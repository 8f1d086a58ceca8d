package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotConvertible is returned when a driver value cannot be represented in the requested type.
var ErrNotConvertible = errors.New("value not convertible")

// ToInt64 converts a driver value to int64 using explicit type switching.
// Floats are accepted only when they carry no fractional part.
func ToInt64(val any) (int64, error) {
	switch v := val.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint:
		return ToInt64(uint64(v))
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrNotConvertible, v)
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint8:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("%w: %v is not integral", ErrNotConvertible, v)
		}
		// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
		if v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("%w: %v overflows int64", ErrNotConvertible, v)
		}
		return int64(v), nil
	case float32:
		return ToInt64(float64(v))
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseInt(v)
	case []byte:
		return parseInt(string(v))
	default:
		return 0, fmt.Errorf("%w: %T to int", ErrNotConvertible, val)
	}
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i, nil
	}
	// DECIMAL columns with a zero scale come back as "12.000"
	d, derr := decimal.NewFromString(s)
	if derr != nil || !d.IsInteger() {
		return 0, fmt.Errorf("%w: %q to int", ErrNotConvertible, s)
	}
	return d.IntPart(), nil
}

// ToFloat64 converts a driver value to float64.
func ToFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		return parseFloat(v)
	case []byte:
		return parseFloat(string(v))
	case decimal.Decimal:
		return v.InexactFloat64(), nil
	default:
		i, err := ToInt64(val)
		if err != nil {
			return 0, fmt.Errorf("%w: %T to float", ErrNotConvertible, val)
		}
		return float64(i), nil
	}
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q to float", ErrNotConvertible, s)
	}
	return f, nil
}

// ToDecimal converts a driver value to a decimal without going through float
// when the driver hands back text.
func ToDecimal(val any) (decimal.Decimal, error) {
	switch v := val.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return parseDecimal(v)
	case []byte:
		return parseDecimal(string(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat32(v), nil
	default:
		i, err := ToInt64(val)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %T to decimal", ErrNotConvertible, val)
		}
		return decimal.NewFromInt(i), nil
	}
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q to decimal", ErrNotConvertible, s)
	}
	return d, nil
}

// ToString converts text-like values to string. Numbers are rejected so that a
// numeric column mapped to a string field is reported instead of formatted.
func ToString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: %T to string", ErrNotConvertible, val)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true, 0=false), and strings ("1", "0", "true", "false").
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		return parseBool(v)
	case []byte:
		return parseBool(string(v))
	default:
		i, err := ToInt64(val)
		if err != nil || (i != 0 && i != 1) {
			return false, fmt.Errorf("%w: %v to bool", ErrNotConvertible, val)
		}
		return i == 1, nil
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q to bool", ErrNotConvertible, s)
}

// timeLayouts are tried in order when a driver hands back a date as text.
var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02",
}

// ToTime converts a driver value to time.Time. Text is parsed as UTC.
func ToTime(val any) (time.Time, error) {
	switch v := val.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	default:
		return time.Time{}, fmt.Errorf("%w: %T to time", ErrNotConvertible, val)
	}
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q to time", ErrNotConvertible, s)
}
