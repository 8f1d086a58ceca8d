package rowcodec

import (
	"strings"

	"backoffice/core/utils"
)

// Row is a single result-set row keyed by column name.
// A nil value is a database NULL.
type Row map[string]any

// Lookup finds a column by exact name, falling back to a case-insensitive match.
func (r Row) Lookup(name string) (any, bool) {
	if v, ok := r[name]; ok {
		return v, true
	}
	for col, v := range r {
		if strings.EqualFold(col, name) {
			return v, true
		}
	}
	return nil, false
}

// Decode reads every field in specs from row by name and converts it to the
// declared kind. A NULL column yields an absent field.
func Decode(row Row, specs []FieldSpec) (Record, error) {
	rec := make(Record, len(specs))
	for _, f := range specs {
		raw, ok := row.Lookup(f.Name)
		if !ok {
			return nil, &MissingColumnError{Field: f.Name}
		}
		v, err := DecodeValue(raw, f.Kind)
		if err != nil {
			return nil, &FieldTypeError{Field: f.Name, Kind: f.Kind, Value: raw, Err: err}
		}
		rec[f.Name] = v
	}
	return rec, nil
}

// DecodeValue converts a single driver value to a Value of kind k.
func DecodeValue(raw any, k Kind) (Value, error) {
	if raw == nil {
		return Null(k), nil
	}
	switch k {
	case KindString:
		s, err := utils.ToString(raw)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case KindInt:
		i, err := utils.ToInt64(raw)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case KindFloat:
		f, err := utils.ToFloat64(raw)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case KindDecimal:
		d, err := utils.ToDecimal(raw)
		if err != nil {
			return Value{}, err
		}
		return Decimal(d), nil
	case KindBool:
		b, err := utils.ToBool(raw)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case KindDate:
		t, err := utils.ToTime(raw)
		if err != nil {
			return Value{}, err
		}
		return Date(t), nil
	case KindTime:
		t, err := utils.ToTime(raw)
		if err != nil {
			return Value{}, err
		}
		return Time(t), nil
	}
	return Value{}, utils.ErrNotConvertible
}
