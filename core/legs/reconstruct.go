package legs

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/core/rowcodec"
)

// KeySeparator joins the parts of a composite correlation key.
const KeySeparator = "|"

var keyEscaper = strings.NewReplacer(`\`, `\\`, KeySeparator, `\`+KeySeparator)

// JoinKey joins key parts with KeySeparator. Backslashes and separators inside
// a part are escaped with a backslash, so two different part lists never
// produce the same key. A part without either character is kept as is.
func JoinKey(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = keyEscaper.Replace(p)
	}
	return strings.Join(escaped, KeySeparator)
}

// Entity holds the legs of one correlated entity by role.
type Entity map[Role]rowcodec.Record

// Leg returns the record for role, or nil when the entity has no such leg.
func (e Entity) Leg(role Role) rowcodec.Record {
	return e[role]
}

// Options configures Reconstruct.
type Options struct {
	// KeyFields form the correlation key; more than one makes it composite.
	KeyFields []string
	// SideField holds the side code classified through Aliases.
	SideField string
	Aliases   AliasTable
	// Fields are decoded into each leg record. Key and side fields are read
	// from the row directly and need not be listed.
	Fields []rowcodec.FieldSpec
}

func (o Options) validate() error {
	if len(o.KeyFields) == 0 {
		return errors.New("legs: at least one key field is required")
	}
	if o.SideField == "" {
		return errors.New("legs: side field is required")
	}
	if len(o.Aliases) == 0 {
		return errors.New("legs: alias table is empty")
	}
	return nil
}

// Reconstruct groups rows by correlation key and assigns each decoded row to
// the role its side code resolves to. Later rows overwrite earlier rows with
// the same key and role. Any decode, key or side-code failure aborts the whole
// call and no partial result is returned.
func Reconstruct(rows []rowcodec.Row, opts Options) (map[string]Entity, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	out := make(map[string]Entity)
	for i, row := range rows {
		key, err := correlationKey(row, i, opts.KeyFields)
		if err != nil {
			return nil, err
		}

		code, err := sideCode(row, opts.SideField)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		role, err := opts.Aliases.Resolve(code)
		if err != nil {
			return nil, &UnknownSideCodeError{Code: code, Key: key, Row: i}
		}

		rec, err := rowcodec.Decode(row, opts.Fields)
		if err != nil {
			return nil, fmt.Errorf("row %d (key %s): %w", i, key, err)
		}

		ent, ok := out[key]
		if !ok {
			ent = make(Entity, len(Roles))
			out[key] = ent
		}
		ent[role] = rec
	}
	return out, nil
}

func correlationKey(row rowcodec.Row, idx int, fields []string) (string, error) {
	parts := make([]string, len(fields))
	for i, f := range fields {
		raw, _ := row.Lookup(f)
		v, err := rowcodec.DecodeValue(raw, rowcodec.KindString)
		if err != nil {
			// numeric ids are fine as keys
			if n, nerr := rowcodec.DecodeValue(raw, rowcodec.KindInt); nerr == nil {
				id, _ := n.Int64()
				parts[i] = fmt.Sprint(id)
				continue
			}
			return "", &rowcodec.FieldTypeError{Field: f, Kind: rowcodec.KindString, Value: raw, Err: err}
		}
		s, ok := v.Str()
		if !ok || strings.TrimSpace(s) == "" {
			return "", &MissingKeyError{Field: f, Row: idx}
		}
		parts[i] = s
	}
	return JoinKey(parts...), nil
}

func sideCode(row rowcodec.Row, field string) (string, error) {
	raw, ok := row.Lookup(field)
	if !ok {
		return "", &rowcodec.MissingColumnError{Field: field}
	}
	v, err := rowcodec.DecodeValue(raw, rowcodec.KindString)
	if err != nil {
		return "", &rowcodec.FieldTypeError{Field: field, Kind: rowcodec.KindString, Value: raw, Err: err}
	}
	s, _ := v.Str()
	return s, nil
}
