package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Flag is a YES/NO column that may also be unset.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagNo
	FlagYes
)

// ParseFlag reads a stored or submitted flag. An empty string is unset.
func ParseFlag(s string) (Flag, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return FlagUnset, nil
	case "YES", "Y", "TRUE":
		return FlagYes, nil
	case "NO", "N", "FALSE":
		return FlagNo, nil
	}
	return FlagUnset, fmt.Errorf("invalid flag %q", s)
}

// String returns the stored form: YES, NO or the empty string.
func (f Flag) String() string {
	switch f {
	case FlagYes:
		return "YES"
	case FlagNo:
		return "NO"
	default:
		return ""
	}
}

// Set reports whether the flag holds a value.
func (f Flag) Set() bool { return f == FlagYes || f == FlagNo }

// MarshalJSON writes "YES", "NO" or null.
func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Set() {
		return []byte("null"), nil
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON accepts null, a YES/NO string or a JSON bool.
func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*f = FlagUnset
	case bool:
		*f = FlagNo
		if x {
			*f = FlagYes
		}
	case string:
		parsed, err := ParseFlag(x)
		if err != nil {
			return err
		}
		*f = parsed
	default:
		return fmt.Errorf("invalid flag %s", b)
	}
	return nil
}
