package legs

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Role is the part a leg plays in its entity.
type Role string

const (
	RoleBuy  Role = "Buy"
	RoleSell Role = "Sell"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleBuy, RoleSell}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// AliasTable maps normalized side codes to roles.
// Build it with NewAliasTable so that keys are normalized.
type AliasTable map[string]Role

// normalizeCode folds case with a fresh Caser each call; Casers are stateful
// and must not be shared between goroutines.
func normalizeCode(code string) string {
	return cases.Fold().String(strings.TrimSpace(code))
}

// NewAliasTable builds an alias table from role -> side codes.
// It fails if a code is claimed by two roles or a role is unknown.
func NewAliasTable(aliases map[Role][]string) (AliasTable, error) {
	t := make(AliasTable)
	for role, codes := range aliases {
		if !role.Valid() {
			return nil, fmt.Errorf("unknown role %q", role)
		}
		for _, code := range codes {
			key := normalizeCode(code)
			if key == "" {
				return nil, fmt.Errorf("role %s: empty side code", role)
			}
			if prev, dup := t[key]; dup && prev != role {
				return nil, fmt.Errorf("side code %q maps to both %s and %s", code, prev, role)
			}
			t[key] = role
		}
	}
	return t, nil
}

// MustAliasTable is NewAliasTable for package-level tables; it panics on error.
func MustAliasTable(aliases map[Role][]string) AliasTable {
	t, err := NewAliasTable(aliases)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve classifies a side code, ignoring case and surrounding whitespace.
func (t AliasTable) Resolve(code string) (Role, error) {
	if role, ok := t[normalizeCode(code)]; ok {
		return role, nil
	}
	return "", &UnknownSideCodeError{Code: code}
}

// Codes returns the side codes that map to role, in no particular order.
func (t AliasTable) Codes(role Role) []string {
	var out []string
	for code, r := range t {
		if r == role {
			out = append(out, code)
		}
	}
	return out
}
