package rowcodec

import (
	"math"
	"strconv"
	"strings"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04:05"
)

// Dialect controls how string literals are escaped.
type Dialect struct {
	// Name identifies the dialect in logs.
	Name string
	// BackslashEscapes is set for servers that treat '\' as an escape
	// character inside string literals (MySQL without NO_BACKSLASH_ESCAPES).
	BackslashEscapes bool
}

var (
	// ANSI doubles embedded single quotes and nothing else.
	ANSI = Dialect{Name: "ansi"}
	// MySQL additionally doubles backslashes.
	MySQL = Dialect{Name: "mysql", BackslashEscapes: true}
)

// DialectFor returns the dialect matching a gorm dialector name.
func DialectFor(name string) Dialect {
	if name == "mysql" {
		return MySQL
	}
	return ANSI
}

// EncodeLiteral renders v with the ANSI dialect.
func EncodeLiteral(v Value) string {
	return ANSI.EncodeLiteral(v)
}

// EncodeLiteral renders v as a SQL literal:
//   - absent values as null
//   - strings single-quoted with embedded quotes doubled
//   - dates as 'YYYY-MM-DD' and times as 'YYYY-MM-DD HH:MM:SS'
//   - numbers unquoted, booleans as 1 or 0
//
// Non-finite floats have no literal form and render as null.
func (d Dialect) EncodeLiteral(v Value) string {
	if !v.valid {
		return "null"
	}
	switch v.kind {
	case KindString:
		return d.quote(v.s)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return "null"
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDecimal:
		return v.d.String()
	case KindBool:
		if v.b {
			return "1"
		}
		return "0"
	case KindDate:
		return "'" + v.t.Format(dateLayout) + "'"
	case KindTime:
		return "'" + v.t.Format(timeLayout) + "'"
	}
	return "null"
}

func (d Dialect) quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			b.WriteString("''")
		case c == '\\' && d.BackslashEscapes:
			b.WriteString(`\\`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// EncodeTuple renders rec as a parenthesised row literal in the order of specs.
// Fields missing from rec render as null.
func (d Dialect) EncodeTuple(rec Record, specs []FieldSpec) string {
	var b strings.Builder
	d.writeTuple(&b, rec, specs)
	return b.String()
}

func (d Dialect) writeTuple(b *strings.Builder, rec Record, specs []FieldSpec) {
	b.WriteByte('(')
	for i, f := range specs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(d.EncodeLiteral(rec.value(f)))
	}
	b.WriteByte(')')
}

// EncodeValues renders all records as the VALUES list of a multi-row insert:
// (..),(..),(..)
func (d Dialect) EncodeValues(recs []Record, specs []FieldSpec) string {
	var b strings.Builder
	for i, rec := range recs {
		if i > 0 {
			b.WriteByte(',')
		}
		d.writeTuple(&b, rec, specs)
	}
	return b.String()
}
