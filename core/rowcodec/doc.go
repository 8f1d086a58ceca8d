// Package rowcodec converts between driver values, typed records and SQL literals.
//
// A Record is a flat set of named, nullable, typed fields. Records come from two
// places: Decode materializes them from a named-column result row, and callers
// build them in memory from their own DTOs. In the other direction,
// EncodeLiteral renders a single value as it must appear inside a
// hand-assembled multi-row INSERT statement.
//
// # Nullability
//
// Every Value carries its Kind and a validity flag. An invalid (absent) value
// always renders as the unquoted literal null and always decodes from a
// database NULL. It is never confused with an empty string or a zero.
//
// # Lookup
//
// Decode looks columns up by name, first exactly and then case-insensitively.
// Column positions are never used, so reordering a SELECT list does not change
// the result.
//
// # Usage
//
//	fields := []rowcodec.FieldSpec{
//	    {Name: "security_id", Kind: rowcodec.KindString},
//	    {Name: "exposure", Kind: rowcodec.KindFloat},
//	}
//	rec, err := rowcodec.Decode(row, fields)
//	tuple := rowcodec.ANSI.EncodeTuple(rec, fields) // ('IBM',0.42)
package rowcodec
