package rowcodec

import (
	"database/sql"
	"fmt"
)

// ScanRows drains rows into named-column Rows. The caller still owns rows and
// must close it.
func ScanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = vals[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// DecodeAll decodes every row with the same field specs.
func DecodeAll(rows []Row, specs []FieldSpec) ([]Record, error) {
	out := make([]Record, 0, len(rows))
	for i, row := range rows {
		rec, err := Decode(row, specs)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
