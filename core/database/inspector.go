package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo matches the output of SHOW COLUMNS.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string // NULL default is possible
	Extra   string
}

// GetTableColumns retrieves the column definitions for a given table.
// Field and Type are lower-cased. A missing table yields an empty slice on
// SQLite and an error on MySQL.
func GetTableColumns(ctx context.Context, db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	var columns []ColumnInfo
	db = db.WithContext(ctx)

	if db.Dialector.Name() == DriverSQLite {
		// SQLite uses PRAGMA table_info
		type SQLiteColumn struct {
			Cid       int
			Name      string
			Type      string
			Notnull   int
			DfltValue *string
			Pk        int
		}
		var sqliteCols []SQLiteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", strings.ReplaceAll(tableName, "'", "''"))).Scan(&sqliteCols).Error; err != nil {
			return nil, &StorageError{Op: "inspect", Table: tableName, Err: err}
		}
		for _, col := range sqliteCols {
			null := "YES"
			if col.Notnull == 1 {
				null = "NO"
			}
			columns = append(columns, ColumnInfo{
				Field:   strings.ToLower(col.Name),
				Type:    strings.ToLower(col.Type),
				Null:    null,
				Default: col.DfltValue,
			})
		}
		return columns, nil
	}

	err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM %s", Quote(db, tableName))).Scan(&columns).Error
	if err != nil {
		return nil, &StorageError{Op: "inspect", Table: tableName, Err: err}
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// MissingColumns returns the names in want that are not columns of tableName.
func MissingColumns(ctx context.Context, db *gorm.DB, tableName string, want []string) ([]string, error) {
	cols, err := GetTableColumns(ctx, db, tableName)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		have[c.Field] = struct{}{}
	}
	var missing []string
	for _, w := range want {
		if _, ok := have[strings.ToLower(w)]; !ok {
			missing = append(missing, w)
		}
	}
	return missing, nil
}
