package database

import (
	"context"
	"strings"

	"backoffice/core/rowcodec"

	"gorm.io/gorm"
)

// QueryRows runs a query or stored-procedure call and returns its rows keyed by
// column name. Any failure is returned as a *StorageError.
func QueryRows(ctx context.Context, db *gorm.DB, query string, args ...any) ([]rowcodec.Row, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	out, err := rowcodec.ScanRows(rows)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return out, nil
}

// Exec runs a statement that returns no rows.
func Exec(ctx context.Context, db *gorm.DB, op, table, statement string) error {
	if err := db.WithContext(ctx).Exec(statement).Error; err != nil {
		return &StorageError{Op: op, Table: table, Err: err}
	}
	return nil
}

// Quote quotes a possibly schema-qualified identifier for the handle's dialect.
func Quote(db *gorm.DB, ident string) string {
	return db.Statement.Quote(ident)
}

// SelectColumns renders SELECT <cols> FROM <table> with quoted identifiers.
func SelectColumns(db *gorm.DB, table string, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = Quote(db, c)
	}
	return "SELECT " + strings.Join(quoted, ",") + " FROM " + Quote(db, table)
}
