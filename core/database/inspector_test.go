package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(ctx, db, "test_items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "YES", colMap["description"].Null)

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(ctx, db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	ctx := context.Background()
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE alerts_stage (alert_id TEXT, Severity INTEGER)").Error)

	missing, err := MissingColumns(ctx, db, "alerts_stage", []string{"alert_id", "severity", "message"})
	require.NoError(t, err)
	assert.Equal(t, []string{"message"}, missing)
}
