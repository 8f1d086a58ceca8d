package staging

import (
	"context"
	"testing"
	"time"

	"backoffice/core/database"
	"backoffice/core/rowcodec"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var orderFields = []rowcodec.FieldSpec{
	{Name: "order_id", Kind: rowcodec.KindString},
	{Name: "symbol", Kind: rowcodec.KindString},
	{Name: "quantity", Kind: rowcodec.KindInt},
	{Name: "ratio", Kind: rowcodec.KindFloat},
	{Name: "limit_price", Kind: rowcodec.KindDecimal},
	{Name: "trade_date", Kind: rowcodec.KindDate},
	{Name: "created_at", Kind: rowcodec.KindTime},
	{Name: "active", Kind: rowcodec.KindBool},
}

const orderColumns = `(
	order_id TEXT NOT NULL,
	symbol TEXT,
	quantity INTEGER,
	ratio REAL,
	limit_price DECIMAL(18,6),
	trade_date DATE,
	created_at DATETIME,
	active BOOLEAN
)`

func setupSQLite(t *testing.T) (*gorm.DB, *Loader) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE orders "+orderColumns).Error)
	require.NoError(t, db.Exec("CREATE TABLE orders_stage "+orderColumns).Error)

	l, err := NewLoader(db, Dataset{
		Name:    "orders",
		Target:  "orders",
		Staging: "orders_stage",
		Fields:  orderFields,
	}, nil)
	require.NoError(t, err)
	return db, l
}

func readTable(t *testing.T, db *gorm.DB, table string) map[string]rowcodec.Record {
	t.Helper()
	rows, err := database.QueryRows(context.Background(), db,
		"SELECT order_id, symbol, quantity, ratio, limit_price, trade_date, created_at, active FROM "+table)
	require.NoError(t, err)
	recs, err := rowcodec.DecodeAll(rows, orderFields)
	require.NoError(t, err)

	out := make(map[string]rowcodec.Record, len(recs))
	for _, r := range recs {
		out[*r.String("order_id")] = r
	}
	return out
}

func order(id string, qty int64) rowcodec.Record {
	at := time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC)
	return rowcodec.Record{
		"order_id":    rowcodec.String(id),
		"symbol":      rowcodec.String("O'Neil & Co"),
		"quantity":    rowcodec.Int(qty),
		"ratio":       rowcodec.Float(0.5),
		"limit_price": rowcodec.Decimal(decimal.RequireFromString("101.25")),
		"trade_date":  rowcodec.Date(at),
		"created_at":  rowcodec.Time(at),
		"active":      rowcodec.Bool(true),
	}
}

func TestReplaceAll_ReplacesPriorContents(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)
	require.NoError(t, db.Exec("INSERT INTO orders (order_id, quantity) VALUES ('OLD1', 1), ('OLD2', 2)").Error)

	recs := []rowcodec.Record{order("R1", 10), order("R2", 20), order("R3", 30)}
	require.NoError(t, l.ReplaceAll(ctx, recs))

	got := readTable(t, db, "orders")
	require.Len(t, got, 3)
	for _, want := range recs {
		id := *want.String("order_id")
		require.Contains(t, got, id)
		assert.True(t, want.Equal(got[id], orderFields), "order %s: %v", id, got[id])
	}
}

func TestReplaceAll_EmptyLeavesTargetEmpty(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)
	require.NoError(t, db.Exec("INSERT INTO orders (order_id) VALUES ('OLD1')").Error)

	require.NoError(t, l.ReplaceAll(ctx, []rowcodec.Record{}))
	assert.Empty(t, readTable(t, db, "orders"))
}

func TestClearStaging_Idempotent(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)
	require.NoError(t, db.Exec("INSERT INTO orders_stage (order_id) VALUES ('STALE')").Error)

	require.NoError(t, l.ClearStaging(ctx))
	assert.Empty(t, readTable(t, db, "orders_stage"))

	require.NoError(t, l.ClearStaging(ctx))
	assert.Empty(t, readTable(t, db, "orders_stage"))
}

func TestReplaceAll_AbsentFieldsRoundTripAsNull(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)

	sparse := rowcodec.Record{
		"order_id": rowcodec.String("SPARSE"),
		"symbol":   rowcodec.String(""),
		"quantity": rowcodec.Int(0),
		"active":   rowcodec.Bool(false),
	}
	require.NoError(t, l.ReplaceAll(ctx, []rowcodec.Record{sparse}))

	got := readTable(t, db, "orders")["SPARSE"]
	require.NotNil(t, got)
	assert.True(t, sparse.Equal(got, orderFields))

	// Empty string and zero stay present; missing fields come back absent.
	assert.Equal(t, "", *got.String("symbol"))
	assert.Equal(t, int64(0), *got.Int("quantity"))
	assert.False(t, *got.Bool("active"))
	assert.Nil(t, got.Float("ratio"))
	assert.Nil(t, got.Decimal("limit_price"))
	assert.Nil(t, got.Time("trade_date"))
	assert.Nil(t, got.Time("created_at"))
}

func TestReplaceAll_StageFailureKeepsTarget(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)
	require.NoError(t, db.Exec("INSERT INTO orders (order_id) VALUES ('KEEP')").Error)

	// order_id is NOT NULL, so the whole batch is rejected.
	bad := rowcodec.Record{"order_id": rowcodec.Null(rowcodec.KindString)}
	err := l.ReplaceAll(ctx, []rowcodec.Record{order("NEW", 1), bad})
	require.Error(t, err)

	got := readTable(t, db, "orders")
	assert.Len(t, got, 1)
	assert.Contains(t, got, "KEEP")
	assert.Empty(t, readTable(t, db, "orders_stage"))
}

func TestVerifyShape(t *testing.T) {
	ctx := context.Background()
	db, l := setupSQLite(t)
	assert.NoError(t, l.VerifyShape(ctx))

	require.NoError(t, db.Exec("CREATE TABLE thin (order_id TEXT)").Error)
	thin, err := NewLoader(db, Dataset{Name: "thin", Target: "orders", Staging: "thin", Fields: orderFields}, nil)
	require.NoError(t, err)

	err = thin.VerifyShape(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table thin is missing columns")
}
