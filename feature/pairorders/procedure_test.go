package pairorders

import (
	"context"
	"testing"

	"backoffice/feature/pairorders/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestReplaceTemplates_Procedure(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, nil, true)

	mock.ExpectExec("DELETE FROM `pair_order_template_stage`").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("INSERT INTO `pair_order_template_stage` " +
		"(`template_id`,`side`,`symbol`,`ratio`,`quantity`,`account`,`strategy`,`created_at`) VALUES " +
		"('T1','BUY','SPY',1.5,null,'O''Brien',null,null),('T1','SS','IVV',null,10,null,null,null)").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("CALL `usp_promote_pair_order_template`()").
		WillReturnResult(sqlmock.NewResult(0, 0))

	res, err := svc.ReplaceTemplates(context.Background(), []models.PairOrderTemplate{{
		TemplateID: "T1",
		Buy:        &models.TemplateLeg{Symbol: "SPY", Ratio: ptr(1.5), Account: ptr("O'Brien")},
		Sell:       &models.TemplateLeg{Side: "SS", Symbol: "IVV", Quantity: ptr(int64(10))},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrder_Query(t *testing.T) {
	db, mock := setupMockDB(t)
	svc := NewService(db, nil, false)

	rows := sqlmock.NewRows([]string{"parent_order_id", "side", "symbol", "quantity", "limit_price",
		"order_type", "trade_date", "status", "broker", "filled_qty"}).
		AddRow("P1", "BUY", "AAPL", int64(100), []byte("187.250000"), "LMT", nil, "NEW", nil, int64(0)).
		AddRow("P1", "sell short", "MSFT", int64(50), nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT `parent_order_id`,`side`,`symbol`,`quantity`,`limit_price`,`order_type`," +
		"`trade_date`,`status`,`broker`,`filled_qty` FROM `pair_order` WHERE `parent_order_id` = ? " +
		"ORDER BY `parent_order_id`, `side`, `symbol`, `quantity`, `limit_price`, `order_type`, " +
		"`trade_date`, `status`, `broker`, `filled_qty`").
		WithArgs("P1").
		WillReturnRows(rows)

	o, err := svc.GetOrder(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "187.25", o.Buy.LimitPrice.String())
	assert.Equal(t, int64(0), *o.Buy.FilledQty)
	assert.Equal(t, "sell short", o.Sell.Side)
	assert.Equal(t, int64(50), *o.Sell.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
