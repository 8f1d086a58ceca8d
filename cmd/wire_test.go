package cmd

import (
	"testing"

	"backoffice/core/config"
	"backoffice/core/database"
	"backoffice/core/server"
	"backoffice/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp_RegistersFeeds(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	cfg := &config.Config{Server: server.Config{Mode: server.ModeReadWrite}}
	a := newApp(cfg, zap.NewNop(), db, new(mocks.Client))

	assert.Equal(t, []string{
		"pair_order_templates",
		"pair_orders",
		"security_alerts",
		"security_filings",
		"security_master_ext",
		"security_risk_factors",
	}, a.feeds.Service().Datasets())
	assert.True(t, a.pairOrders.IsEnabled())
	assert.True(t, a.securities.IsEnabled())
	assert.True(t, a.feeds.IsEnabled())
	assert.True(t, a.integrity.IsEnabled())
	assert.Len(t, a.datasets(), 6)
}

func TestNewApp_WithoutDatabase(t *testing.T) {
	a := newApp(&config.Config{}, zap.NewNop(), nil, nil)

	assert.Empty(t, a.feeds.Service().Datasets())
	assert.False(t, a.pairOrders.IsEnabled())
	assert.False(t, a.feeds.IsEnabled())
	assert.False(t, a.integrity.IsEnabled())
}
