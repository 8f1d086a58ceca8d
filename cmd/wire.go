package cmd

import (
	"context"
	"fmt"

	"backoffice/core/config"
	"backoffice/core/database"
	"backoffice/core/logger"
	"backoffice/core/staging"
	"backoffice/core/storage"
	"backoffice/feature/feeds"
	"backoffice/feature/integrity"
	"backoffice/feature/pairorders"
	"backoffice/feature/securities"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app holds the configuration and features shared by every command.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client

	pairOrders *pairorders.Feature
	securities *securities.Feature
	feeds      *feeds.Feature
	integrity  *integrity.Feature
}

// bootstrap loads configuration, builds the logger and opens the database.
// The storage client is only created when withStorage is set.
func bootstrap(withStorage bool) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var store storage.Client
	if withStorage {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	return newApp(cfg, l, db, store), nil
}

// newApp wires the features around an optional database and storage client.
func newApp(cfg *config.Config, l *zap.Logger, db *gorm.DB, store storage.Client) *app {
	procs := cfg.Database.PromoteProcedures
	writes := cfg.Server.AllowsWrites()

	a := &app{
		cfg:        cfg,
		logger:     l,
		db:         db,
		store:      store,
		pairOrders: pairorders.NewFeature(db, l, procs, writes),
		securities: securities.NewFeature(db, l, procs, writes),
		feeds:      feeds.NewFeature(store, cfg.Storage.Bucket, cfg.Feeds, l, writes),
	}
	if db != nil {
		registerFeeds(a.feeds.Service(), a.pairOrders.Service(), a.securities.Service())
	}

	var fs *feeds.Service
	if store != nil {
		fs = a.feeds.Service()
	}
	a.integrity = integrity.NewFeature(db, a.datasets(), fs, l)
	return a
}

// datasets returns every replaceable dataset as configured.
func (a *app) datasets() []staging.Dataset {
	return append(a.pairOrders.Service().Datasets(), a.securities.Service().Datasets()...)
}

// registerFeeds binds every replaceable dataset to its feed and its preview.
func registerFeeds(f *feeds.Service, po *pairorders.Service, sec *securities.Service) {
	f.Register(pairorders.OrdersDataset.Name, feeds.JSON(po.ReplaceOrders))
	f.RegisterPreview(pairorders.OrdersDataset.Name, feeds.JSONPreview(po.PreviewOrders))

	f.Register(pairorders.TemplatesDataset.Name, feeds.JSON(po.ReplaceTemplates))
	f.RegisterPreview(pairorders.TemplatesDataset.Name, feeds.JSONPreview(po.PreviewTemplates))

	f.Register(securities.RiskFactorsDataset.Name, feeds.JSON(sec.ReplaceRiskFactors))
	f.RegisterPreview(securities.RiskFactorsDataset.Name, feeds.JSONPreview(sec.PreviewRiskFactors))

	f.Register(securities.MasterExtDataset.Name, feeds.JSON(sec.ReplaceMasterExt))
	f.RegisterPreview(securities.MasterExtDataset.Name, feeds.JSONPreview(sec.PreviewMasterExt))

	f.Register(securities.AlertsDataset.Name, feeds.JSON(sec.ReplaceAlerts))
	f.RegisterPreview(securities.AlertsDataset.Name, feeds.JSONPreview(sec.PreviewAlerts))

	f.Register(securities.FilingsDataset.Name, feeds.JSON(sec.ReplaceFilings))
	f.RegisterPreview(securities.FilingsDataset.Name, feeds.JSONPreview(sec.PreviewFilings))
}

// ensureBucket creates the feed bucket when storage is configured.
func (a *app) ensureBucket(ctx context.Context) error {
	if a.store == nil {
		return nil
	}
	return storage.EnsureBucket(ctx, a.store, a.cfg.Storage.Bucket, a.cfg.Storage.Region)
}
