package securities

import (
	"context"
	"fmt"

	"backoffice/core/database"
	"backoffice/core/reconcile"
	"backoffice/core/rowcodec"
	"backoffice/core/server"
	"backoffice/core/staging"
	"backoffice/core/validation"
	"backoffice/feature/securities/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reads and replaces the security reference datasets.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger

	// guard is shared by HTTP replaces and feed refreshes of this service.
	guard *staging.Guard

	riskFactors binding[models.RiskFactor]
	masterExt   binding[models.MasterExt]
	alerts      binding[models.Alert]
	filings     binding[models.Filing]
}

// NewService creates a new securities service. With procedures set, replaces
// are promoted through the usp_promote_<table> stored procedures.
func NewService(db *gorm.DB, logger *zap.Logger, procedures bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	ds := []staging.Dataset{RiskFactorsDataset, MasterExtDataset, AlertsDataset, FilingsDataset}
	if procedures {
		for i := range ds {
			ds[i] = ds[i].WithProcedure()
		}
	}
	return &Service{
		db:          db,
		logger:      logger,
		guard:       staging.NewGuard(),
		riskFactors: riskFactors(ds[0]),
		masterExt:   masterExt(ds[1]),
		alerts:      alerts(ds[2]),
		filings:     filings(ds[3]),
	}
}

// Datasets returns the datasets this service replaces.
func (s *Service) Datasets() []staging.Dataset {
	return []staging.Dataset{s.riskFactors.ds, s.masterExt.ds, s.alerts.ds, s.filings.ds}
}

// ListRiskFactors returns risk factors, optionally for one security.
func (s *Service) ListRiskFactors(ctx context.Context, securityID string) ([]models.RiskFactor, error) {
	return list(ctx, s.db, s.riskFactors, securityID)
}

// ReplaceRiskFactors replaces the full risk factor dataset.
func (s *Service) ReplaceRiskFactors(ctx context.Context, items []models.RiskFactor) (*staging.Result, error) {
	return replace(ctx, s.db, s.logger, s.guard, s.riskFactors, items)
}

// PreviewRiskFactors compares items with the stored risk factors without writing.
func (s *Service) PreviewRiskFactors(ctx context.Context, items []models.RiskFactor) (*reconcile.Plan, error) {
	return preview(ctx, s.db, s.riskFactors, items)
}

// ListMasterExt returns master extensions, optionally for one security.
func (s *Service) ListMasterExt(ctx context.Context, securityID string) ([]models.MasterExt, error) {
	return list(ctx, s.db, s.masterExt, securityID)
}

// GetMasterExt returns the master extension of one security.
func (s *Service) GetMasterExt(ctx context.Context, securityID string) (*models.MasterExt, error) {
	items, err := list(ctx, s.db, s.masterExt, securityID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("security %s: %w", securityID, server.ErrNotFound)
	}
	return &items[0], nil
}

// ReplaceMasterExt replaces the full master extension dataset.
func (s *Service) ReplaceMasterExt(ctx context.Context, items []models.MasterExt) (*staging.Result, error) {
	return replace(ctx, s.db, s.logger, s.guard, s.masterExt, items)
}

// PreviewMasterExt compares items with the stored master extensions without writing.
func (s *Service) PreviewMasterExt(ctx context.Context, items []models.MasterExt) (*reconcile.Plan, error) {
	return preview(ctx, s.db, s.masterExt, items)
}

// ListAlerts returns alerts, optionally for one security.
func (s *Service) ListAlerts(ctx context.Context, securityID string) ([]models.Alert, error) {
	return list(ctx, s.db, s.alerts, securityID)
}

// ReplaceAlerts replaces the full alert dataset.
func (s *Service) ReplaceAlerts(ctx context.Context, items []models.Alert) (*staging.Result, error) {
	return replace(ctx, s.db, s.logger, s.guard, s.alerts, items)
}

// PreviewAlerts compares items with the stored alerts without writing.
func (s *Service) PreviewAlerts(ctx context.Context, items []models.Alert) (*reconcile.Plan, error) {
	return preview(ctx, s.db, s.alerts, items)
}

// ListFilings returns filings, optionally for one security.
func (s *Service) ListFilings(ctx context.Context, securityID string) ([]models.Filing, error) {
	return list(ctx, s.db, s.filings, securityID)
}

// ReplaceFilings replaces the full filing dataset.
func (s *Service) ReplaceFilings(ctx context.Context, items []models.Filing) (*staging.Result, error) {
	return replace(ctx, s.db, s.logger, s.guard, s.filings, items)
}

// PreviewFilings compares items with the stored filings without writing.
func (s *Service) PreviewFilings(ctx context.Context, items []models.Filing) (*reconcile.Plan, error) {
	return preview(ctx, s.db, s.filings, items)
}

func list[T any](ctx context.Context, db *gorm.DB, b binding[T], securityID string) ([]T, error) {
	if db == nil {
		return nil, fmt.Errorf("%s: database not configured", b.ds.Name)
	}

	query := database.SelectColumns(db, b.ds.Target, b.ds.Columns())
	var args []any
	if securityID != "" {
		query += " WHERE " + database.Quote(db, securityKey) + " = ?"
		args = append(args, securityID)
	}
	query += " ORDER BY " + database.Quote(db, b.order)

	rows, err := database.QueryRows(ctx, db, query, args...)
	if err != nil {
		return nil, err
	}
	recs, err := rowcodec.DecodeAll(rows, b.ds.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.ds.Name, err)
	}

	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		item, err := b.decode(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.ds.Name, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func replace[T any](ctx context.Context, db *gorm.DB, logger *zap.Logger, guard *staging.Guard, b binding[T], items []T) (*staging.Result, error) {
	if db == nil {
		return nil, fmt.Errorf("%s: database not configured", b.ds.Name)
	}

	recs, err := encode(b, items)
	if err != nil {
		return nil, err
	}

	l, err := staging.NewLoader(db, b.ds, logger)
	if err != nil {
		return nil, err
	}
	err = guard.Do(ctx, b.ds.Target, func() error {
		return l.ReplaceAll(ctx, recs)
	})
	if err != nil {
		return nil, err
	}
	return &staging.Result{Dataset: b.ds.Name, Rows: len(recs)}, nil
}

func preview[T any](ctx context.Context, db *gorm.DB, b binding[T], items []T) (*reconcile.Plan, error) {
	recs, err := encode(b, items)
	if err != nil {
		return nil, err
	}
	return reconcile.Preview(ctx, db, b.ds, b.key, recs)
}

// encode converts items to records, rejecting invalid items and duplicate keys.
func encode[T any](b binding[T], items []T) ([]rowcodec.Record, error) {
	recs := make([]rowcodec.Record, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if err := validation.Struct(item); err != nil {
			return nil, fmt.Errorf("%s item %d: %w", b.ds.Name, i, err)
		}
		rec, err := b.encode(item)
		if err != nil {
			return nil, fmt.Errorf("%s item %d: %w", b.ds.Name, i, err)
		}
		k, err := b.key(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s item %d: %v", server.ErrInvalidInput, b.ds.Name, i, err)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %s item %d: duplicate key %q", server.ErrInvalidInput, b.ds.Name, i, k)
		}
		seen[k] = struct{}{}
		recs = append(recs, rec)
	}
	return recs, nil
}
