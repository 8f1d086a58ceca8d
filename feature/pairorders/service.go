package pairorders

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"backoffice/core/database"
	"backoffice/core/legs"
	"backoffice/core/reconcile"
	"backoffice/core/rowcodec"
	"backoffice/core/server"
	"backoffice/core/staging"
	"backoffice/feature/pairorders/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reads and replaces pair orders and pair-order templates.
type Service struct {
	db        *gorm.DB
	logger    *zap.Logger
	orders    staging.Dataset
	templates staging.Dataset

	// guard is shared by HTTP replaces and feed refreshes of this service.
	guard *staging.Guard
}

// NewService creates a new pair order service. With procedures set, replaces
// are promoted through the usp_promote_<table> stored procedures.
func NewService(db *gorm.DB, logger *zap.Logger, procedures bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		db:        db,
		logger:    logger,
		orders:    OrdersDataset,
		templates: TemplatesDataset,
		guard:     staging.NewGuard(),
	}
	if procedures {
		s.orders = s.orders.WithProcedure()
		s.templates = s.templates.WithProcedure()
	}
	return s
}

// Datasets returns the datasets this service replaces.
func (s *Service) Datasets() []staging.Dataset {
	return []staging.Dataset{s.orders, s.templates}
}

// ListOrders returns every pair order ordered by parent order id.
func (s *Service) ListOrders(ctx context.Context) ([]models.PairOrder, error) {
	entities, keys, err := s.reconstruct(ctx, s.orders, orderKey, "")
	if err != nil {
		return nil, err
	}
	out := make([]models.PairOrder, 0, len(keys))
	for _, k := range keys {
		out = append(out, orderFromEntity(k, entities[k]))
	}
	return out, nil
}

// GetOrder returns one pair order.
func (s *Service) GetOrder(ctx context.Context, parentOrderID string) (*models.PairOrder, error) {
	entities, _, err := s.reconstruct(ctx, s.orders, orderKey, parentOrderID)
	if err != nil {
		return nil, err
	}
	e, ok := entities[parentOrderID]
	if !ok {
		return nil, fmt.Errorf("pair order %s: %w", parentOrderID, server.ErrNotFound)
	}
	o := orderFromEntity(parentOrderID, e)
	return &o, nil
}

// ReplaceOrders replaces the full pair order dataset with orders.
func (s *Service) ReplaceOrders(ctx context.Context, orders []models.PairOrder) (*staging.Result, error) {
	recs, err := orderRecords(orders)
	if err != nil {
		return nil, err
	}
	if err := s.replace(ctx, s.orders, recs); err != nil {
		return nil, err
	}
	return &staging.Result{Dataset: s.orders.Name, Rows: len(recs)}, nil
}

// PreviewOrders compares orders with the stored pair orders without writing.
func (s *Service) PreviewOrders(ctx context.Context, orders []models.PairOrder) (*reconcile.Plan, error) {
	recs, err := orderRecords(orders)
	if err != nil {
		return nil, err
	}
	return reconcile.Preview(ctx, s.db, s.orders, legKey(orderKey), recs)
}

// ListTemplates returns every pair-order template ordered by template id.
func (s *Service) ListTemplates(ctx context.Context) ([]models.PairOrderTemplate, error) {
	entities, keys, err := s.reconstruct(ctx, s.templates, templateKey, "")
	if err != nil {
		return nil, err
	}
	out := make([]models.PairOrderTemplate, 0, len(keys))
	for _, k := range keys {
		out = append(out, templateFromEntity(k, entities[k]))
	}
	return out, nil
}

// GetTemplate returns one pair-order template.
func (s *Service) GetTemplate(ctx context.Context, templateID string) (*models.PairOrderTemplate, error) {
	entities, _, err := s.reconstruct(ctx, s.templates, templateKey, templateID)
	if err != nil {
		return nil, err
	}
	e, ok := entities[templateID]
	if !ok {
		return nil, fmt.Errorf("pair order template %s: %w", templateID, server.ErrNotFound)
	}
	t := templateFromEntity(templateID, e)
	return &t, nil
}

// ReplaceTemplates replaces the full template dataset with templates.
func (s *Service) ReplaceTemplates(ctx context.Context, templates []models.PairOrderTemplate) (*staging.Result, error) {
	recs, err := templateRecords(templates)
	if err != nil {
		return nil, err
	}
	if err := s.replace(ctx, s.templates, recs); err != nil {
		return nil, err
	}
	return &staging.Result{Dataset: s.templates.Name, Rows: len(recs)}, nil
}

// PreviewTemplates compares templates with the stored templates without writing.
func (s *Service) PreviewTemplates(ctx context.Context, templates []models.PairOrderTemplate) (*reconcile.Plan, error) {
	recs, err := templateRecords(templates)
	if err != nil {
		return nil, err
	}
	return reconcile.Preview(ctx, s.db, s.templates, legKey(templateKey), recs)
}

// reconstruct reads the target table, optionally narrowed to one key, and
// groups its rows into entities. Keys are returned sorted.
func (s *Service) reconstruct(ctx context.Context, ds staging.Dataset, key, id string) (map[string]legs.Entity, []string, error) {
	if s.db == nil {
		return nil, nil, fmt.Errorf("%s: database not configured", ds.Name)
	}

	query := database.SelectColumns(s.db, ds.Target, ds.Columns())
	var args []any
	if id != "" {
		query += " WHERE " + database.Quote(s.db, key) + " = ?"
		args = append(args, id)
	}
	query += orderBy(s.db, key, ds.Columns())

	rows, err := database.QueryRows(ctx, s.db, query, args...)
	if err != nil {
		return nil, nil, err
	}
	entities, err := legs.Reconstruct(rows, reconstructOptions(key, ds.Fields))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ds.Name, err)
	}

	keys := make([]string, 0, len(entities))
	for k := range entities {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return entities, keys, nil
}

// orderBy sorts by key, then side, then every other column. Rows repeating a
// (key, role) pair then come back in the same order on every read, so
// last-write-wins keeps the same leg.
func orderBy(db *gorm.DB, key string, cols []string) string {
	ordered := []string{database.Quote(db, key), database.Quote(db, sideField)}
	for _, c := range cols {
		if c != key && c != sideField {
			ordered = append(ordered, database.Quote(db, c))
		}
	}
	return " ORDER BY " + strings.Join(ordered, ", ")
}

func (s *Service) replace(ctx context.Context, ds staging.Dataset, recs []rowcodec.Record) error {
	if s.db == nil {
		return fmt.Errorf("%s: database not configured", ds.Name)
	}
	l, err := staging.NewLoader(s.db, ds, s.logger)
	if err != nil {
		return err
	}
	return s.guard.Do(ctx, ds.Target, func() error {
		return l.ReplaceAll(ctx, recs)
	})
}
