package integrity

import (
	"context"
	"errors"

	"backoffice/core/staging"
	"backoffice/feature/feeds"
	"backoffice/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoFeeds is returned by CheckFeeds when object storage is not configured.
var ErrNoFeeds = errors.New("feeds not configured")

// Service handles integrity checks.
type Service struct {
	db       *gorm.DB
	datasets []staging.Dataset
	feeds    *feeds.Service
	logger   *zap.Logger
}

// NewService creates a new integrity service. feeds may be nil.
func NewService(db *gorm.DB, datasets []staging.Dataset, fs *feeds.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:       db,
		datasets: datasets,
		feeds:    fs,
		logger:   logger,
	}
}

// CheckSchema verifies the tables of every dataset.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	return checks.CheckSchema(ctx, s.db, s.datasets)
}

// CheckFeeds reports which registered datasets have a feed object.
func (s *Service) CheckFeeds(ctx context.Context) (*checks.FeedReport, error) {
	if s.feeds == nil {
		return nil, ErrNoFeeds
	}
	objects, err := s.feeds.Available(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckFeeds(s.feeds.Datasets(), objects), nil
}
