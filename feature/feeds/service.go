package feeds

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"backoffice/core/reconcile"
	"backoffice/core/server"
	"backoffice/core/staging"
	"backoffice/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service refreshes datasets from feed objects in the storage bucket.
type Service struct {
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger

	mu       sync.RWMutex
	targets  map[string]ReplaceFunc
	previews map[string]PreviewFunc

	// sf coalesces concurrent refreshes of one dataset into one load cycle.
	sf singleflight.Group
	// allMu serialises RefreshAll runs.
	allMu sync.Mutex

	listMu    sync.Mutex
	listing   []Object
	listBuilt time.Time
}

// NewService creates a new feeds service.
func NewService(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
		targets:  make(map[string]ReplaceFunc),
		previews: make(map[string]PreviewFunc),
	}
}

// Register binds a dataset name to its replace operation.
func (s *Service) Register(dataset string, fn ReplaceFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[dataset] = fn
}

// RegisterPreview binds a registered dataset to its dry-run comparison.
func (s *Service) RegisterPreview(dataset string, fn PreviewFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previews[dataset] = fn
}

// Datasets returns the registered dataset names, sorted.
func (s *Service) Datasets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.targets))
	for name := range s.targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ObjectName returns the bucket key of a dataset's feed.
func (s *Service) ObjectName(dataset string) string {
	return s.cfg.Prefix + dataset + s.cfg.Extension
}

func (s *Service) target(dataset string) (ReplaceFunc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.targets[dataset]
	if !ok {
		return nil, fmt.Errorf("feed %s: %w", dataset, server.ErrNotFound)
	}
	return fn, nil
}

// Refresh downloads the dataset's feed and replaces the dataset with it.
// Callers arriving while a refresh of the same dataset runs share its result.
func (s *Service) Refresh(ctx context.Context, dataset string) (*staging.Result, error) {
	fn, err := s.target(dataset)
	if err != nil {
		return nil, err
	}

	v, err, shared := s.sf.Do(dataset, func() (any, error) {
		return s.refresh(ctx, dataset, fn)
	})
	if shared {
		s.logger.Debug("Refresh coalesced", zap.String("dataset", dataset))
	}
	if err != nil {
		return nil, err
	}
	return v.(*staging.Result), nil
}

func (s *Service) refresh(ctx context.Context, dataset string, fn ReplaceFunc) (*staging.Result, error) {
	start := time.Now()
	key := s.ObjectName(dataset)

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("feed %s: get %s: %w", dataset, key, err)
	}
	defer obj.Close()

	res, err := fn(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", dataset, err)
	}

	s.logger.Info("Dataset refreshed",
		zap.String("dataset", dataset),
		zap.String("object", key),
		zap.Int("rows", res.Rows),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// Preview downloads the dataset's feed and reports what a refresh would
// change without writing anything.
func (s *Service) Preview(ctx context.Context, dataset string) (*reconcile.Plan, error) {
	if _, err := s.target(dataset); err != nil {
		return nil, err
	}
	s.mu.RLock()
	fn, ok := s.previews[dataset]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("feed %s: preview: %w", dataset, server.ErrNotFound)
	}

	key := s.ObjectName(dataset)
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("feed %s: get %s: %w", dataset, key, err)
	}
	defer obj.Close()

	plan, err := fn(ctx, obj)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", dataset, err)
	}
	s.logger.Debug("Dataset previewed",
		zap.String("dataset", dataset),
		zap.Int("added", plan.Summary.Added),
		zap.Int("removed", plan.Summary.Removed),
		zap.Int("changed", plan.Summary.Changed),
	)
	return plan, nil
}

// RefreshAll refreshes every registered dataset in name order. It stops at
// the first failure unless continueOnError is set, in which case failures
// are logged and reported in the outcomes and the returned error is nil.
func (s *Service) RefreshAll(ctx context.Context, continueOnError bool) ([]Outcome, error) {
	s.allMu.Lock()
	defer s.allMu.Unlock()

	var outcomes []Outcome
	for _, dataset := range s.Datasets() {
		res, err := s.Refresh(ctx, dataset)
		if err != nil {
			if !continueOnError {
				return outcomes, err
			}
			s.logger.Error("Dataset refresh failed, continuing", zap.String("dataset", dataset), zap.Error(err))
			outcomes = append(outcomes, Outcome{Dataset: dataset, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, Outcome{Dataset: dataset, Rows: res.Rows})
	}
	return outcomes, nil
}

// Upload stores a feed for a registered dataset.
func (s *Service) Upload(ctx context.Context, dataset string, r io.Reader, size int64) error {
	if _, err := s.target(dataset); err != nil {
		return err
	}
	key := s.ObjectName(dataset)
	if _, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: "application/json",
	}); err != nil {
		return fmt.Errorf("feed %s: put %s: %w", dataset, key, err)
	}

	s.listMu.Lock()
	s.listing = nil
	s.listMu.Unlock()
	return nil
}

// Available lists the feeds of registered datasets present in the bucket.
// The listing is cached for CacheTTLSeconds.
func (s *Service) Available(ctx context.Context) ([]Object, error) {
	ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second

	s.listMu.Lock()
	if s.listing != nil && ttl > 0 && time.Since(s.listBuilt) < ttl {
		cached := s.listing
		s.listMu.Unlock()
		return cached, nil
	}
	s.listMu.Unlock()

	v, err, _ := s.sf.Do("\x00list", func() (any, error) {
		return s.list(ctx)
	})
	if err != nil {
		return nil, err
	}
	objects := v.([]Object)

	s.listMu.Lock()
	s.listing = objects
	s.listBuilt = time.Now()
	s.listMu.Unlock()
	return objects, nil
}

func (s *Service) list(ctx context.Context) ([]Object, error) {
	byKey := make(map[string]string)
	for _, dataset := range s.Datasets() {
		byKey[s.ObjectName(dataset)] = dataset
	}

	objects := make([]Object, 0, len(byKey))
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: s.cfg.Prefix, Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("list feeds: %w", info.Err)
		}
		dataset, ok := byKey[info.Key]
		if !ok {
			continue
		}
		objects = append(objects, Object{
			Dataset:      dataset,
			Key:          info.Key,
			Size:         info.Size,
			LastModified: info.LastModified,
		})
	}
	slices.SortFunc(objects, func(a, b Object) int { return strings.Compare(a.Dataset, b.Dataset) })
	return objects, nil
}
