package feeds

import (
	"backoffice/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new feeds feature.
func NewFeature(client storage.Client, bucket string, cfg Config, logger *zap.Logger, writes bool) *Feature {
	svc := NewService(client, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc, writes)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "feeds"
}

// IsEnabled reports whether a storage client and at least one dataset are available.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil && len(f.service.Datasets()) > 0
}

// Service exposes the feature's service so datasets can be registered.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
