package securities

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new securities feature.
func NewFeature(db *gorm.DB, logger *zap.Logger, procedures, writes bool) *Feature {
	svc := NewService(db, logger, procedures)
	return &Feature{service: svc, handler: NewHandler(svc, writes)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "securities"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Service exposes the feature's service to other features.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
