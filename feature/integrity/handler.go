package integrity

import (
	"backoffice/core/logger"
	"backoffice/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/feeds", h.HandleFeedsCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Schema, Feeds). A failed check is reported in its section.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(ctx); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if fr, err := h.service.CheckFeeds(ctx); err != nil {
		report["feeds"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["feeds"] = fr
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks dataset table shapes.
// @Summary Check Schema
// @Description Checks that the target and staging table of every dataset carry the declared columns.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema(c.Context())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatch detected", zap.Strings("datasets", mismatched(report)))
	}
	return c.JSON(report)
}

// HandleFeedsCheck checks feed presence.
// @Summary Check Feeds
// @Description Lists registered datasets with and without a feed object in the bucket.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.FeedReport "Feeds Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/feeds [get]
func (h *Handler) HandleFeedsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckFeeds(c.Context())
	if err != nil {
		l.Error("Feeds check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(report.Missing) > 0 {
		l.Warn("Missing feeds detected", zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

func mismatched(r *checks.SchemaReport) []string {
	var out []string
	for _, d := range r.Datasets {
		if !d.Matched {
			out = append(out, d.Dataset)
		}
	}
	return out
}
