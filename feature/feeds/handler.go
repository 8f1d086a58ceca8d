package feeds

import (
	"bytes"
	"fmt"

	"backoffice/core/logger"
	"backoffice/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for dataset feeds.
type Handler struct {
	service *Service
	writes  bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, writes bool) *Handler {
	return &Handler{service: service, writes: writes}
}

// RegisterRoutes registers the feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/feeds")
	group.Get("/", h.HandleList)
	group.Get("/:dataset/preview", h.HandlePreview)

	if h.writes {
		group.Post("/refresh", h.HandleRefreshAll)
		group.Post("/:dataset/refresh", h.HandleRefresh)
		group.Put("/:dataset", h.HandleUpload)
	}
}

// HandleList lists the feeds available in the bucket.
// @Summary List Feeds
// @Description Lists the feed objects of registered datasets.
// @Tags feeds
// @Produce json
// @Success 200 {array} feeds.Object "Feeds"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.service.Available(c.Context())
	if err != nil {
		return h.fail(c, "List feeds failed", err)
	}
	return c.JSON(objects)
}

// HandlePreview compares a dataset's feed with the stored dataset.
// @Summary Preview Refresh
// @Description Reports the keys a refresh would add, remove or change. Nothing is written.
// @Tags feeds
// @Produce json
// @Param dataset path string true "Dataset name"
// @Success 200 {object} reconcile.Plan "Plan"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/{dataset}/preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	plan, err := h.service.Preview(c.Context(), c.Params("dataset"))
	if err != nil {
		return h.fail(c, "Preview failed", err)
	}
	return c.JSON(plan)
}

// HandleRefresh replaces one dataset from its feed.
// @Summary Refresh Dataset
// @Description Downloads the dataset's feed and replaces the dataset with it.
// @Tags feeds
// @Produce json
// @Param dataset path string true "Dataset name (e.g. 'pair_orders')"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/{dataset}/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	res, err := h.service.Refresh(c.Context(), c.Params("dataset"))
	if err != nil {
		return h.fail(c, "Refresh failed", err)
	}
	return c.JSON(res)
}

// HandleRefreshAll replaces every registered dataset from its feed.
// @Summary Refresh All Datasets
// @Tags feeds
// @Produce json
// @Param continue_on_error query bool false "Keep going after a failed dataset"
// @Success 200 {array} feeds.Outcome "Outcomes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/refresh [post]
func (h *Handler) HandleRefreshAll(c *fiber.Ctx) error {
	outcomes, err := h.service.RefreshAll(c.Context(), c.QueryBool("continue_on_error", false))
	if err != nil {
		return h.fail(c, "Refresh all failed", err)
	}
	return c.JSON(outcomes)
}

// HandleUpload stores the request body as the dataset's feed.
// @Summary Upload Feed
// @Tags feeds
// @Accept json
// @Param dataset path string true "Dataset name"
// @Success 204 "Stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown Dataset"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /feeds/{dataset} [put]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return server.ErrorResponse(c, fmt.Errorf("%w: empty feed", server.ErrInvalidInput))
	}
	// fasthttp reuses the body buffer after the handler returns
	payload := bytes.Clone(body)
	if err := h.service.Upload(c.Context(), c.Params("dataset"), bytes.NewReader(payload), int64(len(payload))); err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if server.StatusFor(err) == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return server.ErrorResponse(c, err)
}
