package securities

import (
	"context"
	"fmt"

	"backoffice/core/logger"
	"backoffice/core/server"
	"backoffice/core/staging"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the security datasets.
type Handler struct {
	service *Service
	writes  bool
}

// NewHandler creates a new HTTP handler. Replace routes are only registered
// when writes is set.
func NewHandler(service *Service, writes bool) *Handler {
	return &Handler{service: service, writes: writes}
}

// RegisterRoutes registers the securities routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/securities")
	group.Get("/risk-factors", h.HandleListRiskFactors)
	group.Get("/master", h.HandleListMasterExt)
	group.Get("/master/:id", h.HandleGetMasterExt)
	group.Get("/alerts", h.HandleListAlerts)
	group.Get("/filings", h.HandleListFilings)

	if h.writes {
		group.Put("/risk-factors", h.HandleReplaceRiskFactors)
		group.Put("/master", h.HandleReplaceMasterExt)
		group.Put("/alerts", h.HandleReplaceAlerts)
		group.Put("/filings", h.HandleReplaceFilings)
	}
}

// HandleListRiskFactors lists risk factor exposures.
// @Summary List Risk Factors
// @Tags securities
// @Produce json
// @Param security_id query string false "Security ID"
// @Success 200 {array} models.RiskFactor "Risk Factors"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/risk-factors [get]
func (h *Handler) HandleListRiskFactors(c *fiber.Ctx) error {
	items, err := h.service.ListRiskFactors(c.Context(), c.Query("security_id"))
	if err != nil {
		return h.fail(c, "List risk factors failed", err)
	}
	return c.JSON(items)
}

// HandleReplaceRiskFactors replaces the risk factor dataset.
// @Summary Replace Risk Factors
// @Tags securities
// @Accept json
// @Produce json
// @Param items body []models.RiskFactor true "Risk Factors"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/risk-factors [put]
func (h *Handler) HandleReplaceRiskFactors(c *fiber.Ctx) error {
	return replaceBody(h, c, "Replace risk factors failed", h.service.ReplaceRiskFactors)
}

// HandleListMasterExt lists security master extensions.
// @Summary List Security Master Extensions
// @Tags securities
// @Produce json
// @Param security_id query string false "Security ID"
// @Success 200 {array} models.MasterExt "Master Extensions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/master [get]
func (h *Handler) HandleListMasterExt(c *fiber.Ctx) error {
	items, err := h.service.ListMasterExt(c.Context(), c.Query("security_id"))
	if err != nil {
		return h.fail(c, "List master extensions failed", err)
	}
	return c.JSON(items)
}

// HandleGetMasterExt returns the master extension of one security.
// @Summary Get Security Master Extension
// @Tags securities
// @Produce json
// @Param id path string true "Security ID"
// @Success 200 {object} models.MasterExt "Master Extension"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/master/{id} [get]
func (h *Handler) HandleGetMasterExt(c *fiber.Ctx) error {
	item, err := h.service.GetMasterExt(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get master extension failed", err)
	}
	return c.JSON(item)
}

// HandleReplaceMasterExt replaces the master extension dataset.
// @Summary Replace Security Master Extensions
// @Tags securities
// @Accept json
// @Produce json
// @Param items body []models.MasterExt true "Master Extensions"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/master [put]
func (h *Handler) HandleReplaceMasterExt(c *fiber.Ctx) error {
	return replaceBody(h, c, "Replace master extensions failed", h.service.ReplaceMasterExt)
}

// HandleListAlerts lists security alerts.
// @Summary List Security Alerts
// @Tags securities
// @Produce json
// @Param security_id query string false "Security ID"
// @Success 200 {array} models.Alert "Alerts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/alerts [get]
func (h *Handler) HandleListAlerts(c *fiber.Ctx) error {
	items, err := h.service.ListAlerts(c.Context(), c.Query("security_id"))
	if err != nil {
		return h.fail(c, "List alerts failed", err)
	}
	return c.JSON(items)
}

// HandleReplaceAlerts replaces the alert dataset.
// @Summary Replace Security Alerts
// @Tags securities
// @Accept json
// @Produce json
// @Param items body []models.Alert true "Alerts"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/alerts [put]
func (h *Handler) HandleReplaceAlerts(c *fiber.Ctx) error {
	return replaceBody(h, c, "Replace alerts failed", h.service.ReplaceAlerts)
}

// HandleListFilings lists issuer filings.
// @Summary List Security Filings
// @Tags securities
// @Produce json
// @Param security_id query string false "Security ID"
// @Success 200 {array} models.Filing "Filings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/filings [get]
func (h *Handler) HandleListFilings(c *fiber.Ctx) error {
	items, err := h.service.ListFilings(c.Context(), c.Query("security_id"))
	if err != nil {
		return h.fail(c, "List filings failed", err)
	}
	return c.JSON(items)
}

// HandleReplaceFilings replaces the filing dataset.
// @Summary Replace Security Filings
// @Tags securities
// @Accept json
// @Produce json
// @Param items body []models.Filing true "Filings"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /securities/filings [put]
func (h *Handler) HandleReplaceFilings(c *fiber.Ctx) error {
	return replaceBody(h, c, "Replace filings failed", h.service.ReplaceFilings)
}

func replaceBody[T any](h *Handler, c *fiber.Ctx, msg string, fn func(context.Context, []T) (*staging.Result, error)) error {
	var items []T
	if err := c.BodyParser(&items); err != nil {
		return server.ErrorResponse(c, fmt.Errorf("%w: %v", server.ErrInvalidInput, err))
	}
	res, err := fn(c.Context(), items)
	if err != nil {
		return h.fail(c, msg, err)
	}
	return c.JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if server.StatusFor(err) == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return server.ErrorResponse(c, err)
}
