package pairorders

import (
	"fmt"

	"backoffice/core/logger"
	"backoffice/core/server"
	"backoffice/feature/pairorders/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for pair orders and templates.
type Handler struct {
	service *Service
	writes  bool
}

// NewHandler creates a new HTTP handler. Replace routes are only registered
// when writes is set.
func NewHandler(service *Service, writes bool) *Handler {
	return &Handler{service: service, writes: writes}
}

// RegisterRoutes registers the pair order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	orders := app.Group("/pair-orders")
	orders.Get("/", h.HandleListOrders)
	orders.Get("/:id", h.HandleGetOrder)

	templates := app.Group("/pair-order-templates")
	templates.Get("/", h.HandleListTemplates)
	templates.Get("/:id", h.HandleGetTemplate)

	if h.writes {
		orders.Put("/", h.HandleReplaceOrders)
		templates.Put("/", h.HandleReplaceTemplates)
	}
}

// HandleListOrders returns every pair order.
// @Summary List Pair Orders
// @Description Reconstructs all pair orders from their buy and sell legs.
// @Tags pair-orders
// @Produce json
// @Success 200 {array} models.PairOrder "Pair Orders"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-orders [get]
func (h *Handler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.Context())
	if err != nil {
		return h.fail(c, "List pair orders failed", err)
	}
	return c.JSON(orders)
}

// HandleGetOrder returns a single pair order.
// @Summary Get Pair Order
// @Description Reconstructs one pair order by parent order id.
// @Tags pair-orders
// @Produce json
// @Param id path string true "Parent Order ID"
// @Success 200 {object} models.PairOrder "Pair Order"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-orders/{id} [get]
func (h *Handler) HandleGetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get pair order failed", err)
	}
	return c.JSON(order)
}

// HandleReplaceOrders replaces the whole pair order dataset.
// @Summary Replace Pair Orders
// @Description Replaces every pair order through the staging table. An empty array empties the dataset.
// @Tags pair-orders
// @Accept json
// @Produce json
// @Param orders body []models.PairOrder true "Pair Orders"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-orders [put]
func (h *Handler) HandleReplaceOrders(c *fiber.Ctx) error {
	var orders []models.PairOrder
	if err := c.BodyParser(&orders); err != nil {
		return server.ErrorResponse(c, fmt.Errorf("%w: %v", server.ErrInvalidInput, err))
	}
	res, err := h.service.ReplaceOrders(c.Context(), orders)
	if err != nil {
		return h.fail(c, "Replace pair orders failed", err)
	}
	return c.JSON(res)
}

// HandleListTemplates returns every pair-order template.
// @Summary List Pair Order Templates
// @Tags pair-order-templates
// @Produce json
// @Success 200 {array} models.PairOrderTemplate "Templates"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-order-templates [get]
func (h *Handler) HandleListTemplates(c *fiber.Ctx) error {
	templates, err := h.service.ListTemplates(c.Context())
	if err != nil {
		return h.fail(c, "List pair order templates failed", err)
	}
	return c.JSON(templates)
}

// HandleGetTemplate returns a single pair-order template.
// @Summary Get Pair Order Template
// @Tags pair-order-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} models.PairOrderTemplate "Template"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-order-templates/{id} [get]
func (h *Handler) HandleGetTemplate(c *fiber.Ctx) error {
	tmpl, err := h.service.GetTemplate(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Get pair order template failed", err)
	}
	return c.JSON(tmpl)
}

// HandleReplaceTemplates replaces the whole template dataset.
// @Summary Replace Pair Order Templates
// @Tags pair-order-templates
// @Accept json
// @Produce json
// @Param templates body []models.PairOrderTemplate true "Templates"
// @Success 200 {object} staging.Result "Replace Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pair-order-templates [put]
func (h *Handler) HandleReplaceTemplates(c *fiber.Ctx) error {
	var templates []models.PairOrderTemplate
	if err := c.BodyParser(&templates); err != nil {
		return server.ErrorResponse(c, fmt.Errorf("%w: %v", server.ErrInvalidInput, err))
	}
	res, err := h.service.ReplaceTemplates(c.Context(), templates)
	if err != nil {
		return h.fail(c, "Replace pair order templates failed", err)
	}
	return c.JSON(res)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if server.StatusFor(err) == fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return server.ErrorResponse(c, err)
}
