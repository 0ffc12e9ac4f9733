package inventory

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	commonerrors "inventory-api-server/internal/api/common/errors"
	"inventory-api-server/internal/api/common/query"
	"inventory-api-server/internal/api/common/report"
	"inventory-api-server/internal/config"
)

const emptyMessage = "No compute resources found"

type InventoryHandler struct {
	is       InventoryService
	defaults config.Workspace
	logger   *zap.Logger
}

func InventoryRouter(route fiber.Router, is InventoryService, defaults config.Workspace, logger *zap.Logger) {
	handler := &InventoryHandler{
		is:       is,
		defaults: defaults,
		logger:   logger,
	}

	route.Get("/inventory", handler.getInventory)
	route.Post("/inventory", handler.getInventory)
	route.Get("/inventory/report", handler.getReport)
	route.Post("/inventory/report", handler.getReport)
}

// @Summary List workspace compute inventory
// @Description Fetch all clusters and SQL warehouses of a workspace and aggregate per-state counts and auto-stop threshold breaches
// @Accept  json
// @Produce json
// @Param host      query string false "workspace URL (falls back to DATABRICKS_HOST)"
// @Param token     query string false "workspace access token (falls back to DATABRICKS_TOKEN)"
// @Param threshold query int    false "auto-stop threshold in minutes; omit to disable breach checking"
// @Success 200 {object} AggregateResult
// @Failure 400 {object} nil
// @Failure 502 {object} nil
// @Router /api/v1/inventory [get]
func (h *InventoryHandler) getInventory(c *fiber.Ctx) error {
	q, err := query.ParseAndValidate(c, h.defaults)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(&fiber.Map{
			"error": err.Error(),
		})
	}

	result, err := h.is.Aggregate(c.UserContext(), q)
	if err != nil {
		return h.renderError(c, q.ID, err)
	}
	if result == nil {
		return c.Status(fiber.StatusOK).JSON(&fiber.Map{
			"message": emptyMessage,
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// @Summary Render workspace compute inventory tables
// @Description Same aggregation as /inventory, rendered as plain-text state count tables and a breach table
// @Accept  json
// @Produce plain
// @Param host      query string false "workspace URL (falls back to DATABRICKS_HOST)"
// @Param token     query string false "workspace access token (falls back to DATABRICKS_TOKEN)"
// @Param threshold query int    false "auto-stop threshold in minutes; omit to disable breach checking"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 502 {string} string
// @Router /api/v1/inventory/report [get]
func (h *InventoryHandler) getReport(c *fiber.Ctx) error {
	q, err := query.ParseAndValidate(c, h.defaults)
	if err != nil {
		h.logger.Debug("query parser error", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	result, err := h.is.Aggregate(c.UserContext(), q)
	if err != nil {
		h.logger.Debug("inventory aggregation failed", zap.String("id", q.ID), zap.Error(err))
		return c.Status(statusFor(err)).SendString(err.Error())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	if result == nil {
		return c.Status(fiber.StatusOK).SendString(emptyMessage)
	}

	sections := []string{
		report.StateTable("Clusters", result.Summary.ClusterStates),
		report.StateTable("SQL Warehouses", result.Summary.WarehouseStates),
	}
	if q.ThresholdMinutes != nil {
		sections = append(sections, report.BreachTable(result.Summary.AutoStopBreaches))
	}
	return c.Status(fiber.StatusOK).SendString(strings.Join(sections, "\n\n") + "\n")
}

func (h *InventoryHandler) renderError(c *fiber.Ctx, id string, err error) error {
	h.logger.Debug("inventory aggregation failed", zap.String("id", id), zap.Error(err))
	return c.Status(statusFor(err)).JSON(&fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	var missing commonerrors.MissingCredentialsError
	var upstream commonerrors.UpstreamError

	switch {
	case errors.As(err, &missing):
		return fiber.StatusBadRequest
	case errors.As(err, &upstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
