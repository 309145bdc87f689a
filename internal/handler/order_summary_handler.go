package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"titlehub/internal/response"
	"titlehub/internal/service"
)

// OrderSummaryHandler exposes read-only projections over order entries.
type OrderSummaryHandler struct {
	summaryService service.OrderSummaryService
}

// NewOrderSummaryHandler creates a new order summary handler.
func NewOrderSummaryHandler(summaryService service.OrderSummaryService) *OrderSummaryHandler {
	return &OrderSummaryHandler{summaryService: summaryService}
}

// List godoc
// @Summary List all order summaries
// @Tags order-summaries
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order-summaries [get]
func (h *OrderSummaryHandler) List(c echo.Context) error {
	summaries, err := h.summaryService.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, summaries)
}

// GetByOrderNumber godoc
// @Summary Get an order summary by order number
// @Tags order-summaries
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /order-summaries/{orderNumber} [get]
func (h *OrderSummaryHandler) GetByOrderNumber(c echo.Context) error {
	orderNumber := c.Param("orderNumber")

	summary, err := h.summaryService.GetByOrderNumber(c.Request().Context(), orderNumber)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, summary)
}

// GetStatus godoc
// @Summary Get the derived status of an order by order number
// @Tags order-summaries
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /order-summaries/{orderNumber}/order-status [get]
func (h *OrderSummaryHandler) GetStatus(c echo.Context) error {
	orderNumber := c.Param("orderNumber")

	status, err := h.summaryService.GetStatus(c.Request().Context(), orderNumber)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, status)
}
