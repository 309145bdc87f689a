package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"titlehub/internal/model"
	"titlehub/internal/response"
	"titlehub/internal/service"
)

// OrderHandler handles order tracking endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderRequest represents an order create/update body.
type OrderRequest struct {
	Customer        string `json:"customer" validate:"required"`
	State           string `json:"state" validate:"required"`
	County          string `json:"county" validate:"required"`
	ProductType     string `json:"product_type" validate:"required"`
	TransactionType string `json:"transaction_type" validate:"required"`
	DataSource      string `json:"data_source"`
	WorkflowGroup   string `json:"workflow_group" validate:"required"`
	Status          string `json:"status" validate:"omitempty,oneof=pending completed"`
}

func (r *OrderRequest) toInput() service.OrderInput {
	return service.OrderInput{
		Customer:        r.Customer,
		State:           r.State,
		County:          r.County,
		ProductType:     r.ProductType,
		TransactionType: r.TransactionType,
		DataSource:      r.DataSource,
		WorkflowGroup:   r.WorkflowGroup,
		Status:          model.OrderStatus(r.Status),
	}
}

// Create godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body OrderRequest true "Order data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	order, err := h.orderService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusCreated, order)
}

// List godoc
// @Summary List active orders
// @Tags orders
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, orders)
}

// ListDeleted godoc
// @Summary List soft-deleted orders (admin audit view)
// @Tags orders
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/deleted [get]
func (h *OrderHandler) ListDeleted(c echo.Context) error {
	orders, err := h.orderService.ListDeleted(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, orders)
}

// ListCompleted godoc
// @Summary List completed orders
// @Tags orders
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/completed [get]
func (h *OrderHandler) ListCompleted(c echo.Context) error {
	orders, err := h.orderService.ListCompleted(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, orders)
}

// Get godoc
// @Summary Get an order by id
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, order)
}

// Update godoc
// @Summary Update an order by id
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body OrderRequest true "Order data"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/{id} [patch]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	order, err := h.orderService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, order)
}

// Delete godoc
// @Summary Soft-delete an order by id
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Order deleted successfully")
}
