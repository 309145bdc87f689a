package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"titlehub/internal/model"
	"titlehub/internal/response"
	"titlehub/internal/service"
)

// OrderEntryHandler handles order entry intake endpoints.
type OrderEntryHandler struct {
	entryService service.OrderEntryService
}

// NewOrderEntryHandler creates a new order entry handler.
func NewOrderEntryHandler(entryService service.OrderEntryService) *OrderEntryHandler {
	return &OrderEntryHandler{entryService: entryService}
}

// OrderEntryRequest represents an order entry create/update body.
type OrderEntryRequest struct {
	OrderNumber    string     `json:"order_number" validate:"required"`
	OpenDate       time.Time  `json:"open_date" validate:"required"`
	ClosedDate     *time.Time `json:"closed_date"`
	DueDate        time.Time  `json:"due_date" validate:"required"`
	ArrivalDate    time.Time  `json:"arrival_date" validate:"required"`
	DeliveryDate   *time.Time `json:"delivery_date"`
	ActiveWorkflow string     `json:"active_workflow"`
	AssignedTo     string     `json:"assigned_to"`

	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	County        string `json:"county" validate:"required"`
	ZipCode       string `json:"zip_code" validate:"required"`

	ParcelID           string  `json:"parcel_id" validate:"required"`
	SubDivision        string  `json:"sub_division"`
	Block              string  `json:"block"`
	Lot                string  `json:"lot"`
	Section            string  `json:"section"`
	LandValue          float64 `json:"land_value"`
	ImprovementValue   float64 `json:"improvement_value"`
	TotalAssessedValue float64 `json:"total_assessed_value"`

	ProductType         string `json:"product_type" validate:"required"`
	TransactionType     string `json:"transaction_type" validate:"required"`
	WorkflowGroup       string `json:"workflow_group" validate:"required"`
	PropertyType        string `json:"property_type"`
	DataSource          string `json:"data_source" validate:"required"`
	AddInProductService string `json:"add_in_product_service"`

	Abstractor       string `json:"abstractor"`
	BusinessSource   string `json:"business_source"`
	OtherPartner     string `json:"other_partner"`
	OtherSource      string `json:"other_source"`
	RecordingPartner string `json:"recording_partner"`
	TaxOffice        string `json:"tax_office"`
}

func (r *OrderEntryRequest) toModel() *model.OrderEntry {
	return &model.OrderEntry{
		OrderNumber:         r.OrderNumber,
		OpenDate:            r.OpenDate,
		ClosedDate:          r.ClosedDate,
		DueDate:             r.DueDate,
		ArrivalDate:         r.ArrivalDate,
		DeliveryDate:        r.DeliveryDate,
		ActiveWorkflow:      r.ActiveWorkflow,
		AssignedTo:          r.AssignedTo,
		StreetAddress:       r.StreetAddress,
		City:                r.City,
		State:               r.State,
		County:              r.County,
		ZipCode:             r.ZipCode,
		ParcelID:            r.ParcelID,
		SubDivision:         r.SubDivision,
		Block:               r.Block,
		Lot:                 r.Lot,
		Section:             r.Section,
		LandValue:           r.LandValue,
		ImprovementValue:    r.ImprovementValue,
		TotalAssessedValue:  r.TotalAssessedValue,
		ProductType:         r.ProductType,
		TransactionType:     r.TransactionType,
		WorkflowGroup:       r.WorkflowGroup,
		PropertyType:        r.PropertyType,
		DataSource:          r.DataSource,
		AddInProductService: r.AddInProductService,
		Abstractor:          r.Abstractor,
		BusinessSource:      r.BusinessSource,
		OtherPartner:        r.OtherPartner,
		OtherSource:         r.OtherSource,
		RecordingPartner:    r.RecordingPartner,
		TaxOffice:           r.TaxOffice,
	}
}

// Create godoc
// @Summary Create an order entry
// @Tags order-entries
// @Accept json
// @Produce json
// @Param request body OrderEntryRequest true "Order entry data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Security BearerAuth
// @Router /order-entries [post]
func (h *OrderEntryHandler) Create(c echo.Context) error {
	var req OrderEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	entry, err := h.entryService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusCreated, entry)
}

// List godoc
// @Summary List order entries
// @Tags order-entries
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /order-entries [get]
func (h *OrderEntryHandler) List(c echo.Context) error {
	entries, err := h.entryService.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, entries)
}

// Get godoc
// @Summary Get an order entry by id
// @Tags order-entries
// @Produce json
// @Param id path int true "Order entry ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /order-entries/{id} [get]
func (h *OrderEntryHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	entry, err := h.entryService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, entry)
}

// Update godoc
// @Summary Replace an order entry by id
// @Tags order-entries
// @Accept json
// @Produce json
// @Param id path int true "Order entry ID"
// @Param request body OrderEntryRequest true "Order entry data"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /order-entries/{id} [put]
func (h *OrderEntryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	var req OrderEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	entry, err := h.entryService.Update(c.Request().Context(), id, req.toModel())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, entry)
}

// Delete godoc
// @Summary Permanently delete an order entry by id
// @Tags order-entries
// @Produce json
// @Param id path int true "Order entry ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /order-entries/{id} [delete]
func (h *OrderEntryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.entryService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Order entry deleted successfully")
}
