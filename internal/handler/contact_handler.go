package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"titlehub/internal/middleware"
	"titlehub/internal/model"
	"titlehub/internal/response"
	"titlehub/internal/service"
)

// ContactHandler handles contact management endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact create/update body.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Type    string `json:"type" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	County  string `json:"county"`
	Status  string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (r *ContactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		Name:    r.Name,
		Phone:   r.Phone,
		Email:   r.Email,
		Type:    r.Type,
		Address: r.Address,
		City:    r.City,
		County:  r.County,
		Status:  model.ContactStatus(r.Status),
	}
}

// Create godoc
// @Summary Create a contact owned by the caller
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Fail(c, http.StatusUnauthorized, "authentication required")
	}

	contact, err := h.contactService.Create(c.Request().Context(), req.toInput(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusCreated, contact)
}

// List godoc
// @Summary List active contacts
// @Tags contacts
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, contacts)
}

// ListDeleted godoc
// @Summary List soft-deleted contacts (admin audit view)
// @Tags contacts
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts/deleted [get]
func (h *ContactHandler) ListDeleted(c echo.Context) error {
	contacts, err := h.contactService.ListDeleted(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, contacts)
}

// Get godoc
// @Summary Get a contact by id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	contact, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, contact)
}

// Search godoc
// @Summary Search contacts by name
// @Tags contacts
// @Produce json
// @Param name query string true "Name to search for"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts/search [get]
func (h *ContactHandler) Search(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return response.Fail(c, http.StatusBadRequest, "name query parameter is required")
	}

	contacts, err := h.contactService.Search(c.Request().Context(), name)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, contacts)
}

// Update godoc
// @Summary Update a contact by id
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body ContactRequest true "Contact data"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts/{id} [patch]
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.Fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFail(c, fieldErrors(err))
	}

	contact, err := h.contactService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, contact)
}

// Delete godoc
// @Summary Soft-delete a contact by id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Contact deleted successfully")
}
