package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"titlehub/internal/middleware"
	"titlehub/internal/response"
	"titlehub/internal/service"
)

// ContactTypeHandler handles the contact-type taxonomy endpoints.
type ContactTypeHandler struct {
	typeService service.ContactTypeService
}

// NewContactTypeHandler creates a new contact type handler.
func NewContactTypeHandler(typeService service.ContactTypeService) *ContactTypeHandler {
	return &ContactTypeHandler{typeService: typeService}
}

// ContactTypeRequest represents a contact type creation body.
type ContactTypeRequest struct {
	ContactType string `json:"contact_type" validate:"required"`
}

// Create godoc
// @Summary Create a contact type
// @Tags contact-types
// @Accept json
// @Produce json
// @Param request body ContactTypeRequest true "Contact type data"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Security BearerAuth
// @Router /contact-types [post]
func (h *ContactTypeHandler) Create(c echo.Context) error {
	var req ContactTypeRequest
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

	ct, err := h.typeService.Create(c.Request().Context(), req.ContactType, user.ID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusCreated, ct)
}

// List godoc
// @Summary List active contact types
// @Tags contact-types
// @Produce json
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /contact-types [get]
func (h *ContactTypeHandler) List(c echo.Context) error {
	types, err := h.typeService.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, types)
}

// Get godoc
// @Summary Get a contact type by id
// @Tags contact-types
// @Produce json
// @Param id path int true "Contact type ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contact-types/{id} [get]
func (h *ContactTypeHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	ct, err := h.typeService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, http.StatusOK, ct)
}

// Delete godoc
// @Summary Soft-delete a contact type
// @Tags contact-types
// @Produce json
// @Param id path int true "Contact type ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contact-types/{id} [delete]
func (h *ContactTypeHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.typeService.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Contact type deleted successfully")
}

// Restore godoc
// @Summary Restore a soft-deleted contact type
// @Tags contact-types
// @Produce json
// @Param id path int true "Contact type ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Security BearerAuth
// @Router /contact-types/{id}/restore [patch]
func (h *ContactTypeHandler) Restore(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return response.Fail(c, http.StatusBadRequest, err.Error())
	}

	if err := h.typeService.Restore(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Message(c, http.StatusOK, "Contact type restored successfully")
}
