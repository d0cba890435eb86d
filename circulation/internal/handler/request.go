package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// CreateRequest godoc
// @Summary request a hold on a book
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateRequestRequest true "book, and member for staff"
// @Success 201 {object} model.BookRequest
// @Failure 400,404,409 {object} errorResponse
// @Router /api/v1/requests [post]
func (h *Handler) CreateRequest(c echo.Context) error {
	var req model.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(err, "body")
	}
	if err := c.Validate(req); err != nil {
		return h.badRequest(err)
	}
	request, err := h.svc.CreateRequest(c.Request().Context(), actor(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, request)
}

// ProcessRequest godoc
// @Summary approve or reject a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "request id"
// @Param request body model.ProcessRequestRequest true "decision"
// @Success 200 {object} model.BookRequest
// @Failure 400,404,409 {object} errorResponse
// @Router /api/v1/requests/{id}/process [put]
func (h *Handler) ProcessRequest(c echo.Context) error {
	var req model.ProcessRequestRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(err, "body")
	}
	if err := c.Validate(req); err != nil {
		return h.badRequest(err)
	}
	request, err := h.svc.ProcessRequest(c.Request().Context(), actor(c), c.Param("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, request)
}

// CancelRequest godoc
// @Summary cancel your own pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "request id"
// @Success 200 {object} model.BookRequest
// @Failure 404,409 {object} errorResponse
// @Router /api/v1/requests/{id}/cancel [put]
func (h *Handler) CancelRequest(c echo.Context) error {
	request, err := h.svc.CancelRequest(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, request)
}

// ListRequests godoc
// @Summary list hold requests; members only see their own
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, approved, rejected or cancelled"
// @Param page query int false "page"
// @Param size query int false "page size"
// @Success 200 {object} model.ListRequests
// @Router /api/v1/requests [get]
func (h *Handler) ListRequests(c echo.Context) error {
	var filter model.RequestFilter
	if err := c.Bind(&filter); err != nil {
		return h.badRequest(err, "query")
	}
	if err := c.Validate(filter); err != nil {
		return h.badRequest(err)
	}
	list, err := h.svc.ListRequests(c.Request().Context(), actor(c), filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
