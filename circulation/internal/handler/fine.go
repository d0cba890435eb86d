package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// PayFine godoc
// @Summary pay a fine; an absent amount pays the full fine
// @Tags fines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "fine id"
// @Param request body model.PayFineRequest false "amount collected"
// @Success 200 {object} model.Fine
// @Failure 400,404,409 {object} errorResponse
// @Router /api/v1/fines/{id}/pay [post]
func (h *Handler) PayFine(c echo.Context) error {
	var req model.PayFineRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(err, "amount")
	}
	fine, err := h.svc.PayFine(c.Request().Context(), actor(c), c.Param("id"), req.Amount)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, fine)
}

// WaiveFine godoc
// @Summary waive a pending fine
// @Tags fines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "fine id"
// @Param request body model.WaiveFineRequest false "reason"
// @Success 200 {object} model.Fine
// @Failure 404,409 {object} errorResponse
// @Router /api/v1/fines/{id}/waive [post]
func (h *Handler) WaiveFine(c echo.Context) error {
	var req model.WaiveFineRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(err, "body")
	}
	if err := c.Validate(req); err != nil {
		return h.badRequest(err)
	}
	fine, err := h.svc.WaiveFine(c.Request().Context(), actor(c), c.Param("id"), req.Reason)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, fine)
}

// ListFines godoc
// @Summary list fines; members only see their own
// @Tags fines
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, paid or waived"
// @Param member_id query string false "member id"
// @Param page query int false "page"
// @Param size query int false "page size"
// @Success 200 {object} model.ListFines
// @Router /api/v1/fines [get]
func (h *Handler) ListFines(c echo.Context) error {
	var filter model.FineFilter
	if err := c.Bind(&filter); err != nil {
		return h.badRequest(err, "query")
	}
	if err := c.Validate(filter); err != nil {
		return h.badRequest(err)
	}
	list, err := h.svc.ListFines(c.Request().Context(), actor(c), filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
