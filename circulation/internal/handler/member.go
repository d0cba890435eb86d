package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// MemberSummary godoc
// @Summary member record with active loans and pending fines
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path string true "member id"
// @Success 200 {object} model.MemberSummary
// @Failure 403,404 {object} errorResponse
// @Router /api/v1/members/{id}/summary [get]
func (h *Handler) MemberSummary(c echo.Context) error {
	summary, err := h.svc.MemberSummary(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// ListActivity godoc
// @Summary audit trail of mutating calls
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "acting user"
// @Param action query string false "action, e.g. fine.pay"
// @Param entity_type query string false "issue, fine or request"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} model.ListActivity
// @Router /api/v1/activity-logs [get]
func (h *Handler) ListActivity(c echo.Context) error {
	var filter model.ActivityFilter
	if err := c.Bind(&filter); err != nil {
		return h.badRequest(err, "query")
	}
	if err := c.Validate(filter); err != nil {
		return h.badRequest(err)
	}
	list, err := h.svc.ListActivity(c.Request().Context(), actor(c), filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ReloadSettings godoc
// @Summary re-read circulation settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Policy
// @Router /api/v1/settings/reload [post]
func (h *Handler) ReloadSettings(c echo.Context) error {
	policy, err := h.svc.ReloadPolicy(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, policy)
}
