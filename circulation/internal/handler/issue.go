package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

// IssueBook godoc
// @Summary issue a book to a member
// @Tags issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.IssueBookRequest true "member and book"
// @Success 201 {object} model.Issue
// @Failure 400,404,409 {object} errorResponse
// @Router /api/v1/issues [post]
func (h *Handler) IssueBook(c echo.Context) error {
	var req model.IssueBookRequest
	if err := c.Bind(&req); err != nil {
		return h.badRequest(err, "body")
	}
	if err := c.Validate(req); err != nil {
		return h.badRequest(err)
	}
	issue, err := h.svc.IssueBook(c.Request().Context(), actor(c), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, issue)
}

// ReturnBook godoc
// @Summary return an issued book
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param id path string true "issue id"
// @Success 200 {object} model.Issue
// @Failure 404,409 {object} errorResponse
// @Router /api/v1/issues/{id}/return [put]
func (h *Handler) ReturnBook(c echo.Context) error {
	issue, err := h.svc.ReturnBook(c.Request().Context(), actor(c), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, issue)
}

// MarkOverdue godoc
// @Summary flag loans past their due date as overdue
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} markOverdueResponse
// @Router /api/v1/issues/overdue [post]
func (h *Handler) MarkOverdue(c echo.Context) error {
	n, err := h.svc.MarkOverdue(c.Request().Context(), actor(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, markOverdueResponse{Updated: n})
}

type markOverdueResponse struct {
	Updated int64 `json:"updated"`
}

// ListIssues godoc
// @Summary list loans; members only see their own
// @Tags issues
// @Produce json
// @Security BearerAuth
// @Param status query string false "issued, returned, overdue or lost"
// @Param member_id query string false "member id"
// @Param overdue query bool false "on loan and past due"
// @Param active query bool false "issued or overdue"
// @Param page query int false "page"
// @Param size query int false "page size"
// @Success 200 {object} model.ListIssues
// @Router /api/v1/issues [get]
func (h *Handler) ListIssues(c echo.Context) error {
	var filter model.IssueFilter
	if err := c.Bind(&filter); err != nil {
		return h.badRequest(err, "query")
	}
	if err := c.Validate(filter); err != nil {
		return h.badRequest(err)
	}
	list, err := h.svc.ListIssues(c.Request().Context(), actor(c), filter)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
