package billing

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/frontdesk/frontdesk/internal/platform/apperr"
	"github.com/frontdesk/frontdesk/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/bills", h.List)
	api.POST("/bills", h.Create)
	api.GET("/bills/:id", h.Get)
	api.PUT("/bills/:id", h.Update)
	api.DELETE("/bills/:id", h.Delete)
	api.POST("/bills/:id/mark-paid", h.MarkPaid)
	api.POST("/bills/:id/restore", h.Restore)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperr.Validation("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// List shows pending bills by default; ?status=paid selects the history view.
func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)

	status := c.QueryParam("status")
	if status == "" {
		status = StatusPending
	}

	var (
		items []*Bill
		total int
		err   error
	)
	switch status {
	case StatusPending:
		items, total, err = h.svc.ListPending(c.Request().Context(), pg.Limit, pg.Offset)
	case StatusPaid:
		items, total, err = h.svc.ListPaid(c.Request().Context(), pg.Limit, pg.Offset)
	default:
		return apperr.Validation("status must be %q or %q, got %q", StatusPending, StatusPaid, status)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	b, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	b, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}
	b, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MarkPaid(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	b, err := h.svc.MarkPaid(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) Restore(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	b, err := h.svc.Restore(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}
