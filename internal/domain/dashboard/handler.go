package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler { return &Handler{repo: repo} }

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.repo.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
