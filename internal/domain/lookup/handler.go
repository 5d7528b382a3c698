package lookup

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the autocomplete endpoints backing the intake forms.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/lookup/medicines", h.Medicines)
	g.GET("/lookup/cities", h.Cities)
	g.GET("/lookup/states", h.States)
}

func (h *Handler) Medicines(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SearchMedicines(c.QueryParam("q")))
}

func (h *Handler) Cities(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SearchCities(c.QueryParam("q")))
}

func (h *Handler) States(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SearchStates(c.QueryParam("q")))
}
