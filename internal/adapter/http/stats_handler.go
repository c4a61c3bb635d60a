package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloans-api/internal/usecase/stats"
)

type StatsHandler struct{ uc *stats.Usecase }

func NewStatsHandler(uc *stats.Usecase) *StatsHandler { return &StatsHandler{uc: uc} }

func (h *StatsHandler) GetStats(c echo.Context) error {
	snap, err := h.uc.Compute(c.Request().Context())
	if err != nil {
		code, body := translate(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, snap)
}
