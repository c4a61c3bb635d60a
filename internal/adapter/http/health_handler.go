package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microloans-api/internal/usecase/health"
)

type HealthHandler struct{ uc *health.Usecase }

func NewHealthHandler(uc *health.Usecase) *HealthHandler { return &HealthHandler{uc: uc} }

func (h *HealthHandler) Health(c echo.Context) error {
	report, ok := h.uc.Check(c.Request().Context())
	code := http.StatusOK
	if !ok {
		code = http.StatusInternalServerError
	}
	return c.JSON(code, report)
}
