package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"microloans-api/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID      string  `json:"borrower_id" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Currency        string  `json:"currency" validate:"required,currency3"`
	TermMonths      int     `json:"term_months" validate:"required,gt=0"`
	InterestRateAPR float64 `json:"interest_rate_apr" validate:"gte=0"`
}

// CreateLoan answers 201 on success. The observed clients accepted either
// 200 or 201 here; 201 is the documented choice.
func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:      req.BorrowerID,
		Amount:          decimal.NewFromFloat(req.Amount),
		Currency:        req.Currency,
		TermMonths:      req.TermMonths,
		InterestRateAPR: decimal.NewFromFloat(req.InterestRateAPR),
	})
	if err != nil {
		code, body := translate(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, body := translate(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		code, body := translate(err)
		return c.JSON(code, body)
	}
	return c.JSON(http.StatusOK, dtos)
}
