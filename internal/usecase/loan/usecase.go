package loan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"microloans-api/internal/domain/loan"
	"microloans-api/internal/metrics"
	"microloans-api/pkg/id"
)

type Usecase struct {
	repo loan.Repository
	sink metrics.Sink
	log  *zap.Logger
}

func NewUsecase(r loan.Repository, sink metrics.Sink, log *zap.Logger) *Usecase {
	if sink == nil {
		sink = metrics.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, sink: sink, log: log}
}

type CreateLoanInput struct {
	BorrowerID      string          `json:"borrower_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	TermMonths      int             `json:"term_months"`
	InterestRateAPR decimal.Decimal `json:"interest_rate_apr"`
}

type LoanDTO struct {
	ID              string    `json:"id"`
	BorrowerID      string    `json:"borrower_id"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	TermMonths      int       `json:"term_months"`
	InterestRateAPR float64   `json:"interest_rate_apr"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		ID:              l.ID,
		BorrowerID:      l.BorrowerID,
		Amount:          l.Amount.InexactFloat64(),
		Currency:        l.Currency,
		TermMonths:      l.TermMonths,
		InterestRateAPR: l.InterestRateAPR.InexactFloat64(),
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt,
	}
}

// Create validates the input before any store access and persists a new loan
// with a fresh UUID and the pending status. The metrics sink is bumped only
// after the insert succeeds.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	l := &loan.Loan{
		ID:              id.New(),
		BorrowerID:      in.BorrowerID,
		Amount:          in.Amount,
		Currency:        strings.ToUpper(in.Currency),
		TermMonths:      in.TermMonths,
		InterestRateAPR: in.InterestRateAPR,
		Status:          loan.StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	u.sink.LoanCreated()
	u.log.Info("loan created",
		zap.String("loan_id", l.ID),
		zap.String("borrower_id", l.BorrowerID),
		zap.String("currency", l.Currency),
	)
	return toDTO(l), nil
}

func validateCreate(in CreateLoanInput) error {
	if strings.TrimSpace(in.BorrowerID) == "" {
		return fmt.Errorf("%w: borrower_id is required", loan.ErrValidation)
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", loan.ErrValidation)
	}
	if strings.TrimSpace(in.Currency) == "" {
		return fmt.Errorf("%w: currency is required", loan.ErrValidation)
	}
	if in.TermMonths <= 0 {
		return fmt.Errorf("%w: term_months must be greater than zero", loan.ErrValidation)
	}
	if in.InterestRateAPR.IsNegative() {
		return fmt.Errorf("%w: interest_rate_apr must not be negative", loan.ErrValidation)
	}
	return nil
}

// Get rejects malformed identifiers up front; the store is only consulted
// for syntactically valid UUIDs.
func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	if !id.Valid(loanID) {
		return nil, loan.ErrInvalidID
	}
	l, err := u.repo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}
