package stats

import (
	"context"

	"github.com/shopspring/decimal"

	"microloans-api/internal/domain/loan"
)

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

// SnapshotDTO is the wire form of the aggregate. Maps are sparse: only
// statuses and currencies with at least one loan appear, and both serialize
// as {} rather than null when empty.
type SnapshotDTO struct {
	TotalLoans  int64            `json:"total_loans"`
	TotalAmount float64          `json:"total_amount"`
	AvgAmount   float64          `json:"avg_amount"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByCurrency  map[string]int64 `json:"by_currency"`
}

// Compute reads every loan row and folds the aggregate in one pass. Nothing
// is cached; each call sees the table as of that moment.
func (u *Usecase) Compute(ctx context.Context) (*SnapshotDTO, error) {
	ls, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := loan.Stats{
		TotalAmount: decimal.Zero,
		AvgAmount:   decimal.Zero,
		ByStatus:    make(map[loan.Status]int64),
		ByCurrency:  make(map[string]int64),
	}
	for i := range ls {
		snap.TotalLoans++
		snap.TotalAmount = snap.TotalAmount.Add(ls[i].Amount)
		snap.ByStatus[ls[i].Status]++
		snap.ByCurrency[ls[i].Currency]++
	}
	if snap.TotalLoans > 0 {
		snap.AvgAmount = snap.TotalAmount.Div(decimal.NewFromInt(snap.TotalLoans)).Round(2)
	}

	dto := &SnapshotDTO{
		TotalLoans:  snap.TotalLoans,
		TotalAmount: snap.TotalAmount.InexactFloat64(),
		AvgAmount:   snap.AvgAmount.InexactFloat64(),
		ByStatus:    make(map[string]int64, len(snap.ByStatus)),
		ByCurrency:  snap.ByCurrency,
	}
	for s, n := range snap.ByStatus {
		dto.ByStatus[string(s)] = n
	}
	return dto, nil
}
