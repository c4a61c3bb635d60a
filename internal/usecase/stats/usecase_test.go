package stats

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domain "microloans-api/internal/domain/loan"
	"microloans-api/internal/testutil/loanmock"
)

func loanWith(amount float64, currency string, status domain.Status) domain.Loan {
	return domain.Loan{
		Amount:   decimal.NewFromFloat(amount),
		Currency: currency,
		Status:   status,
	}
}

func TestCompute_Empty(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{})

	snap, err := uc.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if snap.TotalLoans != 0 || snap.TotalAmount != 0 || snap.AvgAmount != 0 {
		t.Fatalf("want all-zero totals, got %+v", snap)
	}
	if len(snap.ByStatus) != 0 || len(snap.ByCurrency) != 0 {
		t.Fatalf("want empty maps, got %+v", snap)
	}

	// Empty maps must serialize as {}, not null.
	b, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "null") {
		t.Fatalf("snapshot JSON contains null: %s", b)
	}
}

func TestCompute_Aggregates(t *testing.T) {
	uc := NewUsecase(&loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Loan, error) {
			return []domain.Loan{
				loanWith(5000, "INR", domain.StatusPending),
				loanWith(2500, "INR", domain.StatusActive),
				loanWith(1000, "USD", domain.StatusPending),
			}, nil
		},
	})

	snap, err := uc.Compute(context.Background())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if snap.TotalLoans != 3 {
		t.Errorf("total_loans = %d, want 3", snap.TotalLoans)
	}
	if snap.TotalAmount != 8500 {
		t.Errorf("total_amount = %v, want 8500", snap.TotalAmount)
	}
	if snap.AvgAmount != 2833.33 {
		t.Errorf("avg_amount = %v, want 2833.33", snap.AvgAmount)
	}
	if snap.ByStatus["pending"] != 2 || snap.ByStatus["active"] != 1 {
		t.Errorf("by_status = %v", snap.ByStatus)
	}
	if len(snap.ByStatus) != 2 {
		t.Errorf("by_status has zero-count keys: %v", snap.ByStatus)
	}
	if snap.ByCurrency["INR"] != 2 || snap.ByCurrency["USD"] != 1 || len(snap.ByCurrency) != 2 {
		t.Errorf("by_currency = %v", snap.ByCurrency)
	}
}

func TestCompute_RepoError(t *testing.T) {
	boom := errors.New("store down")
	uc := NewUsecase(&loanmock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Loan, error) { return nil, boom },
	})
	if _, err := uc.Compute(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
