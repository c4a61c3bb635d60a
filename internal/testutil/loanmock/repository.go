package loanmock

import (
	"context"
	"errors"

	"microloans-api/internal/domain/loan"
)

// Repo is a func-field mock for loan.Repository. Unset fields fall back to
// harmless defaults so tests only wire what they assert on.
type Repo struct {
	CreateFn  func(ctx context.Context, l *loan.Loan) error
	GetByIDFn func(ctx context.Context, id string) (*loan.Loan, error)
	ListFn    func(ctx context.Context) ([]loan.Loan, error)
}

var _ loan.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *loan.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*loan.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errors.New("loanmock: GetByID not wired")
}

func (m *Repo) List(ctx context.Context) ([]loan.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
