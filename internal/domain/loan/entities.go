package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusDefaulted Status = "defaulted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusClosed, StatusDefaulted:
		return true
	}
	return false
}

type Loan struct {
	ID              string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	BorrowerID      string          `gorm:"size:64;index:idx_loans_borrower" json:"borrower_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Currency        string          `gorm:"size:3" json:"currency"`
	TermMonths      int             `gorm:"column:term_months" json:"term_months"`
	InterestRateAPR decimal.Decimal `gorm:"type:decimal(6,2);column:interest_rate_apr" json:"interest_rate_apr"`
	Status          Status          `gorm:"type:enum('pending','active','closed','defaulted');default:'pending'" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Loan) TableName() string { return "loans" }

// Stats is the on-demand aggregate over all stored loans. Never persisted;
// every read recomputes it from the table.
type Stats struct {
	TotalLoans  int64
	TotalAmount decimal.Decimal
	AvgAmount   decimal.Decimal
	ByStatus    map[Status]int64
	ByCurrency  map[string]int64
}
