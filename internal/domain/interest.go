package domain

import "github.com/shopspring/decimal"

// InterestRequest is the input of an overdue interest calculation.
type InterestRequest struct {
	Principal decimal.Decimal `json:"principal"`
	DueDate   string          `json:"due_date"` // YYYY-MM-DD
}

// InterestResult is the computed overdue interest for a principal.
type InterestResult struct {
	DaysOverdue    int             `json:"days_overdue"`
	InterestAmount decimal.Decimal `json:"interest_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}
