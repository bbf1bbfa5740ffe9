package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mini-backoffice/internal/domain"
)

// dailyInterestRate is charged per whole day past the due date (2.5%).
var dailyInterestRate = decimal.RequireFromString("0.025")

// InterestCalculator computes simple daily interest on an overdue amount.
type InterestCalculator struct {
	clock Clock
}

// NewInterestCalculator creates a calculator that takes "today" from clock.
func NewInterestCalculator(clock Clock) *InterestCalculator {
	return &InterestCalculator{clock: clock}
}

// ComputeInterest computes the interest owed today on principal due at dueDate (YYYY-MM-DD).
func (c *InterestCalculator) ComputeInterest(principal decimal.Decimal, dueDate string) (domain.InterestResult, error) {
	return c.ComputeInterestAt(principal, dueDate, c.clock.Now())
}

// ComputeInterestAt computes the interest owed on referenceDate.
// Only calendar dates count; amounts are rounded half-to-even to cents.
func (c *InterestCalculator) ComputeInterestAt(principal decimal.Decimal, dueDate string, referenceDate time.Time) (domain.InterestResult, error) {
	due, err := parseDueDate(dueDate)
	if err != nil {
		return domain.InterestResult{}, err
	}

	days := daysBetween(due, referenceDate)
	if days <= 0 {
		return domain.InterestResult{
			DaysOverdue:    0,
			InterestAmount: decimal.Zero,
			TotalAmount:    principal,
		}, nil
	}

	interest := principal.Mul(dailyInterestRate).Mul(decimal.NewFromInt(int64(days))).RoundBank(2)
	total := principal.Add(interest).RoundBank(2)

	return domain.InterestResult{
		DaysOverdue:    days,
		InterestAmount: interest,
		TotalAmount:    total,
	}, nil
}

func parseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: due date %q, expected YYYY-MM-DD", domain.ErrInvalidDateFormat, value)
}

// daysBetween counts calendar days from one date to another, ignoring time of day.
// Unix seconds are used since time.Duration saturates after about 292 years.
func daysBetween(from, to time.Time) int {
	return int((civilDate(to).Unix() - civilDate(from).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
