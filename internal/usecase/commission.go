package usecase

import (
	"github.com/shopspring/decimal"

	"mini-backoffice/internal/domain"
)

var (
	commissionLowerBound = decimal.NewFromInt(100)
	commissionUpperBound = decimal.NewFromInt(500)
	commissionMidRate    = decimal.RequireFromString("0.01")
	commissionTopRate    = decimal.RequireFromString("0.05")
)

// CommissionCalculator reduces sales into per-salesperson commission totals.
type CommissionCalculator struct{}

// NewCommissionCalculator creates a new calculator.
func NewCommissionCalculator() *CommissionCalculator {
	return &CommissionCalculator{}
}

// ComputeCommissions sums the commission of every sale grouped by the exact
// salesperson name. Values are left unrounded.
func (c *CommissionCalculator) ComputeCommissions(sales []domain.SaleRecord) domain.CommissionTotals {
	totals := domain.NewCommissionTotals()

	for _, sale := range sales {
		entry, exists := totals.Totals[sale.Salesperson]
		if !exists {
			entry = &domain.SalespersonCommission{
				Salesperson: sale.Salesperson,
				GrossSales:  decimal.Zero,
				Commission:  decimal.Zero,
			}
			totals.Totals[sale.Salesperson] = entry
			totals.Salespeople = append(totals.Salespeople, sale.Salesperson)
		}

		entry.SalesCount++
		entry.GrossSales = entry.GrossSales.Add(sale.Amount)
		entry.Commission = entry.Commission.Add(CommissionFor(sale.Amount))
	}

	return totals
}

// CommissionFor applies the tier rule to a single sale amount:
// below 100 pays nothing, [100, 500) pays 1%, 500 and above pays 5%.
func CommissionFor(amount decimal.Decimal) decimal.Decimal {
	switch {
	case amount.LessThan(commissionLowerBound):
		return decimal.Zero
	case amount.LessThan(commissionUpperBound):
		return amount.Mul(commissionMidRate)
	default:
		return amount.Mul(commissionTopRate)
	}
}
