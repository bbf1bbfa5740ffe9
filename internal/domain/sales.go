package domain

import "github.com/shopspring/decimal"

// SaleRecord is a single sale attributed to a salesperson.
type SaleRecord struct {
	Salesperson string          `json:"salesperson"`
	Amount      decimal.Decimal `json:"amount"`
}

// SalespersonCommission is the accumulated commission of one salesperson.
type SalespersonCommission struct {
	Salesperson string          `json:"salesperson"`
	SalesCount  int             `json:"sales_count"`
	GrossSales  decimal.Decimal `json:"gross_sales"`
	Commission  decimal.Decimal `json:"commission"`
}

// CommissionTotals maps a salesperson name to the accumulated commission.
// Salespeople keeps the order in which names were first seen.
type CommissionTotals struct {
	Salespeople []string
	Totals      map[string]*SalespersonCommission
}

// NewCommissionTotals returns an empty, ready to use CommissionTotals.
func NewCommissionTotals() CommissionTotals {
	return CommissionTotals{
		Salespeople: make([]string, 0),
		Totals:      make(map[string]*SalespersonCommission),
	}
}

// Commission returns the accumulated commission for salesperson, or zero when unknown.
func (c CommissionTotals) Commission(salesperson string) decimal.Decimal {
	if entry, ok := c.Totals[salesperson]; ok {
		return entry.Commission
	}
	return decimal.Zero
}

// Entries flattens the totals in first-seen order.
func (c CommissionTotals) Entries() []SalespersonCommission {
	entries := make([]SalespersonCommission, 0, len(c.Salespeople))
	for _, name := range c.Salespeople {
		entries = append(entries, *c.Totals[name])
	}
	return entries
}
