package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"mini-backoffice/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

var separator = strings.Repeat("-", 40)

// WriteText renders the report as the human readable console summary.
// Money is shown rounded to cents; the report itself keeps full precision.
func WriteText(w io.Writer, report *domain.Report) error {
	p := &printer{w: w}

	p.line("=== COMMISSIONS BY SALESPERSON ===")
	if len(report.Commissions) == 0 {
		p.line("(no sales)")
	}
	for _, c := range report.Commissions {
		p.line("- %s: %s", c.Salesperson, money(c.Commission))
	}
	p.section()

	p.line("=== STOCK MOVEMENTS ===")
	for _, m := range report.Movements {
		p.line("ID: %s", m.ID)
		p.line("Product: %d", m.ProductCode)
		p.line("Description: %s", m.Description)
		p.line("Quantity: %d (%s)", m.QuantityDelta, strings.ToLower(string(m.Direction())))
		p.line("Resulting stock: %d", m.ResultingQuantity)
		p.line("Date: %s", m.Timestamp.Format(timestampLayout))
		p.line("")
	}
	for _, f := range report.FailedMovements {
		p.line("REJECTED product %d (%+d, %s): %s", f.Request.ProductCode, f.Request.QuantityDelta, f.Request.Description, f.Reason)
	}
	if len(report.FailedMovements) > 0 {
		p.line("")
	}

	p.line("=== CLOSING STOCK ===")
	for _, item := range report.ClosingStock {
		p.line("%d  %-30s %6d", item.ProductCode, item.Description, item.QuantityOnHand)
	}
	p.section()

	r := report.Interest.Result
	p.line("=== OVERDUE INTEREST ===")
	p.line("Principal: %s (due %s)", money(report.Interest.Request.Principal), report.Interest.Request.DueDate)
	p.line("Days overdue: %d", r.DaysOverdue)
	p.line("Interest: %s", money(r.InterestAmount))
	p.line("Updated total: %s", money(r.TotalAmount))

	return p.err
}

// money formats to cents rounding half away from zero. Interest values are
// already rounded half-to-even upstream, so this only affects commissions.
func money(d decimal.Decimal) string {
	return "R$ " + d.StringFixed(2)
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) section() {
	p.line("")
	p.line(separator)
	p.line("")
}
