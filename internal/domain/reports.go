package domain

// RunRequest names the inputs of a single back-office run.
// Empty paths select the embedded sample fixtures.
type RunRequest struct {
	SalesPath     string
	StockPath     string
	MovementsPath string
	Interest      InterestRequest
}

// Report is the top-level structure for the final output.
type Report struct {
	Commissions     []SalespersonCommission `json:"commissions"`
	Movements       []StockMovement         `json:"movements"`
	FailedMovements []MovementFailure       `json:"failed_movements"`
	ClosingStock    []StockItem             `json:"closing_stock"`
	Interest        InterestSection         `json:"interest"`
}

// InterestSection pairs the interest input with its result.
type InterestSection struct {
	Request InterestRequest `json:"request"`
	Result  InterestResult  `json:"result"`
}
