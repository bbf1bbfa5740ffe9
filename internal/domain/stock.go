package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovementDirection classifies a stock movement by the sign of its delta.
type MovementDirection string

const (
	MovementInbound  MovementDirection = "INBOUND"
	MovementOutbound MovementDirection = "OUTBOUND"
	MovementNeutral  MovementDirection = "NEUTRAL"
)

// StockItem is the on-hand quantity of a product.
type StockItem struct {
	ProductCode    int    `json:"product_code"`
	Description    string `json:"description"`
	QuantityOnHand int    `json:"quantity_on_hand"`
}

// StockMovement records one applied change to a product's quantity.
type StockMovement struct {
	ID                uuid.UUID `json:"id"`
	ProductCode       int       `json:"product_code"`
	Description       string    `json:"description"`
	QuantityDelta     int       `json:"quantity_delta"` // positive = inbound, negative = outbound
	ResultingQuantity int       `json:"resulting_quantity"`
	Timestamp         time.Time `json:"timestamp"`
}

// Direction reports whether the movement added, removed or kept stock.
func (m StockMovement) Direction() MovementDirection {
	switch {
	case m.QuantityDelta > 0:
		return MovementInbound
	case m.QuantityDelta < 0:
		return MovementOutbound
	default:
		return MovementNeutral
	}
}

// MovementRequest is a movement asked for by the caller, not yet applied.
type MovementRequest struct {
	ProductCode   int    `json:"product_code"`
	QuantityDelta int    `json:"quantity_delta"`
	Description   string `json:"description"`
}

// MovementFailure is a requested movement the ledger rejected.
type MovementFailure struct {
	Request MovementRequest `json:"request"`
	Reason  string          `json:"reason"`
}
