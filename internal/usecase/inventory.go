package usecase

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"go.uber.org/zap"

	"mini-backoffice/internal/domain"
)

// InventoryLedger owns the stock items it was built from and applies
// signed quantity movements to them.
type InventoryLedger struct {
	mu     sync.Mutex
	items  map[int]*domain.StockItem
	clock  Clock
	ids    IDGenerator
	logger *zap.Logger
}

// NewInventoryLedger indexes a private copy of items by product code.
// A later item with the same code replaces an earlier one.
func NewInventoryLedger(items []domain.StockItem, clock Clock, ids IDGenerator, logger *zap.Logger) *InventoryLedger {
	if logger == nil {
		logger = zap.NewNop()
	}

	index := make(map[int]*domain.StockItem, len(items))
	for _, item := range items {
		item := item
		index[item.ProductCode] = &item
	}

	return &InventoryLedger{
		items:  index,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

// ApplyMovement adds quantityDelta to the product's on-hand quantity.
// Positive deltas are inbound, negative deltas outbound, zero is a recorded no-op.
// The item is left untouched when the product is unknown or the result would
// be negative or overflow.
func (l *InventoryLedger) ApplyMovement(productCode, quantityDelta int, description string) (domain.StockMovement, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productCode]
	if !ok {
		return domain.StockMovement{}, fmt.Errorf("%w: code %d", domain.ErrProductNotFound, productCode)
	}

	if quantityDelta > 0 && item.QuantityOnHand > math.MaxInt-quantityDelta {
		return domain.StockMovement{}, fmt.Errorf("%w: product %d has %d, movement %d",
			domain.ErrQuantityOverflow, productCode, item.QuantityOnHand, quantityDelta)
	}

	resulting := item.QuantityOnHand + quantityDelta
	if resulting < 0 {
		return domain.StockMovement{}, fmt.Errorf("%w: product %d has %d, movement %d",
			domain.ErrNegativeStock, productCode, item.QuantityOnHand, quantityDelta)
	}

	item.QuantityOnHand = resulting

	movement := domain.StockMovement{
		ID:                l.ids.NewID(),
		ProductCode:       productCode,
		Description:       description,
		QuantityDelta:     quantityDelta,
		ResultingQuantity: resulting,
		Timestamp:         l.clock.Now(),
	}

	l.logger.Debug("stock movement applied",
		zap.Stringer("id", movement.ID),
		zap.Int("product_code", productCode),
		zap.Int("delta", quantityDelta),
		zap.Int("resulting", resulting))

	return movement, nil
}

// Item returns a copy of the stock item for productCode.
func (l *InventoryLedger) Item(productCode int) (domain.StockItem, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[productCode]
	if !ok {
		return domain.StockItem{}, false
	}
	return *item, true
}

// Items returns copies of all stock items ordered by product code.
func (l *InventoryLedger) Items() []domain.StockItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]domain.StockItem, 0, len(l.items))
	for _, item := range l.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductCode < items[j].ProductCode })
	return items
}
