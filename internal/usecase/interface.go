package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mini-backoffice/internal/domain"
)

// FixtureRepository defines the interface for fetching the run's input data.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type FixtureRepository interface {
	GetSales(ctx context.Context, path string) ([]domain.SaleRecord, error)
	GetStock(ctx context.Context, path string) ([]domain.StockItem, error)
	GetMovementRequests(ctx context.Context, path string) ([]domain.MovementRequest, error)
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator supplies unique identifiers for stock movements.
type IDGenerator interface {
	NewID() uuid.UUID
}
