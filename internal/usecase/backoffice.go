package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"mini-backoffice/internal/domain"
)

// BackofficeUseCase orchestrates one run of the three calculations.
type BackofficeUseCase struct {
	repo        FixtureRepository
	clock       Clock
	ids         IDGenerator
	commissions *CommissionCalculator
	interest    *InterestCalculator
	logger      *zap.Logger
}

// NewBackofficeUseCase creates a new instance of the usecase.
func NewBackofficeUseCase(repo FixtureRepository, clock Clock, ids IDGenerator, logger *zap.Logger) *BackofficeUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackofficeUseCase{
		repo:        repo,
		clock:       clock,
		ids:         ids,
		commissions: NewCommissionCalculator(),
		interest:    NewInterestCalculator(clock),
		logger:      logger,
	}
}

// Run computes commissions, applies the requested stock movements and
// computes overdue interest. Rejected movements are recorded in the report
// and do not stop the run; input and date errors do.
func (uc *BackofficeUseCase) Run(ctx context.Context, req domain.RunRequest) (*domain.Report, error) {
	// Step 1: Commissions
	sales, err := uc.repo.GetSales(ctx, req.SalesPath)
	if err != nil {
		return nil, fmt.Errorf("could not get sales: %w", err)
	}

	totals := uc.commissions.ComputeCommissions(sales)
	uc.logger.Info("commissions computed",
		zap.Int("sales", len(sales)),
		zap.Int("salespeople", len(totals.Salespeople)))

	// Step 2: Stock movements
	stock, err := uc.repo.GetStock(ctx, req.StockPath)
	if err != nil {
		return nil, fmt.Errorf("could not get stock: %w", err)
	}

	requests, err := uc.repo.GetMovementRequests(ctx, req.MovementsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get movement requests: %w", err)
	}

	ledger := NewInventoryLedger(stock, uc.clock, uc.ids, uc.logger.Named("inventory"))

	report := domain.Report{
		Commissions:     totals.Entries(),
		Movements:       make([]domain.StockMovement, 0, len(requests)),
		FailedMovements: make([]domain.MovementFailure, 0),
	}

	for _, mr := range requests {
		movement, err := ledger.ApplyMovement(mr.ProductCode, mr.QuantityDelta, mr.Description)
		if err != nil {
			if !isRejectedMovement(err) {
				return nil, fmt.Errorf("could not apply movement for product %d: %w", mr.ProductCode, err)
			}
			uc.logger.Warn("stock movement rejected",
				zap.Int("product_code", mr.ProductCode),
				zap.Int("delta", mr.QuantityDelta),
				zap.Error(err))
			report.FailedMovements = append(report.FailedMovements, domain.MovementFailure{
				Request: mr,
				Reason:  err.Error(),
			})
			continue
		}
		report.Movements = append(report.Movements, movement)
	}
	report.ClosingStock = ledger.Items()

	// Step 3: Overdue interest
	result, err := uc.interest.ComputeInterest(req.Interest.Principal, req.Interest.DueDate)
	if err != nil {
		return nil, fmt.Errorf("could not compute interest: %w", err)
	}
	report.Interest = domain.InterestSection{Request: req.Interest, Result: result}

	uc.logger.Info("run completed",
		zap.Int("movements_applied", len(report.Movements)),
		zap.Int("movements_failed", len(report.FailedMovements)),
		zap.Int("days_overdue", result.DaysOverdue))

	return &report, nil
}

// isRejectedMovement reports whether err is a per-movement rejection that
// is recorded in the report rather than aborting the run.
func isRejectedMovement(err error) bool {
	return errors.Is(err, domain.ErrProductNotFound) ||
		errors.Is(err, domain.ErrNegativeStock) ||
		errors.Is(err, domain.ErrQuantityOverflow)
}
