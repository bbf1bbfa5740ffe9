package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mini-backoffice/internal/config"
	"mini-backoffice/internal/domain"
	"mini-backoffice/internal/gateway"
	"mini-backoffice/internal/presenter"
	"mini-backoffice/internal/usecase"
	"mini-backoffice/pkg/logger"
)

func main() {
	// Define command-line flags; empty values fall back to the environment.
	envFile := flag.String("env", "", "Path to a .env file (optional)")
	salesFile := flag.String("sales", "", "Path to the sales JSON document (default: embedded sample)")
	stockFile := flag.String("stock", "", "Path to the stock JSON document (default: embedded sample)")
	movementsFile := flag.String("movements", "", "Path to the stock movements JSON document (default: embedded sample)")
	principal := flag.String("principal", "", "Overdue principal amount")
	dueDate := flag.String("due", "", "Due date of the principal (YYYY-MM-DD)")
	format := flag.String("format", "", "Output format: text or json")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *salesFile, *stockFile, *movementsFile, *principal, *dueDate, *format)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	baseLogger := logger.Must(logger.New(cfg.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	principalAmount, _ := cfg.PrincipalAmount() // validated above

	// --- Dependency Injection (Wiring the application) ---
	fixtureRepo := gateway.NewJSONFixtureRepository()
	backoffice := usecase.NewBackofficeUseCase(
		fixtureRepo,
		gateway.SystemClock{},
		gateway.UUIDGenerator{},
		logger.Named(baseLogger, "usecase.backoffice"),
	)

	// --- Execute the Usecase ---
	report, err := backoffice.Run(context.Background(), domain.RunRequest{
		SalesPath:     cfg.Fixtures.SalesFile,
		StockPath:     cfg.Fixtures.StockFile,
		MovementsPath: cfg.Fixtures.MovementsFile,
		Interest: domain.InterestRequest{
			Principal: principalAmount,
			DueDate:   cfg.Interest.DueDate,
		},
	})
	if err != nil {
		baseLogger.Fatal("back-office run failed", zap.Error(err))
	}

	// --- Present the Output ---
	if cfg.OutputFormat == config.FormatJSON {
		decimal.MarshalJSONWithoutQuotes = true
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			baseLogger.Fatal("failed to generate JSON report", zap.Error(err))
		}
		fmt.Println(string(output))
		return
	}

	if err := presenter.WriteText(os.Stdout, report); err != nil {
		baseLogger.Fatal("failed to write report", zap.Error(err))
	}
}

func applyFlags(cfg *config.Config, sales, stock, movements, principal, dueDate, format string) {
	if sales != "" {
		cfg.Fixtures.SalesFile = sales
	}
	if stock != "" {
		cfg.Fixtures.StockFile = stock
	}
	if movements != "" {
		cfg.Fixtures.MovementsFile = movements
	}
	if principal != "" {
		cfg.Interest.Principal = principal
	}
	if dueDate != "" {
		cfg.Interest.DueDate = dueDate
	}
	if format != "" {
		cfg.OutputFormat = format
	}
}
