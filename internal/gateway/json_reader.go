package gateway

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"mini-backoffice/internal/domain"
)

const (
	defaultSalesFixture     = "fixtures/vendas.json"
	defaultStockFixture     = "fixtures/estoque.json"
	defaultMovementsFixture = "fixtures/movimentacoes.json"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// Wire shapes of the input documents. encoding/json matches field names
// case-insensitively, so "Vendedor" and "vendedor" both decode.
type salesDocument struct {
	Vendas []struct {
		Vendedor string          `json:"vendedor"`
		Valor    decimal.Decimal `json:"valor"`
	} `json:"vendas"`
}

type stockDocument struct {
	Estoque []struct {
		CodigoProduto    int    `json:"codigoProduto"`
		DescricaoProduto string `json:"descricaoProduto"`
		Estoque          int    `json:"estoque"`
	} `json:"estoque"`
}

type movementsDocument struct {
	Movimentacoes []struct {
		CodigoProduto int    `json:"codigoProduto"`
		Quantidade    int    `json:"quantidade"`
		Descricao     string `json:"descricao"`
	} `json:"movimentacoes"`
}

// JSONFixtureRepository implements the FixtureRepository interface for JSON documents.
// An empty path reads the sample fixture embedded in the binary.
type JSONFixtureRepository struct{}

// NewJSONFixtureRepository creates a new repository instance.
func NewJSONFixtureRepository() *JSONFixtureRepository {
	return &JSONFixtureRepository{}
}

// GetSales reads and parses a sales document.
func (r *JSONFixtureRepository) GetSales(ctx context.Context, path string) ([]domain.SaleRecord, error) {
	var doc salesDocument
	source, err := r.decode(ctx, path, defaultSalesFixture, &doc)
	if err != nil {
		return nil, err
	}

	sales := make([]domain.SaleRecord, 0, len(doc.Vendas))
	for i, v := range doc.Vendas {
		if strings.TrimSpace(v.Vendedor) == "" {
			return nil, fmt.Errorf("sale %d in %s has no salesperson", i, source)
		}
		sales = append(sales, domain.SaleRecord{
			Salesperson: v.Vendedor,
			Amount:      v.Valor,
		})
	}
	return sales, nil
}

// GetStock reads and parses a stock document.
// Product codes must be unique and quantities non-negative.
func (r *JSONFixtureRepository) GetStock(ctx context.Context, path string) ([]domain.StockItem, error) {
	var doc stockDocument
	source, err := r.decode(ctx, path, defaultStockFixture, &doc)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(doc.Estoque))
	items := make([]domain.StockItem, 0, len(doc.Estoque))
	for _, e := range doc.Estoque {
		if seen[e.CodigoProduto] {
			return nil, fmt.Errorf("duplicate product code %d in %s", e.CodigoProduto, source)
		}
		if e.Estoque < 0 {
			return nil, fmt.Errorf("product %d in %s: %w", e.CodigoProduto, source, domain.ErrNegativeStock)
		}
		seen[e.CodigoProduto] = true
		items = append(items, domain.StockItem{
			ProductCode:    e.CodigoProduto,
			Description:    e.DescricaoProduto,
			QuantityOnHand: e.Estoque,
		})
	}
	return items, nil
}

// GetMovementRequests reads and parses a movements document.
func (r *JSONFixtureRepository) GetMovementRequests(ctx context.Context, path string) ([]domain.MovementRequest, error) {
	var doc movementsDocument
	if _, err := r.decode(ctx, path, defaultMovementsFixture, &doc); err != nil {
		return nil, err
	}

	requests := make([]domain.MovementRequest, 0, len(doc.Movimentacoes))
	for _, m := range doc.Movimentacoes {
		requests = append(requests, domain.MovementRequest{
			ProductCode:   m.CodigoProduto,
			QuantityDelta: m.Quantidade,
			Description:   m.Descricao,
		})
	}
	return requests, nil
}

// decode loads path (or the embedded fallback) into v and returns the name
// of the source it read, for error messages.
func (r *JSONFixtureRepository) decode(ctx context.Context, path, fallback string, v interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		data   []byte
		err    error
		source = path
	)
	if path == "" {
		source = "embedded:" + fallback
		data, err = embeddedFixtures.ReadFile(fallback)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return source, fmt.Errorf("failed to open fixture %s: %w", source, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return source, fmt.Errorf("could not parse %s: %w", source, err)
	}
	return source, nil
}
