package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-backoffice/internal/domain"
)

func TestJSONFixtureRepository_GetSales(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected []domain.SaleRecord
		wantErr  bool
	}{
		{
			name:     "valid sales",
			document: `{"vendas":[{"vendedor":"João Silva","valor":1200.50},{"vendedor":"Ana Lima","valor":75.30}]}`,
			expected: []domain.SaleRecord{
				{Salesperson: "João Silva", Amount: decimal.RequireFromString("1200.50")},
				{Salesperson: "Ana Lima", Amount: decimal.RequireFromString("75.30")},
			},
		},
		{
			name:     "field names are case-insensitive",
			document: `{"Vendas":[{"VENDEDOR":"Maria Souza","Valor":90.75}]}`,
			expected: []domain.SaleRecord{
				{Salesperson: "Maria Souza", Amount: decimal.RequireFromString("90.75")},
			},
		},
		{
			name:     "empty list",
			document: `{"vendas":[]}`,
			expected: []domain.SaleRecord{},
		},
		{
			name:     "missing salesperson",
			document: `{"vendas":[{"valor":10}]}`,
			wantErr:  true,
		},
		{
			name:     "invalid amount",
			document: `{"vendas":[{"vendedor":"João Silva","valor":"abc"}]}`,
			wantErr:  true,
		},
		{
			name:     "malformed document",
			document: `{"vendas":[`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSON(t, tt.document)

			repo := NewJSONFixtureRepository()
			got, err := repo.GetSales(context.Background(), path)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i, want := range tt.expected {
				assert.Equal(t, want.Salesperson, got[i].Salesperson)
				assert.True(t, want.Amount.Equal(got[i].Amount), "amount[%d] = %s, want %s", i, got[i].Amount, want.Amount)
			}
		})
	}
}

func TestJSONFixtureRepository_GetStock(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected []domain.StockItem
		wantErr  error
		anyErr   bool
	}{
		{
			name: "valid stock",
			document: `{"estoque":[
				{"codigoProduto":101,"descricaoProduto":"Caneta Azul","estoque":150},
				{"codigoProduto":102,"descricaoProduto":"Caderno Universitário","estoque":75}]}`,
			expected: []domain.StockItem{
				{ProductCode: 101, Description: "Caneta Azul", QuantityOnHand: 150},
				{ProductCode: 102, Description: "Caderno Universitário", QuantityOnHand: 75},
			},
		},
		{
			name:     "case-insensitive fields",
			document: `{"ESTOQUE":[{"CodigoProduto":7,"DescricaoProduto":"Clips","Estoque":0}]}`,
			expected: []domain.StockItem{
				{ProductCode: 7, Description: "Clips", QuantityOnHand: 0},
			},
		},
		{
			name: "duplicate product code",
			document: `{"estoque":[
				{"codigoProduto":101,"descricaoProduto":"A","estoque":1},
				{"codigoProduto":101,"descricaoProduto":"B","estoque":2}]}`,
			anyErr: true,
		},
		{
			name:     "negative initial stock",
			document: `{"estoque":[{"codigoProduto":101,"descricaoProduto":"A","estoque":-1}]}`,
			wantErr:  domain.ErrNegativeStock,
		},
		{
			name:     "non-integer quantity",
			document: `{"estoque":[{"codigoProduto":101,"descricaoProduto":"A","estoque":1.5}]}`,
			anyErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSON(t, tt.document)

			got, err := NewJSONFixtureRepository().GetStock(context.Background(), path)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.anyErr:
				assert.Error(t, err)
				assert.Nil(t, got)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestJSONFixtureRepository_GetMovementRequests(t *testing.T) {
	path := writeTempJSON(t, `{"movimentacoes":[
		{"codigoProduto":101,"quantidade":-10,"descricao":"out"},
		{"codigoProduto":104,"quantidade":50,"descricao":"in"}]}`)

	got, err := NewJSONFixtureRepository().GetMovementRequests(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []domain.MovementRequest{
		{ProductCode: 101, QuantityDelta: -10, Description: "out"},
		{ProductCode: 104, QuantityDelta: 50, Description: "in"},
	}, got)
}

func TestJSONFixtureRepository_EmbeddedFixtures(t *testing.T) {
	repo := NewJSONFixtureRepository()
	ctx := context.Background()

	sales, err := repo.GetSales(ctx, "")
	require.NoError(t, err)
	assert.Len(t, sales, 36)
	assert.Equal(t, "João Silva", sales[0].Salesperson)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(sales[0].Amount))

	stock, err := repo.GetStock(ctx, "")
	require.NoError(t, err)
	require.Len(t, stock, 5)
	assert.Equal(t, domain.StockItem{ProductCode: 101, Description: "Caneta Azul", QuantityOnHand: 150}, stock[0])

	movements, err := repo.GetMovementRequests(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []domain.MovementRequest{
		{ProductCode: 101, QuantityDelta: -10, Description: "Saída - venda de canetas"},
		{ProductCode: 104, QuantityDelta: 50, Description: "Entrada - reposição de lápis"},
	}, movements)
}

func TestJSONFixtureRepository_FileErrors(t *testing.T) {
	repo := NewJSONFixtureRepository()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.GetSales(context.Background(), "nonexistent_file.json")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := repo.GetStock(context.Background(), writeTempJSON(t, ""))
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := repo.GetMovementRequests(ctx, "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSystemAdapters(t *testing.T) {
	first := UUIDGenerator{}.NewID()
	second := UUIDGenerator{}.NewID()
	assert.NotEqual(t, first, second)

	assert.False(t, SystemClock{}.Now().IsZero())
}

// Helper functions

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create temp JSON file: %v", err)
	}
	return path
}

// Benchmark tests

func BenchmarkGetSales(b *testing.B) {
	repo := NewJSONFixtureRepository()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.GetSales(ctx, ""); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
