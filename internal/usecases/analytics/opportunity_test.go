package analytics

import (
	"testing"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroSalesOpportunities_OrdenacaoEAgrupamento(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)

	service := NewService(&stubStore{
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0, 0, 300, 2, 1),
			panelRow(feb, "P1", 0, 0, 200, 3, 1), // soma com janeiro
			panelRow(jan, "P2", 0, 0, 800, 1, 1),
			panelRow(jan, "P3", 0.2, 50, 100, 4, 2), // tem venda própria
		},
	})

	opportunities := service.ZeroSalesOpportunities(nil)

	require.Len(t, opportunities, 2)
	assert.Equal(t, "P2", opportunities[0].ProductID)
	assert.Equal(t, 800.0, opportunities[0].CompetitorSales)
	assert.Equal(t, "P1", opportunities[1].ProductID)
	assert.Equal(t, 500.0, opportunities[1].CompetitorSales)
	assert.Equal(t, 5, opportunities[1].AffectedStores)
}

func TestZeroSalesOpportunities_EmpatePorIDAscendente(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P9", 0, 0, 400, 1, 1),
			panelRow(jan, "P2", 0, 0, 400, 1, 1),
		},
	})

	opportunities := service.ZeroSalesOpportunities(nil)

	require.Len(t, opportunities, 2)
	assert.Equal(t, "P2", opportunities[0].ProductID)
	assert.Equal(t, "P9", opportunities[1].ProductID)
}

func TestParetoClassification(t *testing.T) {
	jan := month(2024, time.January)

	// P1 70%, P2 20% (acumulado 90%), P3 10% (acumulado 100%)
	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 700, 7, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Genéricos", "RJ", 200, 2, 100),
			salesRow(jan, "P3", domain.ChannelApp, "Vitaminas", "MG", 100, 1, 100),
		},
	})

	ranked := service.ParetoClassification(nil)

	require.Len(t, ranked, 3)

	assert.Equal(t, 1, ranked[0].Ranking)
	assert.Equal(t, "P1", ranked[0].ProductID)
	assert.Equal(t, domain.ParetoClassA, ranked[0].Class)

	assert.Equal(t, "P2", ranked[1].ProductID)
	assert.Equal(t, domain.ParetoClassB, ranked[1].Class)

	assert.Equal(t, "P3", ranked[2].ProductID)
	assert.Equal(t, domain.ParetoClassC, ranked[2].Class)

	// Percentual acumulado monotônico não decrescente, fechando em 100
	previous := 0.0
	for _, p := range ranked {
		assert.GreaterOrEqual(t, p.CumulativePct, previous)
		previous = p.CumulativePct
	}
	assert.InDelta(t, 100.0, ranked[len(ranked)-1].CumulativePct, 1e-9)
}

func TestParetoClassification_ReceitaTotalZero(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 0, 0, 0),
		},
	})

	assert.Empty(t, service.ParetoClassification(nil))
}

func TestOpportunityMatrix(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P0", domain.ChannelApp, "Medicamentos", "SP", 1000, 100, 10),
		},
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0, 0, 1000, 2, 1),  // alto impacto, poucas lojas
			panelRow(jan, "P2", 0, 0, 100, 10, 3),  // baixo impacto, muitas lojas
			panelRow(jan, "P3", 0, 0, 500, 10, 3),  // impacto médio, muitas lojas
			panelRow(jan, "P4", 0, 0, 400, 2, 1),   // impacto médio, poucas lojas
		},
	})

	items := service.OpportunityMatrix(nil, 0)

	require.Len(t, items, 4)

	byProduct := make(map[string]domain.OpportunityItem, len(items))
	for _, item := range items {
		byProduct[item.ProductID] = item
	}

	// Acima da média nas duas dimensões
	assert.Equal(t, domain.PriorityQuickWin, byProduct["P1"].Priority)

	// Abaixo da média nas duas dimensões
	assert.Equal(t, domain.PriorityLow, byProduct["P2"].Priority)

	// Potencial de receita: 30% do volume concorrente ao preço médio
	assert.InDelta(t, 1000*10*0.30, byProduct["P1"].RevenuePotential, 1e-9)

	for _, item := range items {
		assert.GreaterOrEqual(t, item.Impact, 0.0)
		assert.LessOrEqual(t, item.Impact, 100.0)
		assert.GreaterOrEqual(t, item.Ease, 0.0)
		assert.LessOrEqual(t, item.Ease, 100.0)
	}
}

func TestOpportunityMatrix_SemOportunidades(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0.3, 50, 100, 2, 1),
		},
	})

	assert.Empty(t, service.OpportunityMatrix(nil, 10))
}

func TestOpportunityMatrix_RespeitaLimite(t *testing.T) {
	jan := month(2024, time.January)

	panel := make([]domain.MarketPanelRecord, 0, 10)
	for i := 0; i < 10; i++ {
		panel = append(panel, panelRow(jan, string(rune('A'+i)), 0, 0, float64(100*(i+1)), i+1, 1))
	}

	service := NewService(&stubStore{panel: panel})

	items := service.OpportunityMatrix(nil, 3)

	require.Len(t, items, 3)
	// O corte acontece depois da ordenação por volume concorrente
	assert.Equal(t, "J", items[0].ProductID)
}
