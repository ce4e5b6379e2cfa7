package analytics

import (
	"testing"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore implementa DatasetProvider com bases fixas em memória.
type stubStore struct {
	sales []domain.SalesRecord
	panel []domain.MarketPanelRecord
}

func (s *stubStore) Sales() []domain.SalesRecord       { return s.sales }
func (s *stubStore) Panel() []domain.MarketPanelRecord { return s.panel }

func (s *stubStore) Summary() domain.DatasetSummary {
	return domain.DatasetSummary{
		SalesRecords: len(s.sales),
		PanelRecords: len(s.panel),
		SalesLoaded:  len(s.sales) > 0,
		PanelLoaded:  len(s.panel) > 0,
	}
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func salesRow(period time.Time, product, channel, category, state string, revenue float64, units int, price float64) domain.SalesRecord {
	return domain.SalesRecord{
		Period:       period,
		ProductID:    product,
		Channel:      channel,
		Category:     category,
		State:        state,
		Revenue:      revenue,
		UnitsSold:    units,
		AvgUnitPrice: price,
	}
}

func panelRow(period time.Time, product string, share, own, comp float64, stores, bricks int) domain.MarketPanelRecord {
	return domain.MarketPanelRecord{
		Period:          period,
		PeriodCode:      period.Year()*100 + int(period.Month()),
		ProductID:       product,
		Share:           share,
		OwnSales:        own,
		CompetitorSales: comp,
		StoreCount:      stores,
		BrickCount:      bricks,
	}
}

func TestRevenueMetrics(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 10, 10),
			salesRow(jan, "P2", domain.ChannelSite, "Dermocosméticos", "RJ", 300, 10, 30),
			salesRow(feb, "P1", domain.ChannelApp, "Medicamentos", "SP", 200, 10, 20),
		},
	})

	metrics := service.RevenueMetrics(nil)

	assert.True(t, metrics.Available)
	assert.Equal(t, 600.0, metrics.TotalRevenue)
	assert.Equal(t, 30, metrics.TotalUnits)
	assert.Equal(t, 20.0, metrics.AvgPrice) // média simples dos preços por linha
	assert.Equal(t, 2, metrics.UniqueProducts)
	assert.Equal(t, 3, metrics.RecordCount)
}

func TestRevenueMetrics_BaseVazia(t *testing.T) {
	service := NewService(&stubStore{})

	metrics := service.RevenueMetrics(nil)

	assert.False(t, metrics.Available)
	assert.Zero(t, metrics.TotalRevenue)
	assert.Zero(t, metrics.RecordCount)
}

func TestRevenueMetrics_RecorteDeDatas(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)
	mar := month(2024, time.March)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 10, 10),
			salesRow(feb, "P1", domain.ChannelApp, "Medicamentos", "SP", 200, 10, 20),
			salesRow(mar, "P1", domain.ChannelApp, "Medicamentos", "SP", 400, 10, 40),
		},
	})

	window, err := domain.NewDateWindow(feb, mar)
	require.NoError(t, err)

	metrics := service.RevenueMetrics(window)

	assert.Equal(t, 600.0, metrics.TotalRevenue) // pontas inclusivas
	assert.Equal(t, 2, metrics.RecordCount)
}

func TestNewDateWindow_IntervaloInvalido(t *testing.T) {
	_, err := domain.NewDateWindow(month(2024, time.March), month(2024, time.January))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestMarketShareMetrics(t *testing.T) {
	jan := month(2024, time.January)

	rows := []domain.MarketPanelRecord{
		panelRow(jan, "P1", 0.30, 0, 500, 2, 1),
		panelRow(jan, "P2", 0.50, 10, 100, 3, 2),
	}

	service := NewService(&stubStore{panel: rows})

	metrics := service.MarketShareMetrics(nil)

	assert.True(t, metrics.Available)
	assert.InDelta(t, 0.40, metrics.AvgShare, 1e-9)
	assert.Equal(t, 10.0, metrics.TotalOwnSales)
	assert.Equal(t, 600.0, metrics.TotalCompetitorSales)
	assert.Equal(t, 0.5, metrics.ZeroSalesRate)
	assert.Equal(t, 2, metrics.UniqueProducts)
	assert.Equal(t, 5, metrics.StoreCount)
	assert.Equal(t, 3, metrics.BrickCount)
}

func TestMarketShareMetrics_TaxaInvarianteAOrdem(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)

	rows := []domain.MarketPanelRecord{
		panelRow(jan, "P1", 0.30, 0, 500, 2, 1),
		panelRow(jan, "P2", 0.50, 10, 100, 3, 2),
		panelRow(feb, "P1", 0.20, 0, 300, 2, 1),
		panelRow(feb, "P2", 0.55, 12, 90, 3, 2),
	}

	reversed := make([]domain.MarketPanelRecord, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}

	direct := NewService(&stubStore{panel: rows}).MarketShareMetrics(nil)
	inverted := NewService(&stubStore{panel: reversed}).MarketShareMetrics(nil)

	assert.Equal(t, direct.ZeroSalesRate, inverted.ZeroSalesRate)
	assert.GreaterOrEqual(t, direct.ZeroSalesRate, 0.0)
	assert.LessOrEqual(t, direct.ZeroSalesRate, 1.0)
}

func TestRevenueTrend_OrdemCronologica(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)
	mar := month(2024, time.March)

	// Entrada fora de ordem de propósito
	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(mar, "P1", domain.ChannelApp, "Medicamentos", "SP", 300, 3, 100),
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
			salesRow(feb, "P1", domain.ChannelApp, "Medicamentos", "SP", 200, 2, 100),
			salesRow(feb, "P2", domain.ChannelSite, "Genéricos", "RJ", 50, 1, 50),
		},
	})

	trend := service.RevenueTrend(nil)

	require.Len(t, trend, 3)
	assert.Equal(t, jan, trend[0].Period)
	assert.Equal(t, feb, trend[1].Period)
	assert.Equal(t, mar, trend[2].Period)
	assert.Equal(t, 250.0, trend[1].Revenue)
	assert.Equal(t, 3, trend[1].Units)
	assert.Equal(t, 75.0, trend[1].AvgPrice)
}

func TestChannelPerformance_PercentuaisSomamCem(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 700, 7, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Genéricos", "RJ", 200, 2, 100),
			salesRow(jan, "P3", domain.ChannelApp, "Vitaminas", "MG", 100, 1, 100),
		},
	})

	channels := service.ChannelPerformance(nil)

	require.Len(t, channels, 2)
	assert.Equal(t, domain.ChannelApp, channels[0].Channel) // maior receita primeiro
	assert.Equal(t, 800.0, channels[0].Revenue)

	sum := 0.0
	for _, c := range channels {
		sum += c.PctRevenue
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestCategoryPerformance_PercentuaisSomamCem(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 500, 5, 100),
			salesRow(jan, "P2", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
			salesRow(jan, "P3", domain.ChannelSite, "Vitaminas", "RJ", 400, 4, 100),
		},
	})

	categories := service.CategoryPerformance(nil)

	require.Len(t, categories, 2)
	assert.Equal(t, "Medicamentos", categories[0].Category)
	assert.Equal(t, 2, categories[0].Products)

	sum := 0.0
	for _, c := range categories {
		sum += c.PctRevenue
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestStatePerformance_PercentuaisSomamCem(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 600, 6, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Genéricos", "RJ", 250, 2, 125),
			salesRow(jan, "P3", domain.ChannelApp, "Vitaminas", "MG", 150, 1, 150),
		},
	})

	states := service.StatePerformance(nil)

	require.Len(t, states, 3)
	assert.Equal(t, "SP", states[0].State)

	sum := 0.0
	for _, s := range states {
		sum += s.PctRevenue
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestTopProducts(t *testing.T) {
	jan := month(2024, time.January)

	store := &stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 500, 5, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Genéricos", "RJ", 300, 30, 10),
			salesRow(jan, "P3", domain.ChannelApp, "Vitaminas", "MG", 200, 2, 100),
		},
	}
	service := NewService(store)

	tests := []struct {
		name     string
		topN     int
		by       string
		expected []string
	}{
		{
			name:     "Por receita, lista completa",
			topN:     10,
			by:       TopByRevenue,
			expected: []string{"P1", "P2", "P3"},
		},
		{
			name:     "Por unidades, truncado em dois",
			topN:     2,
			by:       TopByUnits,
			expected: []string{"P2", "P1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := service.TopProducts(nil, tt.topN, tt.by)

			require.Len(t, products, len(tt.expected))
			for i, id := range tt.expected {
				assert.Equal(t, id, products[i].ProductID)
			}
		})
	}
}

func TestTopProducts_EmpatePorIDAscendente(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P9", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
		},
	})

	products := service.TopProducts(nil, 2, TopByRevenue)

	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].ProductID)
	assert.Equal(t, "P9", products[1].ProductID)
}

func TestGrowthRates_DoisMeses(t *testing.T) {
	jan := month(2024, time.January)
	feb := month(2024, time.February)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
			salesRow(feb, "P1", domain.ChannelApp, "Medicamentos", "SP", 150, 1, 150),
		},
	})

	rates := service.GrowthRates(nil, 1)

	assert.InDelta(t, 50.0, rates.RevenueGrowth, 1e-9)
	assert.Zero(t, rates.ShareGrowth) // sem painel carregado
}

func TestZeroSalesOpportunities_CenarioMinimo(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0.0, 0, 500, 2, 1),
			panelRow(jan, "P2", 0.1, 10, 90, 3, 2),
		},
	})

	opportunities := service.ZeroSalesOpportunities(nil)

	require.Len(t, opportunities, 1)
	assert.Equal(t, "P1", opportunities[0].ProductID)
	assert.Equal(t, 500.0, opportunities[0].CompetitorSales)
	assert.Equal(t, 2, opportunities[0].AffectedStores)

	metrics := service.MarketShareMetrics(nil)
	assert.Equal(t, 0.5, metrics.ZeroSalesRate)
}

func TestDatasetSummary(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
		},
	})

	summary := service.DatasetSummary()

	assert.True(t, summary.SalesLoaded)
	assert.False(t, summary.PanelLoaded)
	assert.Equal(t, 1, summary.SalesRecords)
}
