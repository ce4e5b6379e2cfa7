package analytics

import (
	"testing"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findInsight(insights []domain.Insight, category, severity string) *domain.Insight {
	for i := range insights {
		if insights[i].Category == category && insights[i].Severity == severity {
			return &insights[i]
		}
	}
	return nil
}

func TestInsights_BaseVazia(t *testing.T) {
	service := NewService(&stubStore{})

	assert.Empty(t, service.Insights(nil))
}

func TestInsights_CrescimentoForte(t *testing.T) {
	// +50% contra três períodos atrás dispara o insight positivo
	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(month(2024, time.January), "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
			salesRow(month(2024, time.February), "P1", domain.ChannelApp, "Medicamentos", "SP", 110, 1, 110),
			salesRow(month(2024, time.March), "P1", domain.ChannelApp, "Medicamentos", "SP", 120, 1, 120),
			salesRow(month(2024, time.April), "P1", domain.ChannelApp, "Medicamentos", "SP", 150, 1, 150),
		},
	})

	insights := service.Insights(nil)

	insight := findInsight(insights, domain.InsightCategoryRevenue, domain.InsightPositive)
	require.NotNil(t, insight)
	assert.Contains(t, insight.Message, "Crescimento forte de 50.0%")
}

func TestInsights_QuedaDeReceita(t *testing.T) {
	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(month(2024, time.January), "P1", domain.ChannelApp, "Medicamentos", "SP", 200, 2, 100),
			salesRow(month(2024, time.February), "P1", domain.ChannelApp, "Medicamentos", "SP", 190, 2, 95),
			salesRow(month(2024, time.March), "P1", domain.ChannelApp, "Medicamentos", "SP", 180, 2, 90),
			salesRow(month(2024, time.April), "P1", domain.ChannelApp, "Medicamentos", "SP", 100, 1, 100),
		},
	})

	insights := service.Insights(nil)

	insight := findInsight(insights, domain.InsightCategoryRevenue, domain.InsightNegative)
	require.NotNil(t, insight)
	assert.Contains(t, insight.Message, "Queda de 50.0%")
}

func TestInsights_VendaZeroEShareAbaixoDaMeta(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0, 0, 500, 2, 1),
			panelRow(jan, "P2", 0.30, 10, 90, 3, 2),
		},
	})

	insights := service.Insights(nil)

	warnings := make([]domain.Insight, 0, 2)
	for _, insight := range insights {
		if insight.Category == domain.InsightCategoryMarketShare {
			warnings = append(warnings, insight)
		}
	}

	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0].Message, "50.0% das oportunidades têm venda zero")
	assert.Contains(t, warnings[1].Message, "Market share de 15.0% abaixo da meta de 40%")
}

func TestInsights_DominanciaDeCanal(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 900, 9, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Genéricos", "RJ", 100, 1, 100),
		},
	})

	insights := service.Insights(nil)

	insight := findInsight(insights, domain.InsightCategoryChannel, domain.InsightPositive)
	require.NotNil(t, insight)
	assert.Contains(t, insight.Message, "App dominando com 90.0% da receita")
}

func TestInsights_CategoriaLiderEConcentracaoGeografica(t *testing.T) {
	jan := month(2024, time.January)

	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 600, 6, 100),
			salesRow(jan, "P2", domain.ChannelApp, "Vitaminas", "RJ", 400, 4, 100),
		},
	})

	insights := service.Insights(nil)

	category := findInsight(insights, domain.InsightCategoryCategory, domain.InsightInfo)
	require.NotNil(t, category)
	assert.Contains(t, category.Message, "Medicamentos lidera com 60.0% da receita")

	geography := findInsight(insights, domain.InsightCategoryGeography, domain.InsightWarning)
	require.NotNil(t, geography)
	assert.Contains(t, geography.Message, "SP concentra 60.0% da receita")
}

func TestInsights_SemDisparosIndevidos(t *testing.T) {
	jan := month(2024, time.January)

	// Receita estável, share na meta, sem venda zero, canal e geografia
	// equilibrados: só o insight informativo de categoria dispara
	service := NewService(&stubStore{
		sales: []domain.SalesRecord{
			salesRow(jan, "P1", domain.ChannelApp, "Medicamentos", "SP", 350, 3, 100),
			salesRow(jan, "P2", domain.ChannelSite, "Vitaminas", "RJ", 330, 3, 110),
			salesRow(jan, "P3", domain.ChannelApp, "Genéricos", "MG", 320, 3, 105),
		},
		panel: []domain.MarketPanelRecord{
			panelRow(jan, "P1", 0.45, 10, 90, 2, 1),
		},
	})

	insights := service.Insights(nil)

	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightCategoryCategory, insights[0].Category)
	assert.Equal(t, domain.InsightInfo, insights[0].Severity)
}
