package analytics

import (
	"fmt"
	"math"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

// Thresholds fixos das regras de insight: política de negócio.
const (
	strongGrowthThreshold       = 10.0 // % de crescimento de receita
	revenueDropThreshold        = -5.0 // % de queda de receita
	zeroSalesRateThreshold      = 0.30 // fração de cenários com venda zero
	shareTargetFraction         = 0.40 // meta de market share
	channelDominanceThreshold   = 85.0 // % da receita em um único canal
	stateConcentrationThreshold = 35.0 // % da receita em um único estado
)

// Insights avalia as regras fixas de negócio sobre as métricas já
// calculadas do recorte. Cada regra é independente e dispara no máximo uma
// vez; a ordem de saída é a ordem de avaliação, não a severidade. Função
// pura: sem dados, lista vazia.
func (s *Service) Insights(window *domain.DateWindow) []domain.Insight {
	insights := make([]domain.Insight, 0, 6)

	growth := s.GrowthRates(window, defaultLookbackPeriods)

	if growth.RevenueGrowth > strongGrowthThreshold {
		insights = append(insights, domain.Insight{
			Category: domain.InsightCategoryRevenue,
			Severity: domain.InsightPositive,
			Message: fmt.Sprintf("Crescimento forte de %.1f%% na receita nos últimos meses",
				growth.RevenueGrowth),
		})
	} else if growth.RevenueGrowth < revenueDropThreshold {
		insights = append(insights, domain.Insight{
			Category: domain.InsightCategoryRevenue,
			Severity: domain.InsightNegative,
			Message: fmt.Sprintf("Queda de %.1f%% na receita - requer atenção",
				math.Abs(growth.RevenueGrowth)),
		})
	}

	shareMetrics := s.MarketShareMetrics(window)

	if shareMetrics.Available && shareMetrics.ZeroSalesRate > zeroSalesRateThreshold {
		insights = append(insights, domain.Insight{
			Category: domain.InsightCategoryMarketShare,
			Severity: domain.InsightWarning,
			Message: fmt.Sprintf("%.1f%% das oportunidades têm venda zero - grande potencial de melhoria",
				shareMetrics.ZeroSalesRate*100),
		})
	}

	if shareMetrics.Available && shareMetrics.AvgShare < shareTargetFraction {
		insights = append(insights, domain.Insight{
			Category: domain.InsightCategoryMarketShare,
			Severity: domain.InsightWarning,
			Message: fmt.Sprintf("Market share de %.1f%% abaixo da meta de 40%%",
				shareMetrics.AvgShare*100),
		})
	}

	if channels := s.ChannelPerformance(window); len(channels) > 0 {
		top := channels[0]
		if top.PctRevenue > channelDominanceThreshold {
			insights = append(insights, domain.Insight{
				Category: domain.InsightCategoryChannel,
				Severity: domain.InsightPositive,
				Message: fmt.Sprintf("%s dominando com %.1f%% da receita - estratégia do canal validada",
					top.Channel, top.PctRevenue),
			})
		}
	}

	if categories := s.CategoryPerformance(window); len(categories) > 0 {
		top := categories[0]
		insights = append(insights, domain.Insight{
			Category: domain.InsightCategoryCategory,
			Severity: domain.InsightInfo,
			Message: fmt.Sprintf("%s lidera com %.1f%% da receita",
				top.Category, top.PctRevenue),
		})
	}

	if states := s.StatePerformance(window); len(states) > 0 {
		top := states[0]
		if top.PctRevenue > stateConcentrationThreshold {
			insights = append(insights, domain.Insight{
				Category: domain.InsightCategoryGeography,
				Severity: domain.InsightWarning,
				Message: fmt.Sprintf("%s concentra %.1f%% da receita - risco de concentração",
					top.State, top.PctRevenue),
			})
		}
	}

	return insights
}
