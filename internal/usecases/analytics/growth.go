package analytics

import (
	"math"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

// Pesos fixos do score de performance: política de negócio, não
// parâmetros ajustáveis.
var scoreWeights = map[string]float64{
	"revenue_growth":           0.25,
	"share_performance":        0.25,
	"zero_sales":               0.20,
	"price_optimization":       0.15,
	"geographic_concentration": 0.15,
}

// GrowthRates compara o agregado do período mais recente com o de
// `lookback` períodos atrás, em percentual. Retorna zeros quando existem
// menos de lookback+1 períodos distintos ou quando a base de comparação é
// zero; nunca divide por zero.
func (s *Service) GrowthRates(window *domain.DateWindow, lookback int) domain.GrowthRates {
	if lookback <= 0 {
		lookback = defaultLookbackPeriods
	}

	rates := domain.GrowthRates{}

	revenueTrend := s.RevenueTrend(window)
	if len(revenueTrend) >= lookback+1 {
		current := revenueTrend[len(revenueTrend)-1].Revenue
		previous := revenueTrend[len(revenueTrend)-1-lookback].Revenue
		if previous > 0 {
			rates.RevenueGrowth = (current - previous) / previous * 100
		}
	}

	shareTrend := s.MarketShareTrend(window)
	if len(shareTrend) >= lookback+1 {
		current := shareTrend[len(shareTrend)-1].AvgShare
		previous := shareTrend[len(shareTrend)-1-lookback].AvgShare
		if previous > 0 {
			rates.ShareGrowth = (current - previous) / previous * 100
		}
	}

	return rates
}

// PerformanceScore calcula o composto ponderado de cinco sinais:
// crescimento de receita normalizado na faixa [-10%, +20%], share médio
// contra a meta de 40%, taxa de venda zero invertida, variação de preço e
// concentração geográfica dos três maiores estados contra a referência de
// 50%. Régua heurística de negócio, não modelo estatístico.
func (s *Service) PerformanceScore(window *domain.DateWindow) domain.PerformanceScore {
	revenue := s.RevenueMetrics(window)
	if !revenue.Available {
		return domain.PerformanceScore{
			ComponentScores: map[string]float64{},
			Weights:         scoreWeights,
			Status:          domain.ScoreStatusCritical,
		}
	}

	growth := s.GrowthRates(window, defaultLookbackPeriods)
	shareMetrics := s.MarketShareMetrics(window)

	scores := make(map[string]float64, len(scoreWeights))

	// Crescimento de receita: faixa [-10%, +20%] mapeada para [0, 100]
	scores["revenue_growth"] = clamp((growth.RevenueGrowth+10)/30*100, 0, 100)

	// Share contra a meta de 40% (em pontos percentuais)
	scores["share_performance"] = shareMetrics.AvgShare * 100 / 40 * 100

	// Venda zero: quanto menor a taxa, melhor
	scores["zero_sales"] = math.Max(0, 100-shareMetrics.ZeroSalesRate*100*2)

	// Variação de preço entre as pontas do recorte
	scores["price_optimization"] = math.Max(0, 100-math.Abs(s.priceVariation(window)))

	// Concentração dos três maiores estados contra a referência de 50%
	scores["geographic_concentration"] = math.Max(0, 100-(s.topStatesConcentration(window, 3)-50))

	total := 0.0
	for component, weight := range scoreWeights {
		total += scores[component] * weight
	}
	total = math.Round(total*10) / 10

	return domain.PerformanceScore{
		TotalScore:      total,
		Status:          scoreStatus(total),
		ComponentScores: scores,
		Weights:         scoreWeights,
		Available:       true,
	}
}

// priceVariation é a variação percentual do preço médio entre o primeiro e
// o último período do recorte.
func (s *Service) priceVariation(window *domain.DateWindow) float64 {
	trend := s.RevenueTrend(window)
	if len(trend) < 2 {
		return 0
	}

	first := trend[0].AvgPrice
	last := trend[len(trend)-1].AvgPrice
	if first == 0 {
		return 0
	}

	return (last - first) / first * 100
}

// topStatesConcentration soma o percentual de receita dos n maiores estados.
func (s *Service) topStatesConcentration(window *domain.DateWindow, n int) float64 {
	states := s.StatePerformance(window)
	if len(states) < n {
		n = len(states)
	}

	concentration := 0.0
	for _, state := range states[:n] {
		concentration += state.PctRevenue
	}

	return concentration
}

// scoreStatus traduz o score nas faixas fixas do painel.
func scoreStatus(total float64) string {
	switch {
	case total >= 80:
		return domain.ScoreStatusExcellent
	case total >= 60:
		return domain.ScoreStatusGood
	case total >= 40:
		return domain.ScoreStatusAttention
	default:
		return domain.ScoreStatusCritical
	}
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
