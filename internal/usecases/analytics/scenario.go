package analytics

import (
	"math"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

// Scenarios calcula as quatro projeções de receita sobre o recorte
// vigente. Current é exatamente o TotalRevenue de RevenueMetrics sob o
// mesmo filtro; os demais cenários são deltas hipotéticos independentes
// contra esse baseline.
func (s *Service) Scenarios(window *domain.DateWindow) domain.Scenarios {
	revenue := s.RevenueMetrics(window)
	if !revenue.Available {
		return domain.Scenarios{}
	}

	current := revenue.TotalRevenue

	scenarios := domain.Scenarios{
		Current:         current,
		ReduceZeroSales: current,
		IncreaseShare:   current,
		OptimizeMix:     current,
		Available:       true,
	}

	// Cenário 1: capturar metade do volume concorrente das vendas zero ao
	// preço médio atual
	potentialUnits := 0.0
	for _, o := range s.ZeroSalesOpportunities(window) {
		potentialUnits += o.CompetitorSales
	}
	scenarios.ReduceZeroSales = current + potentialUnits*0.5*revenue.AvgPrice

	// Cenário 2: +5 pontos percentuais de share como escala proporcional
	avgShare := s.MarketShareMetrics(window).AvgShare
	if avgShare > 0 {
		scenarios.IncreaseShare = current * (1 + 0.05/avgShare)
	}

	// Cenário 3: quintil superior de produtos por receita cresce 20%
	topN := 20
	if revenue.UniqueProducts > 0 {
		topN = int(float64(revenue.UniqueProducts) * 0.2)
		if topN < 1 {
			topN = 1
		}
	}

	topRevenue := 0.0
	for _, p := range s.TopProducts(window, topN, TopByRevenue) {
		topRevenue += p.Revenue
	}
	scenarios.OptimizeMix = current + topRevenue*0.2

	return scenarios
}

// ForecastRevenue projeta a receita do próximo mês por regressão linear
// sobre os últimos `lookback` pontos da série. Projeção nula com menos de
// dois pontos; resultado nunca negativo.
func (s *Service) ForecastRevenue(window *domain.DateWindow, lookback int) domain.Forecast {
	if lookback <= 0 {
		lookback = defaultLookbackPeriods
	}

	trend := s.RevenueTrend(window)

	series := make([]float64, 0, len(trend))
	for _, point := range trend {
		series = append(series, point.Revenue)
	}

	forecast := domain.Forecast{Periods: lookback}

	value, ok := linearForecast(series, lookback)
	if !ok {
		return forecast
	}

	value = math.Max(0, value)
	forecast.Value = &value

	return forecast
}

// ForecastShare projeta o market share médio do próximo mês. Além do piso
// em zero, o resultado é limitado a 1 (share é fração).
func (s *Service) ForecastShare(window *domain.DateWindow, lookback int) domain.Forecast {
	if lookback <= 0 {
		lookback = defaultLookbackPeriods
	}

	trend := s.MarketShareTrend(window)

	series := make([]float64, 0, len(trend))
	for _, point := range trend {
		series = append(series, point.AvgShare)
	}

	forecast := domain.Forecast{Periods: lookback}

	value, ok := linearForecast(series, lookback)
	if !ok {
		return forecast
	}

	value = math.Max(0, math.Min(1, value))
	forecast.Value = &value

	return forecast
}

// linearForecast ajusta uma reta por mínimos quadrados aos últimos
// `lookback` pontos da série, indexados pela posição inteira (períodos
// mensais assumidos equidistantes), e avalia na posição seguinte.
// Retorna ok=false com menos de dois pontos.
func linearForecast(series []float64, lookback int) (float64, bool) {
	if len(series) < 2 {
		return 0, false
	}

	if lookback > 0 && lookback < len(series) {
		series = series[len(series)-lookback:]
	}

	if len(series) < 2 {
		return 0, false
	}

	n := float64(len(series))
	var sumX, sumY, sumXY, sumXX float64

	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return 0, false
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	return slope*float64(len(series)) + intercept, true
}
