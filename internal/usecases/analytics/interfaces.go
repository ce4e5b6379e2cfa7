package analytics

import (
	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

// DatasetProvider é o contrato com o armazém de dados em memória.
// A implementação real é o dataset.Store injetado no main.
type DatasetProvider interface {
	// Sales retorna a base de preços/vendas completa
	Sales() []domain.SalesRecord

	// Panel retorna o painel de mercado completo
	Panel() []domain.MarketPanelRecord

	// Summary descreve o volume carregado, sem filtro de datas
	Summary() domain.DatasetSummary
}

// Analyzer é a interface completa do núcleo analítico do dashboard.
// Todas as consultas recebem o recorte de datas explicitamente (nil =
// período completo), são funções puras da base filtrada e nunca retornam
// erro: ausência de dados ou histórico insuficiente degrada para
// resultados vazios/neutros.
type Analyzer interface {
	// DatasetSummary descreve as bases carregadas
	DatasetSummary() domain.DatasetSummary

	// RevenueMetrics calcula os KPIs de receita do recorte
	RevenueMetrics(window *domain.DateWindow) domain.RevenueMetrics

	// MarketShareMetrics calcula os KPIs do painel de mercado do recorte
	MarketShareMetrics(window *domain.DateWindow) domain.MarketShareMetrics

	// RevenueTrend retorna a série mensal de receita em ordem cronológica
	RevenueTrend(window *domain.DateWindow) []domain.PeriodAggregate

	// MarketShareTrend retorna a série mensal do painel em ordem cronológica
	MarketShareTrend(window *domain.DateWindow) []domain.SharePeriodAggregate

	// ChannelPerformance agrega a base de vendas por canal
	ChannelPerformance(window *domain.DateWindow) []domain.ChannelAggregate

	// CategoryPerformance agrega a base de vendas por categoria
	CategoryPerformance(window *domain.DateWindow) []domain.CategoryAggregate

	// StatePerformance agrega a base de vendas por estado
	StatePerformance(window *domain.DateWindow) []domain.StateAggregate

	// TopProducts retorna os topN produtos por receita ou unidades
	TopProducts(window *domain.DateWindow, topN int, by string) []domain.ProductAggregate

	// GrowthRates compara o período mais recente com `lookback` períodos atrás
	GrowthRates(window *domain.DateWindow, lookback int) domain.GrowthRates

	// PerformanceScore calcula o score composto de performance
	PerformanceScore(window *domain.DateWindow) domain.PerformanceScore

	// ZeroSalesOpportunities lista produtos sem venda própria ordenados
	// pelo volume concorrente
	ZeroSalesOpportunities(window *domain.DateWindow) []domain.ZeroSalesOpportunity

	// ParetoClassification classifica os produtos na curva ABC por receita
	ParetoClassification(window *domain.DateWindow) []domain.ParetoProduct

	// OpportunityMatrix prioriza oportunidades de venda zero por
	// impacto × facilidade
	OpportunityMatrix(window *domain.DateWindow, limit int) []domain.OpportunityItem

	// ForecastRevenue projeta a receita do próximo período
	ForecastRevenue(window *domain.DateWindow, lookback int) domain.Forecast

	// ForecastShare projeta o market share do próximo período
	ForecastShare(window *domain.DateWindow, lookback int) domain.Forecast

	// Scenarios calcula as projeções de cenários de negócio
	Scenarios(window *domain.DateWindow) domain.Scenarios

	// Insights avalia as regras fixas de negócio sobre as métricas do recorte
	Insights(window *domain.DateWindow) []domain.Insight
}
