package domain

import "time"

// Resultados de métricas carregam um campo Available explícito em vez de
// sinalizar ausência de dados por omissão de chaves: quando a base filtrada
// está vazia o resultado volta zerado com Available=false e o consumidor
// decide como renderizar "sem dados".

// RevenueMetrics são os KPIs de receita sobre a base de vendas filtrada.
type RevenueMetrics struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalUnits     int     `json:"total_units"`
	AvgPrice       float64 `json:"avg_price"`
	UniqueProducts int     `json:"unique_products"`
	RecordCount    int     `json:"record_count"`
	Available      bool    `json:"available"`
}

// MarketShareMetrics são os KPIs sobre o painel de mercado filtrado.
// ZeroSalesRate é a fração de linhas (produto × período) com venda própria
// zero: taxa por cenário, não ponderada por receita. StoreCount e
// BrickCount herdam a aproximação de contagem da carga por partição.
type MarketShareMetrics struct {
	AvgShare             float64 `json:"avg_share"`
	TotalOwnSales        float64 `json:"total_own_sales"`
	TotalCompetitorSales float64 `json:"total_competitor_sales"`
	ZeroSalesRate        float64 `json:"zero_sales_rate"`
	UniqueProducts       int     `json:"unique_products"`
	StoreCount           int     `json:"store_count"`
	BrickCount           int     `json:"brick_count"`
	Available            bool    `json:"available"`
}

// GrowthRates compara o período mais recente com o de `lookback` períodos
// atrás, em percentual. Zeros quando não há histórico suficiente.
type GrowthRates struct {
	RevenueGrowth float64 `json:"revenue_growth"`
	ShareGrowth   float64 `json:"share_growth"`
}

// Status do score de performance, derivado das faixas fixas do negócio.
const (
	ScoreStatusExcellent = "excellent"
	ScoreStatusGood      = "good"
	ScoreStatusAttention = "attention"
	ScoreStatusCritical  = "critical"
)

// PerformanceScore é o composto ponderado de cinco sinais. Os pesos e as
// faixas de normalização são política fixa de negócio, não parâmetros.
type PerformanceScore struct {
	TotalScore      float64            `json:"total_score"`
	Status          string             `json:"status"`
	ComponentScores map[string]float64 `json:"component_scores"`
	Weights         map[string]float64 `json:"weights"`
	Available       bool               `json:"available"`
}

// ZeroSalesOpportunity é um produto sem venda própria com volume
// concorrente capturável.
type ZeroSalesOpportunity struct {
	ProductID       string  `json:"product_id"`
	CompetitorSales float64 `json:"competitor_sales"`
	AffectedStores  int     `json:"affected_stores"`
}

// Classes da curva ABC.
const (
	ParetoClassA = "A"
	ParetoClassB = "B"
	ParetoClassC = "C"
)

// ParetoProduct é uma linha da classificação ABC por receita: ranking
// decrescente, percentual acumulado e classe (A ≤ 80%, B ≤ 95%, C acima).
type ParetoProduct struct {
	Ranking       int     `json:"ranking"`
	ProductID     string  `json:"product_id"`
	Revenue       float64 `json:"revenue"`
	CumulativePct float64 `json:"cumulative_pct"`
	Class         string  `json:"class"`
}

// Prioridades da matriz impacto × facilidade.
const (
	PriorityQuickWin     = "quick_win"
	PriorityMajorProject = "major_project"
	PriorityFillIn       = "fill_in"
	PriorityLow          = "low"
)

// OpportunityItem é uma oportunidade de venda zero posicionada na matriz de
// priorização: impacto pelo volume concorrente, facilidade pelo número de
// lojas afetadas (menos lojas, mais fácil de capturar).
type OpportunityItem struct {
	ProductID        string  `json:"product_id"`
	CompetitorSales  float64 `json:"competitor_sales"`
	AffectedStores   int     `json:"affected_stores"`
	Impact           float64 `json:"impact"`
	Ease             float64 `json:"ease"`
	Priority         string  `json:"priority"`
	RevenuePotential float64 `json:"revenue_potential"`
}

// DatasetSummary descreve o volume carregado em memória, a única leitura
// permitida da base sem filtro de datas.
type DatasetSummary struct {
	SalesRecords int        `json:"sales_records"`
	SalesPeriods int        `json:"sales_periods"`
	PanelRecords int        `json:"panel_records"`
	PanelPeriods int        `json:"panel_periods"`
	FirstPeriod  *time.Time `json:"first_period,omitempty"`
	LastPeriod   *time.Time `json:"last_period,omitempty"`
	SalesLoaded  bool       `json:"sales_loaded"`
	PanelLoaded  bool       `json:"panel_loaded"`
}
