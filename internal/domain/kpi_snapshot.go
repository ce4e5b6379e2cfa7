package domain

import "time"

// KPISnapshot é a fotografia diária dos indicadores executivos sobre o
// período histórico completo. Serve para auditoria e acompanhamento da
// evolução dos KPIs entre cargas de dados; o motor analítico nunca lê
// snapshots de volta, sempre recalcula da base em memória.
type KPISnapshot struct {
	ID          int                `json:"id"`
	Date        time.Time          `json:"date"`
	Revenue     RevenueMetrics     `json:"revenue"`
	MarketShare MarketShareMetrics `json:"market_share"`
	Growth      GrowthRates        `json:"growth"`
	Score       PerformanceScore   `json:"score"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
