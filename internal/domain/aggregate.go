package domain

import "time"

// Agregações derivadas da base de vendas. São sempre recalculadas a partir
// dos registros filtrados pelo recorte de datas vigente, nunca persistidas
// entre mudanças de filtro. A propriedade da construção é exclusiva do
// serviço de analytics; consumidores tratam como somente leitura.

// PeriodAggregate é um ponto da série mensal de receita.
type PeriodAggregate struct {
	Period   time.Time `json:"period"`
	Revenue  float64   `json:"revenue"`
	Units    int       `json:"units"`
	AvgPrice float64   `json:"avg_price"`
}

// SharePeriodAggregate é um ponto da série mensal do painel de mercado.
type SharePeriodAggregate struct {
	Period          time.Time `json:"period"`
	AvgShare        float64   `json:"avg_share"`
	OwnSales        float64   `json:"own_sales"`
	CompetitorSales float64   `json:"competitor_sales"`
	Products        int       `json:"products"`
}

// ChannelAggregate agrega a base de vendas por canal (App/Site).
type ChannelAggregate struct {
	Channel    string  `json:"channel"`
	Revenue    float64 `json:"revenue"`
	Units      int     `json:"units"`
	AvgPrice   float64 `json:"avg_price"`
	PctRevenue float64 `json:"pct_revenue"`
}

// CategoryAggregate agrega a base de vendas por categoria (neogrupo).
type CategoryAggregate struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	Units      int     `json:"units"`
	AvgPrice   float64 `json:"avg_price"`
	Products   int     `json:"products"`
	PctRevenue float64 `json:"pct_revenue"`
}

// StateAggregate agrega a base de vendas por estado (UF).
type StateAggregate struct {
	State      string  `json:"state"`
	Revenue    float64 `json:"revenue"`
	Units      int     `json:"units"`
	AvgPrice   float64 `json:"avg_price"`
	PctRevenue float64 `json:"pct_revenue"`
}

// ProductAggregate agrega a base de vendas por produto. AvgPrice é a média
// simples dos preços médios por linha, não ponderada por unidades, mesma
// simplificação da base original.
type ProductAggregate struct {
	ProductID string  `json:"product_id"`
	Revenue   float64 `json:"revenue"`
	Units     int     `json:"units"`
	AvgPrice  float64 `json:"avg_price"`
	Category  string  `json:"category"`
}
