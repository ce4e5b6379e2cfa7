package domain

// Severidades de insight, na semântica do painel executivo.
const (
	InsightPositive = "positive"
	InsightNegative = "negative"
	InsightWarning  = "warning"
	InsightInfo     = "info"
)

// Categorias fixas dos insights gerados.
const (
	InsightCategoryRevenue     = "Receita"
	InsightCategoryMarketShare = "Market Share"
	InsightCategoryChannel     = "Canal"
	InsightCategoryCategory    = "Categoria"
	InsightCategoryGeography   = "Geografia"
)

// Insight é uma leitura textual de negócio emitida por uma regra de
// threshold fixa. A ordem de emissão segue a ordem de avaliação das
// regras, não a severidade.
type Insight struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
