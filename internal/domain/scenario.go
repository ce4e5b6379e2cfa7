package domain

// Scenarios são quatro projeções escalares de receita sobre a mesma base
// filtrada. Cada cenário é um delta hipotético independente contra o
// baseline Current. Eles não se compõem; somar os deltas é uma
// aproximação aditiva que cabe à camada de apresentação, não ao motor.
type Scenarios struct {
	// Current é a receita total do recorte vigente. Deve bater exatamente
	// com RevenueMetrics.TotalRevenue sob o mesmo filtro.
	Current float64 `json:"current"`

	// ReduceZeroSales assume captura de metade do volume concorrente
	// identificado nas vendas zero, ao preço médio atual.
	ReduceZeroSales float64 `json:"reduce_zero_sales"`

	// IncreaseShare modela um ganho fixo de 5 pontos percentuais de share
	// como escala proporcional da receita. Aproximação, não modelo causal.
	IncreaseShare float64 `json:"increase_share"`

	// OptimizeMix assume crescimento adicional de 20% no quintil superior
	// de produtos por receita.
	OptimizeMix float64 `json:"optimize_mix"`

	Available bool `json:"available"`
}

// Forecast é o resultado de uma projeção linear de um passo à frente.
// Value é nil quando a série tem menos de dois pontos.
type Forecast struct {
	Value   *float64 `json:"value"`
	Periods int      `json:"periods"`
}
