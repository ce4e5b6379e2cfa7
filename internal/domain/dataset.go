package domain

import (
	"fmt"
	"time"
)

// Canais de venda presentes na base de preços
const (
	ChannelApp  = "App"
	ChannelSite = "Site"
)

// SalesRecord representa uma linha da base interna de preços/vendas:
// produto × mês × canal × categoria × estado.
// A relação Revenue ≈ UnitsSold × AvgUnitPrice é assumida pela base,
// não validada aqui.
type SalesRecord struct {
	Period       time.Time `json:"period"`
	ProductID    string    `json:"product_id"`
	Channel      string    `json:"channel"`
	Category     string    `json:"category"`
	State        string    `json:"state"`
	Revenue      float64   `json:"revenue"`
	UnitsSold    int       `json:"units_sold"`
	AvgUnitPrice float64   `json:"avg_unit_price"`
}

// MarketPanelRecord representa uma linha do painel de mercado já
// pré-agregada por (período, produto) durante a carga das partições.
// StoreCount e BrickCount são somas de contagens distintas por partição,
// uma aproximação da contagem distinta global (ver dataset loader).
// Share é sempre uma fração em [0, 1]; a normalização acontece na carga.
type MarketPanelRecord struct {
	Period          time.Time `json:"period"`
	PeriodCode      int       `json:"period_code"`
	ProductID       string    `json:"product_id"`
	Share           float64   `json:"share"`
	OwnSales        float64   `json:"own_sales"`
	CompetitorSales float64   `json:"competitor_sales"`
	StoreCount      int       `json:"store_count"`
	BrickCount      int       `json:"brick_count"`
}

// IsZeroSales indica um cenário de venda zero: nenhuma venda própria no
// período enquanto concorrentes podem ter vendido.
func (r MarketPanelRecord) IsZeroSales() bool {
	return r.OwnSales == 0
}

// DateWindow é um recorte de datas inclusivo nas duas pontas, passado
// explicitamente como parâmetro em todas as consultas analíticas.
// Um ponteiro nil significa "período completo carregado".
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// NewDateWindow valida e cria um recorte de datas. Retorna ErrInvalidRange
// quando start é posterior a end; o chamador deve voltar ao período
// completo nesse caso, nunca propagar o erro como falha.
func NewDateWindow(start, end time.Time) (*DateWindow, error) {
	if start.After(end) {
		return nil, fmt.Errorf("janela de %s a %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), ErrInvalidRange)
	}

	return &DateWindow{Start: start, End: end}, nil
}

// Contains verifica se a data pertence ao recorte (inclusivo).
func (w *DateWindow) Contains(t time.Time) bool {
	if w == nil {
		return true
	}

	return !t.Before(w.Start) && !t.After(w.End)
}
