package analytics

import (
	"sort"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

// Ordenações aceitas por TopProducts
const (
	TopByRevenue = "revenue"
	TopByUnits   = "units"
)

const defaultLookbackPeriods = 3

// Service implementa o Analyzer sobre um DatasetProvider injetado. Não
// guarda nenhum estado além da referência à base: o recorte de datas chega
// por parâmetro em toda chamada, então o serviço pode ser compartilhado
// entre sessões sem sincronização.
type Service struct {
	store DatasetProvider
}

// NewService cria o serviço de analytics do dashboard.
func NewService(store DatasetProvider) Analyzer {
	return &Service{store: store}
}

// DatasetSummary descreve as bases carregadas, única leitura sem filtro.
func (s *Service) DatasetSummary() domain.DatasetSummary {
	return s.store.Summary()
}

// filteredSales aplica o recorte inclusivo sobre a base de preços.
func (s *Service) filteredSales(window *domain.DateWindow) []domain.SalesRecord {
	all := s.store.Sales()
	if window == nil {
		return all
	}

	filtered := make([]domain.SalesRecord, 0, len(all))
	for _, r := range all {
		if window.Contains(r.Period) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// filteredPanel aplica o recorte inclusivo sobre o painel de mercado.
func (s *Service) filteredPanel(window *domain.DateWindow) []domain.MarketPanelRecord {
	all := s.store.Panel()
	if window == nil {
		return all
	}

	filtered := make([]domain.MarketPanelRecord, 0, len(all))
	for _, r := range all {
		if window.Contains(r.Period) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// RevenueMetrics reduz a base de vendas filtrada aos KPIs de receita.
func (s *Service) RevenueMetrics(window *domain.DateWindow) domain.RevenueMetrics {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return domain.RevenueMetrics{}
	}

	metrics := domain.RevenueMetrics{
		RecordCount: len(records),
		Available:   true,
	}

	priceSum := 0.0
	products := make(map[string]bool)

	for _, r := range records {
		metrics.TotalRevenue += r.Revenue
		metrics.TotalUnits += r.UnitsSold
		priceSum += r.AvgUnitPrice
		products[r.ProductID] = true
	}

	metrics.AvgPrice = priceSum / float64(len(records))
	metrics.UniqueProducts = len(products)

	return metrics
}

// MarketShareMetrics reduz o painel filtrado aos KPIs de market share.
// ZeroSalesRate é invariante à ordem das linhas e fica sempre em [0, 1].
func (s *Service) MarketShareMetrics(window *domain.DateWindow) domain.MarketShareMetrics {
	records := s.filteredPanel(window)
	if len(records) == 0 {
		return domain.MarketShareMetrics{}
	}

	metrics := domain.MarketShareMetrics{Available: true}

	shareSum := 0.0
	zeroCount := 0
	products := make(map[string]bool)

	for _, r := range records {
		shareSum += r.Share
		metrics.TotalOwnSales += r.OwnSales
		metrics.TotalCompetitorSales += r.CompetitorSales
		if r.IsZeroSales() {
			zeroCount++
		}
		products[r.ProductID] = true

		// Somas de contagens por partição, não contagem distinta global
		metrics.StoreCount += r.StoreCount
		metrics.BrickCount += r.BrickCount
	}

	metrics.AvgShare = shareSum / float64(len(records))
	metrics.ZeroSalesRate = float64(zeroCount) / float64(len(records))
	metrics.UniqueProducts = len(products)

	return metrics
}

// RevenueTrend agrega a base de vendas por mês, em ordem cronológica.
func (s *Service) RevenueTrend(window *domain.DateWindow) []domain.PeriodAggregate {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return []domain.PeriodAggregate{}
	}

	type accumulator struct {
		revenue  float64
		units    int
		priceSum float64
		rows     int
	}

	byPeriod := make(map[int64]*accumulator)
	periods := make(map[int64]domain.PeriodAggregate)

	for _, r := range records {
		key := r.Period.Unix()
		acc, ok := byPeriod[key]
		if !ok {
			acc = &accumulator{}
			byPeriod[key] = acc
			periods[key] = domain.PeriodAggregate{Period: r.Period}
		}
		acc.revenue += r.Revenue
		acc.units += r.UnitsSold
		acc.priceSum += r.AvgUnitPrice
		acc.rows++
	}

	trend := make([]domain.PeriodAggregate, 0, len(byPeriod))
	for key, acc := range byPeriod {
		point := periods[key]
		point.Revenue = acc.revenue
		point.Units = acc.units
		point.AvgPrice = acc.priceSum / float64(acc.rows)
		trend = append(trend, point)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Period.Before(trend[j].Period)
	})

	return trend
}

// MarketShareTrend agrega o painel por mês, em ordem cronológica.
func (s *Service) MarketShareTrend(window *domain.DateWindow) []domain.SharePeriodAggregate {
	records := s.filteredPanel(window)
	if len(records) == 0 {
		return []domain.SharePeriodAggregate{}
	}

	type accumulator struct {
		shareSum float64
		own      float64
		comp     float64
		rows     int
		products map[string]bool
	}

	byPeriod := make(map[int64]*accumulator)
	periods := make(map[int64]domain.SharePeriodAggregate)

	for _, r := range records {
		key := r.Period.Unix()
		acc, ok := byPeriod[key]
		if !ok {
			acc = &accumulator{products: make(map[string]bool)}
			byPeriod[key] = acc
			periods[key] = domain.SharePeriodAggregate{Period: r.Period}
		}
		acc.shareSum += r.Share
		acc.own += r.OwnSales
		acc.comp += r.CompetitorSales
		acc.rows++
		acc.products[r.ProductID] = true
	}

	trend := make([]domain.SharePeriodAggregate, 0, len(byPeriod))
	for key, acc := range byPeriod {
		point := periods[key]
		point.AvgShare = acc.shareSum / float64(acc.rows)
		point.OwnSales = acc.own
		point.CompetitorSales = acc.comp
		point.Products = len(acc.products)
		trend = append(trend, point)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Period.Before(trend[j].Period)
	})

	return trend
}

// ChannelPerformance agrega a base de vendas por canal, com percentual da
// receita total, ordenada por receita decrescente.
func (s *Service) ChannelPerformance(window *domain.DateWindow) []domain.ChannelAggregate {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return []domain.ChannelAggregate{}
	}

	type accumulator struct {
		revenue  float64
		units    int
		priceSum float64
		rows     int
	}

	byChannel := make(map[string]*accumulator)
	total := 0.0

	for _, r := range records {
		acc, ok := byChannel[r.Channel]
		if !ok {
			acc = &accumulator{}
			byChannel[r.Channel] = acc
		}
		acc.revenue += r.Revenue
		acc.units += r.UnitsSold
		acc.priceSum += r.AvgUnitPrice
		acc.rows++
		total += r.Revenue
	}

	channels := make([]domain.ChannelAggregate, 0, len(byChannel))
	for channel, acc := range byChannel {
		channels = append(channels, domain.ChannelAggregate{
			Channel:    channel,
			Revenue:    acc.revenue,
			Units:      acc.units,
			AvgPrice:   acc.priceSum / float64(acc.rows),
			PctRevenue: pctOfTotal(acc.revenue, total),
		})
	}

	sort.Slice(channels, func(i, j int) bool {
		if channels[i].Revenue != channels[j].Revenue {
			return channels[i].Revenue > channels[j].Revenue
		}
		return channels[i].Channel < channels[j].Channel
	})

	return channels
}

// CategoryPerformance agrega a base de vendas por categoria, com contagem
// de produtos distintos, ordenada por receita decrescente.
func (s *Service) CategoryPerformance(window *domain.DateWindow) []domain.CategoryAggregate {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return []domain.CategoryAggregate{}
	}

	type accumulator struct {
		revenue  float64
		units    int
		priceSum float64
		rows     int
		products map[string]bool
	}

	byCategory := make(map[string]*accumulator)
	total := 0.0

	for _, r := range records {
		acc, ok := byCategory[r.Category]
		if !ok {
			acc = &accumulator{products: make(map[string]bool)}
			byCategory[r.Category] = acc
		}
		acc.revenue += r.Revenue
		acc.units += r.UnitsSold
		acc.priceSum += r.AvgUnitPrice
		acc.rows++
		acc.products[r.ProductID] = true
		total += r.Revenue
	}

	categories := make([]domain.CategoryAggregate, 0, len(byCategory))
	for category, acc := range byCategory {
		categories = append(categories, domain.CategoryAggregate{
			Category:   category,
			Revenue:    acc.revenue,
			Units:      acc.units,
			AvgPrice:   acc.priceSum / float64(acc.rows),
			Products:   len(acc.products),
			PctRevenue: pctOfTotal(acc.revenue, total),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Revenue != categories[j].Revenue {
			return categories[i].Revenue > categories[j].Revenue
		}
		return categories[i].Category < categories[j].Category
	})

	return categories
}

// StatePerformance agrega a base de vendas por estado, ordenada por
// receita decrescente.
func (s *Service) StatePerformance(window *domain.DateWindow) []domain.StateAggregate {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return []domain.StateAggregate{}
	}

	type accumulator struct {
		revenue  float64
		units    int
		priceSum float64
		rows     int
	}

	byState := make(map[string]*accumulator)
	total := 0.0

	for _, r := range records {
		acc, ok := byState[r.State]
		if !ok {
			acc = &accumulator{}
			byState[r.State] = acc
		}
		acc.revenue += r.Revenue
		acc.units += r.UnitsSold
		acc.priceSum += r.AvgUnitPrice
		acc.rows++
		total += r.Revenue
	}

	states := make([]domain.StateAggregate, 0, len(byState))
	for state, acc := range byState {
		states = append(states, domain.StateAggregate{
			State:      state,
			Revenue:    acc.revenue,
			Units:      acc.units,
			AvgPrice:   acc.priceSum / float64(acc.rows),
			PctRevenue: pctOfTotal(acc.revenue, total),
		})
	}

	sort.Slice(states, func(i, j int) bool {
		if states[i].Revenue != states[j].Revenue {
			return states[i].Revenue > states[j].Revenue
		}
		return states[i].State < states[j].State
	})

	return states
}

// TopProducts agrega por produto e retorna os topN pelo critério escolhido
// (receita por padrão). A categoria carregada é a da primeira linha vista,
// como na base original.
func (s *Service) TopProducts(window *domain.DateWindow, topN int, by string) []domain.ProductAggregate {
	products := s.productAggregates(window)
	if len(products) == 0 {
		return []domain.ProductAggregate{}
	}

	if by == TopByUnits {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Units > products[j].Units
		})
	} else {
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Revenue > products[j].Revenue
		})
	}

	if topN > 0 && topN < len(products) {
		products = products[:topN]
	}

	return products
}

// productAggregates agrega a base filtrada por produto, em ordem estável
// de chave para os desempates das ordenações serem determinísticos.
func (s *Service) productAggregates(window *domain.DateWindow) []domain.ProductAggregate {
	records := s.filteredSales(window)
	if len(records) == 0 {
		return nil
	}

	type accumulator struct {
		revenue  float64
		units    int
		priceSum float64
		rows     int
		category string
	}

	byProduct := make(map[string]*accumulator)

	for _, r := range records {
		acc, ok := byProduct[r.ProductID]
		if !ok {
			acc = &accumulator{category: r.Category}
			byProduct[r.ProductID] = acc
		}
		acc.revenue += r.Revenue
		acc.units += r.UnitsSold
		acc.priceSum += r.AvgUnitPrice
		acc.rows++
	}

	products := make([]domain.ProductAggregate, 0, len(byProduct))
	for productID, acc := range byProduct {
		products = append(products, domain.ProductAggregate{
			ProductID: productID,
			Revenue:   acc.revenue,
			Units:     acc.units,
			AvgPrice:  acc.priceSum / float64(acc.rows),
			Category:  acc.category,
		})
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductID < products[j].ProductID
	})

	return products
}

// pctOfTotal calcula o percentual do grupo sobre o total, resolvendo
// divisão por zero para 0.
func pctOfTotal(value, total float64) float64 {
	if total == 0 {
		return 0
	}

	return value / total * 100
}
