package analytics

import (
	"sort"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

const defaultOpportunityLimit = 50

// ZeroSalesOpportunities agrupa os cenários de venda zero por produto,
// somando o volume concorrente e as lojas afetadas, em ordem decrescente
// de volume concorrente (empates pelo ID do produto, estável entre cargas).
func (s *Service) ZeroSalesOpportunities(window *domain.DateWindow) []domain.ZeroSalesOpportunity {
	records := s.filteredPanel(window)
	if len(records) == 0 {
		return []domain.ZeroSalesOpportunity{}
	}

	type accumulator struct {
		comp   float64
		stores int
	}

	byProduct := make(map[string]*accumulator)

	for _, r := range records {
		if !r.IsZeroSales() {
			continue
		}

		acc, ok := byProduct[r.ProductID]
		if !ok {
			acc = &accumulator{}
			byProduct[r.ProductID] = acc
		}
		acc.comp += r.CompetitorSales

		// Soma de contagens por partição (ver carga do painel)
		acc.stores += r.StoreCount
	}

	opportunities := make([]domain.ZeroSalesOpportunity, 0, len(byProduct))
	for productID, acc := range byProduct {
		opportunities = append(opportunities, domain.ZeroSalesOpportunity{
			ProductID:       productID,
			CompetitorSales: acc.comp,
			AffectedStores:  acc.stores,
		})
	}

	sort.Slice(opportunities, func(i, j int) bool {
		if opportunities[i].CompetitorSales != opportunities[j].CompetitorSales {
			return opportunities[i].CompetitorSales > opportunities[j].CompetitorSales
		}
		return opportunities[i].ProductID < opportunities[j].ProductID
	})

	return opportunities
}

// ParetoClassification ordena os produtos por receita decrescente e os
// classifica na curva ABC pelo percentual acumulado: A até 80%, B até 95%,
// C acima. Ordenação estável: produtos com receita igual preservam a
// ordem relativa de entrada.
func (s *Service) ParetoClassification(window *domain.DateWindow) []domain.ParetoProduct {
	products := s.productAggregates(window)
	if len(products) == 0 {
		return []domain.ParetoProduct{}
	}

	total := 0.0
	for _, p := range products {
		total += p.Revenue
	}
	if total == 0 {
		return []domain.ParetoProduct{}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})

	ranked := make([]domain.ParetoProduct, 0, len(products))
	cumulative := 0.0

	for i, p := range products {
		cumulative += p.Revenue
		pct := cumulative / total * 100

		class := domain.ParetoClassC
		switch {
		case pct <= 80:
			class = domain.ParetoClassA
		case pct <= 95:
			class = domain.ParetoClassB
		}

		ranked = append(ranked, domain.ParetoProduct{
			Ranking:       i + 1,
			ProductID:     p.ProductID,
			Revenue:       p.Revenue,
			CumulativePct: pct,
			Class:         class,
		})
	}

	return ranked
}

// OpportunityMatrix posiciona as maiores oportunidades de venda zero na
// matriz impacto × facilidade: impacto relativo ao maior volume
// concorrente, facilidade inversa ao número de lojas afetadas. Os
// quadrantes são definidos pelas médias das duas dimensões; quem fica
// acima da média nas duas é Quick Win. O potencial de receita assume
// captura de 30% do volume concorrente ao preço médio do recorte.
func (s *Service) OpportunityMatrix(window *domain.DateWindow, limit int) []domain.OpportunityItem {
	if limit <= 0 {
		limit = defaultOpportunityLimit
	}

	opportunities := s.ZeroSalesOpportunities(window)
	if len(opportunities) == 0 {
		return []domain.OpportunityItem{}
	}

	if limit < len(opportunities) {
		opportunities = opportunities[:limit]
	}

	maxComp := 0.0
	maxStores := 0
	for _, o := range opportunities {
		if o.CompetitorSales > maxComp {
			maxComp = o.CompetitorSales
		}
		if o.AffectedStores > maxStores {
			maxStores = o.AffectedStores
		}
	}

	avgPrice := s.RevenueMetrics(window).AvgPrice

	items := make([]domain.OpportunityItem, 0, len(opportunities))
	impactSum := 0.0
	easeSum := 0.0

	for _, o := range opportunities {
		item := domain.OpportunityItem{
			ProductID:        o.ProductID,
			CompetitorSales:  o.CompetitorSales,
			AffectedStores:   o.AffectedStores,
			RevenuePotential: o.CompetitorSales * avgPrice * 0.30,
		}

		if maxComp > 0 {
			item.Impact = o.CompetitorSales / maxComp * 100
		}
		if maxStores > 0 {
			item.Ease = (1 - float64(o.AffectedStores)/float64(maxStores)) * 100
		}

		impactSum += item.Impact
		easeSum += item.Ease
		items = append(items, item)
	}

	avgImpact := impactSum / float64(len(items))
	avgEase := easeSum / float64(len(items))

	for i := range items {
		switch {
		case items[i].Impact >= avgImpact && items[i].Ease >= avgEase:
			items[i].Priority = domain.PriorityQuickWin
		case items[i].Impact >= avgImpact:
			items[i].Priority = domain.PriorityMajorProject
		case items[i].Ease >= avgEase:
			items[i].Priority = domain.PriorityFillIn
		default:
			items[i].Priority = domain.PriorityLow
		}
	}

	return items
}
