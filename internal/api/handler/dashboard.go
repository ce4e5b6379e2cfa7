package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pharmadash/pharma-dashboard-api/internal/usecases/analytics"
	"github.com/pharmadash/pharma-dashboard-api/pkg/log"
	"github.com/pharmadash/pharma-dashboard-api/pkg/utils"
)

// openEndDate fecha recortes sem end_date informado
var openEndDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

const defaultTopProducts = 10

// parseWindow monta o recorte de datas a partir de start_date/end_date.
// Datas malformadas respondem 400; um recorte invertido (start > end)
// volta ao período completo, que é o comportamento esperado do dashboard.
func parseWindow(w http.ResponseWriter, r *http.Request) (*domain.DateWindow, bool) {
	logger := log.ForContext(r.Context())

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("dashboard: invalid start_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("dashboard: invalid end_date parameter")

		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if startDate.IsZero() && endDate.IsZero() {
		return nil, true
	}

	end := *endDate
	if end.IsZero() {
		end = openEndDate
	}

	window, err := domain.NewDateWindow(*startDate, end)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Warn("dashboard: start_date after end_date, falling back to full range")

		return nil, true
	}

	return window, true
}

// parsePositiveInt lê um parâmetro inteiro opcional; valores ausentes ou
// inválidos retornam o fallback para a camada analítica aplicar o padrão.
func parsePositiveInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"param": name,
			"value": raw,
		}).Warn("dashboard: invalid integer parameter, using default")

		return fallback
	}

	return value
}

func writeDashboardResponse(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"path":  r.URL.Path,
			"error": err.Error(),
		}).Error("dashboard: failed to encode response")

		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetDashboardSummary descreve as bases carregadas em memória
func GetDashboardSummary(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeDashboardResponse(w, r, service.DatasetSummary())
	})
}

func GetRevenueMetrics(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.RevenueMetrics(window))
	})
}

func GetMarketShareMetrics(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.MarketShareMetrics(window))
	})
}

func GetRevenueTrend(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.RevenueTrend(window))
	})
}

func GetMarketShareTrend(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.MarketShareTrend(window))
	})
}

func GetChannelPerformance(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.ChannelPerformance(window))
	})
}

func GetCategoryPerformance(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.CategoryPerformance(window))
	})
}

func GetStatePerformance(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.StatePerformance(window))
	})
}

// GetTopProducts aceita limit (padrão 10) e by=revenue|units (padrão revenue)
func GetTopProducts(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		limit := parsePositiveInt(r, "limit", defaultTopProducts)

		by := r.URL.Query().Get("by")
		if by != analytics.TopByUnits {
			by = analytics.TopByRevenue
		}

		writeDashboardResponse(w, r, service.TopProducts(window, limit, by))
	})
}

// GetGrowthRates aceita periods para ajustar a base de comparação
func GetGrowthRates(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		lookback := parsePositiveInt(r, "periods", 0)

		writeDashboardResponse(w, r, service.GrowthRates(window, lookback))
	})
}

func GetPerformanceScore(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.PerformanceScore(window))
	})
}

func GetZeroSalesOpportunities(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.ZeroSalesOpportunities(window))
	})
}

func GetParetoClassification(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.ParetoClassification(window))
	})
}

func GetOpportunityMatrix(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		limit := parsePositiveInt(r, "limit", 0)

		writeDashboardResponse(w, r, service.OpportunityMatrix(window, limit))
	})
}

func GetRevenueForecast(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		lookback := parsePositiveInt(r, "periods", 0)

		writeDashboardResponse(w, r, service.ForecastRevenue(window, lookback))
	})
}

func GetShareForecast(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		lookback := parsePositiveInt(r, "periods", 0)

		writeDashboardResponse(w, r, service.ForecastShare(window, lookback))
	})
}

func GetScenarios(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.Scenarios(window))
	})
}

func GetInsights(service analytics.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		window, ok := parseWindow(w, r)
		if !ok {
			return
		}

		writeDashboardResponse(w, r, service.Insights(window))
	})
}
