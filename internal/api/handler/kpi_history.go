package handler

import (
	"net/http"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/infrastructure/repository"
	"github.com/pharmadash/pharma-dashboard-api/pkg/apiErrors"
	"github.com/pharmadash/pharma-dashboard-api/pkg/log"
	"github.com/pharmadash/pharma-dashboard-api/pkg/utils"
)

// kpiHistoryDefaultDays delimita a janela padrão do histórico quando
// start_date não é informado
const kpiHistoryDefaultDays = 90

// GetKPIHistory retorna a série de snapshots diários de KPIs persistidos
// pelo agendador, ordenada por data crescente
func GetKPIHistory(repo repository.KPISnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("kpi history: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", err.Error())
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("kpi history: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", err.Error())
			return
		}

		end := *endDate
		if end.IsZero() {
			end = time.Now()
		}

		start := *startDate
		if start.IsZero() {
			start = end.AddDate(0, 0, -kpiHistoryDefaultDays)
		}

		if start.After(end) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRange, "Data inicial posterior à data final", nil)
			return
		}

		snapshots, err := repo.GetByDateRange(start, end)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": start.Format(time.DateOnly),
				"end_date":   end.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("kpi history: failed to query snapshots")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de KPIs", nil)
			return
		}

		writeDashboardResponse(w, r, snapshots)
	})
}
