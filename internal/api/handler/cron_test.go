package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pharmadash/pharma-dashboard-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
)

func adminRequest(t *testing.T, method, url string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
	claims := &domain.Claims{UserRoleID: 1}

	return req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
}

func TestGetCronStatus(t *testing.T) {
	tests := []struct {
		name           string
		services       CronJobServices
		request        *http.Request
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:           "Sem credenciais de administrador - deve responder 403",
			services:       CronJobServices{},
			request:        httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Serviço de snapshot indisponível - deve responder 500 sem pânico",
			services:       CronJobServices{},
			request:        adminRequest(t, http.MethodGet, "/v1/cron/status"),
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "SRV_001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			GetCronStatus(tt.services).ServeHTTP(rec, tt.request)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
		})
	}
}

func TestRunCronJob_ServicoIndisponivel(t *testing.T) {
	req := adminRequest(t, http.MethodPost, "/v1/cron/kpi-snapshot/run")
	rec := httptest.NewRecorder()

	// O tipo vem da rota; sem parâmetros no contexto o handler trata como ausente
	RunCronJob(CronJobServices{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_002")
}
