package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pharmadash/pharma-dashboard-api/internal/usecases/analytics/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetRevenueMetrics(t *testing.T) {
	metrics := domain.RevenueMetrics{
		TotalRevenue:   1500.50,
		TotalUnits:     120,
		AvgPrice:       12.50,
		UniqueProducts: 3,
		RecordCount:    6,
		Available:      true,
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(m *mocks.MockAnalyzer)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Sem filtro de datas - deve consultar o período completo",
			url:  "/v1/dashboard/revenue",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().RevenueMetrics(nil).Return(metrics)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"total_revenue":1500.5`)
				assert.Contains(t, body, `"available":true`)
			},
		},
		{
			name: "Com recorte de datas válido - deve repassar o recorte",
			url:  "/v1/dashboard/revenue?start_date=2025-01-01&end_date=2025-03-31",
			setupMock: func(m *mocks.MockAnalyzer) {
				expected := &domain.DateWindow{
					Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
					End:   time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
				}
				m.EXPECT().RevenueMetrics(expected).Return(metrics)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Recorte invertido - deve voltar ao período completo",
			url:  "/v1/dashboard/revenue?start_date=2025-03-01&end_date=2025-01-01",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().RevenueMetrics(nil).Return(metrics)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Data malformada - deve responder 400",
			url:            "/v1/dashboard/revenue?start_date=01-01-2025",
			setupMock:      func(m *mocks.MockAnalyzer) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setupMock(mockAnalyzer)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			GetRevenueMetrics(mockAnalyzer).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, rec.Body.String())
			}
		})
	}
}

func TestGetTopProducts(t *testing.T) {
	products := []domain.ProductAggregate{
		{ProductID: "P001", Revenue: 900, Units: 30},
		{ProductID: "P002", Revenue: 600, Units: 60},
	}

	tests := []struct {
		name      string
		url       string
		setupMock func(m *mocks.MockAnalyzer)
	}{
		{
			name: "Sem parâmetros - deve usar limit 10 e ordenação por receita",
			url:  "/v1/dashboard/products/top",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().TopProducts(nil, 10, "revenue").Return(products)
			},
		},
		{
			name: "Ordenação por unidades com limite explícito",
			url:  "/v1/dashboard/products/top?by=units&limit=5",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().TopProducts(nil, 5, "units").Return(products)
			},
		},
		{
			name: "Critério desconhecido - deve cair em receita",
			url:  "/v1/dashboard/products/top?by=margin",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().TopProducts(nil, 10, "revenue").Return(products)
			},
		},
		{
			name: "Limite inválido - deve usar o padrão",
			url:  "/v1/dashboard/products/top?limit=abc",
			setupMock: func(m *mocks.MockAnalyzer) {
				m.EXPECT().TopProducts(nil, 10, "revenue").Return(products)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setupMock(mockAnalyzer)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			GetTopProducts(mockAnalyzer).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetGrowthRates_RepassaPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().GrowthRates(nil, 6).Return(domain.GrowthRates{RevenueGrowth: 12.5})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/growth?periods=6", nil)
	rec := httptest.NewRecorder()

	GetGrowthRates(mockAnalyzer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revenue_growth":12.5`)
}

func TestGetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	mockAnalyzer.EXPECT().DatasetSummary().Return(domain.DatasetSummary{
		SalesLoaded:  true,
		SalesRecords: 1200,
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockAnalyzer).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sales_records":1200`)
}
