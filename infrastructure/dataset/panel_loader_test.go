package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShare(t *testing.T) {
	tests := []struct {
		name     string
		share    float64
		expected float64
	}{
		{
			name:     "Fração em [0,1] passa sem conversão",
			share:    0.42,
			expected: 0.42,
		},
		{
			name:     "Fração exatamente 1.0 passa sem conversão",
			share:    1.0,
			expected: 1.0,
		},
		{
			name:     "Limite 1.5 ainda é tratado como fração",
			share:    1.5,
			expected: 1.5,
		},
		{
			name:     "Acima de 1.5 é tratado como percentual",
			share:    1.51,
			expected: 0.0151,
		},
		{
			name:     "Percentual típico é convertido para fração",
			share:    85.0,
			expected: 0.85,
		},
		{
			name:     "Valor negativo é saneado para zero",
			share:    -0.1,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, normalizeShare(tt.share), 1e-9)
		})
	}
}

func TestPeriodCodeFromFilename(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedCode int
		expectedOK   bool
	}{
		{
			name:         "Nome padrão com código válido",
			path:         "data/historico_iqvia_202501.parquet",
			expectedCode: 202501,
			expectedOK:   true,
		},
		{
			name:         "Dezembro é aceito",
			path:         "historico_iqvia_202512.parquet",
			expectedCode: 202512,
			expectedOK:   true,
		},
		{
			name:       "Mês 13 é rejeitado",
			path:       "historico_iqvia_202513.parquet",
			expectedOK: false,
		},
		{
			name:       "Mês zero é rejeitado",
			path:       "historico_iqvia_202500.parquet",
			expectedOK: false,
		},
		{
			name:       "Sufixo não numérico é rejeitado",
			path:       "historico_iqvia_jan25a.parquet",
			expectedOK: false,
		},
		{
			name:       "Código com menos de seis dígitos é rejeitado",
			path:       "historico_iqvia_2025.parquet",
			expectedOK: false,
		},
		{
			name:       "Código com mais de seis dígitos é rejeitado",
			path:       "historico_iqvia_20250101.parquet",
			expectedOK: false,
		},
		{
			name:         "Nome sem prefixo ainda extrai o código",
			path:         "202503.parquet",
			expectedCode: 202503,
			expectedOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := periodCodeFromFilename(tt.path)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedCode, code)
			}
		})
	}
}

func TestPeriodCodeToTime(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), periodCodeToTime(202501))
	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), periodCodeToTime(202509))
}
