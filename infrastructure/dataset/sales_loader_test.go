package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "preco.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

var (
	historyStart  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	historyCutoff = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
)

func TestLoadSalesCSV(t *testing.T) {
	// Coluna extra (loja) deve ser ignorada sem afetar o mapeamento
	path := writeCSV(t, `mes,rbv,qt_unidade_vendida,preco_medio,produto,canal,neogrupo,uf,loja
2025-01-01,1500.50,30,50.02,P001,App,Medicamentos,SP,L1
2025-02-01,800.00,10,80.00,P002,Site,Vitaminas,RJ,L2
`)

	records, err := LoadSalesCSV(path, historyStart, historyCutoff)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "P001", records[0].ProductID)
	assert.Equal(t, "App", records[0].Channel)
	assert.Equal(t, "Medicamentos", records[0].Category)
	assert.Equal(t, "SP", records[0].State)
	assert.Equal(t, 1500.50, records[0].Revenue)
	assert.Equal(t, 30, records[0].UnitsSold)
	assert.Equal(t, 50.02, records[0].AvgUnitPrice)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Period)
}

func TestLoadSalesCSV_LinhasMalformadasSaoPuladas(t *testing.T) {
	path := writeCSV(t, `mes,rbv,qt_unidade_vendida,preco_medio,produto,canal,neogrupo,uf
2025-01-01,100.00,10,10.00,P001,App,Medicamentos,SP
data-ruim,100.00,10,10.00,P002,App,Medicamentos,SP
2025-01-01,-50.00,10,10.00,P003,App,Medicamentos,SP
2025-01-01,abc,10,10.00,P004,App,Medicamentos,SP
`)

	records, err := LoadSalesCSV(path, historyStart, historyCutoff)
	require.NoError(t, err)

	// Data inválida, receita negativa e receita não numérica caem fora
	require.Len(t, records, 1)
	assert.Equal(t, "P001", records[0].ProductID)
}

func TestLoadSalesCSV_JanelaHistorica(t *testing.T) {
	path := writeCSV(t, `mes,rbv,qt_unidade_vendida,preco_medio,produto,canal,neogrupo,uf
2024-12-01,100.00,1,100.00,P001,App,Medicamentos,SP
2025-01-01,200.00,2,100.00,P002,App,Medicamentos,SP
2025-09-30,300.00,3,100.00,P003,App,Medicamentos,SP
2025-10-01,400.00,4,100.00,P004,App,Medicamentos,SP
`)

	records, err := LoadSalesCSV(path, historyStart, historyCutoff)
	require.NoError(t, err)

	// Pontas inclusivas: dezembro/2024 e outubro/2025 caem fora
	require.Len(t, records, 2)
	assert.Equal(t, "P002", records[0].ProductID)
	assert.Equal(t, "P003", records[1].ProductID)
}

func TestLoadSalesCSV_PeriodoAnoMes(t *testing.T) {
	path := writeCSV(t, `mes,rbv,qt_unidade_vendida,preco_medio,produto,canal,neogrupo,uf
2025-03,100.00,1,100.00,P001,App,Medicamentos,SP
`)

	records, err := LoadSalesCSV(path, historyStart, historyCutoff)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), records[0].Period)
}

func TestLoadSalesCSV_ArquivoInexistente(t *testing.T) {
	_, err := LoadSalesCSV(filepath.Join(t.TempDir(), "nao_existe.csv"), historyStart, historyCutoff)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

func TestLoadSalesCSV_ColunaObrigatoriaAusente(t *testing.T) {
	path := writeCSV(t, `mes,rbv,produto,canal,neogrupo,uf
2025-01-01,100.00,P001,App,Medicamentos,SP
`)

	_, err := LoadSalesCSV(path, historyStart, historyCutoff)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Contains(t, err.Error(), "qt_unidade_vendida")
}

func TestLoadSalesCSV_VazioAposCorte(t *testing.T) {
	path := writeCSV(t, `mes,rbv,qt_unidade_vendida,preco_medio,produto,canal,neogrupo,uf
2020-01-01,100.00,1,100.00,P001,App,Medicamentos,SP
`)

	_, err := LoadSalesCSV(path, historyStart, historyCutoff)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}
