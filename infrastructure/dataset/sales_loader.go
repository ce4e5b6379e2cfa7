package dataset

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Colunas semânticas esperadas na base de preços. Qualquer coluna extra do
// arquivo é descartada na carga para limitar memória.
var salesColumns = []string{"mes", "rbv", "qt_unidade_vendida", "preco_medio", "produto", "canal", "neogrupo", "uf"}

// LoadSalesCSV carrega a base interna de preços/vendas de um CSV,
// retendo apenas as colunas necessárias e as linhas dentro da janela
// histórica [start, cutoff]. Linhas malformadas são contadas e puladas,
// nunca abortam a carga.
func LoadSalesCSV(path string, start, cutoff time.Time) ([]domain.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(domain.ErrDataUnavailable, "arquivo de preços não encontrado: %s", path)
		}
		return nil, errors.Wrap(err, "erro ao abrir arquivo de preços")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(domain.ErrDataUnavailable, "arquivo de preços vazio")
	}

	idx, err := columnIndex(header, salesColumns)
	if err != nil {
		return nil, err
	}

	var records []domain.SalesRecord
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		record, ok := parseSalesRow(row, idx)
		if !ok {
			skipped++
			continue
		}

		// Janela histórica fixa da carga, inclusiva nas duas pontas
		if record.Period.Before(start) || record.Period.After(cutoff) {
			continue
		}

		records = append(records, record)
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"file":    path,
			"skipped": skipped,
		}).Warn("dataset: linhas malformadas ignoradas na base de preços")
	}

	if len(records) == 0 {
		return nil, errors.Wrapf(domain.ErrDataUnavailable, "base de preços vazia após o corte: %s", path)
	}

	return records, nil
}

func parseSalesRow(row []string, idx map[string]int) (domain.SalesRecord, bool) {
	get := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	period, err := parsePeriod(get("mes"))
	if err != nil {
		return domain.SalesRecord{}, false
	}

	revenue, err := strconv.ParseFloat(get("rbv"), 64)
	if err != nil || revenue < 0 {
		return domain.SalesRecord{}, false
	}

	units, err := strconv.ParseFloat(get("qt_unidade_vendida"), 64)
	if err != nil || units < 0 {
		return domain.SalesRecord{}, false
	}

	avgPrice, err := strconv.ParseFloat(get("preco_medio"), 64)
	if err != nil || avgPrice < 0 {
		return domain.SalesRecord{}, false
	}

	return domain.SalesRecord{
		Period:       period,
		ProductID:    get("produto"),
		Channel:      get("canal"),
		Category:     get("neogrupo"),
		State:        get("uf"),
		Revenue:      revenue,
		UnitsSold:    int(units),
		AvgUnitPrice: avgPrice,
	}, true
}

// parsePeriod aceita datas completas ou apenas ano-mês.
func parsePeriod(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01", value)
}

// columnIndex resolve os índices das colunas obrigatórias no cabeçalho.
func columnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, errors.Wrapf(domain.ErrDataUnavailable, "coluna obrigatória ausente: %s", col)
		}
	}

	return idx, nil
}
