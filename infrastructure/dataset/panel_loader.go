package dataset

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

const panelReadBatch = 100000

// panelRow é o layout físico das partições mensais do painel de mercado.
type panelRow struct {
	PeriodID        int64   `parquet:"name=id_periodo, type=INT64"`
	ProductID       int64   `parquet:"name=cd_produto, type=INT64"`
	StoreID         int64   `parquet:"name=cd_filial, type=INT64"`
	BrickID         int64   `parquet:"name=cd_brick, type=INT64"`
	Share           float64 `parquet:"name=share, type=DOUBLE"`
	OwnSales        float64 `parquet:"name=venda_rd, type=DOUBLE"`
	CompetitorSales float64 `parquet:"name=venda_concorrente, type=DOUBLE"`
}

// acumulador por (período, produto) dentro de uma partição
type panelAccumulator struct {
	shareSum float64
	rows     int
	own      float64
	comp     float64
	stores   map[int64]bool
	bricks   map[int64]bool
}

// LoadPanelPartitions carrega as partições mensais do painel (uma por mês,
// nome terminando em YYYYMM) e pré-agrega cada uma por (período, produto)
// antes de concatenar, para limitar memória. Com isso StoreCount/BrickCount
// viram somas de contagens distintas por partição, uma aproximação da
// contagem distinta global, assumida por todas as métricas que os
// consomem. Como cada partição cobre um único mês, na prática a soma entre
// partições não ocorre para o mesmo (período, produto); a aproximação
// existiria apenas se um mês fosse reparticionado.
func LoadPanelPartitions(dir, pattern string, start, cutoff time.Time) ([]domain.MarketPanelRecord, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar partições do painel")
	}

	if len(files) == 0 {
		return nil, errors.Wrapf(domain.ErrDataUnavailable, "nenhuma partição do painel em %s/%s", dir, pattern)
	}

	sort.Strings(files)

	var records []domain.MarketPanelRecord

	for _, file := range files {
		periodCode, ok := periodCodeFromFilename(file)
		if !ok {
			logrus.WithField("file", file).Warn("dataset: partição sem código de período no nome, ignorada")
			continue
		}

		period := periodCodeToTime(periodCode)
		if period.Before(start) || period.After(cutoff) {
			continue
		}

		partition, err := loadPanelPartition(file)
		if err != nil {
			logrus.WithError(err).WithField("file", file).Warn("dataset: erro ao ler partição do painel")
			continue
		}

		records = append(records, partition...)
	}

	if len(records) == 0 {
		return nil, errors.Wrap(domain.ErrDataUnavailable, "painel de mercado vazio após o corte")
	}

	return records, nil
}

// loadPanelPartition lê uma partição parquet inteira e a reduz a um
// registro por (período, produto).
func loadPanelPartition(path string) ([]domain.MarketPanelRecord, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir partição")
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(panelRow), 4)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar leitor parquet")
	}
	defer pr.ReadStop()

	accumulators := make(map[int64]map[int64]*panelAccumulator) // período -> produto

	remaining := int(pr.GetNumRows())
	for remaining > 0 {
		batch := panelReadBatch
		if remaining < batch {
			batch = remaining
		}

		rows := make([]panelRow, batch)
		if err := pr.Read(&rows); err != nil {
			return nil, errors.Wrap(err, "erro ao ler partição")
		}

		for _, row := range rows {
			byProduct, ok := accumulators[row.PeriodID]
			if !ok {
				byProduct = make(map[int64]*panelAccumulator)
				accumulators[row.PeriodID] = byProduct
			}

			acc, ok := byProduct[row.ProductID]
			if !ok {
				acc = &panelAccumulator{
					stores: make(map[int64]bool),
					bricks: make(map[int64]bool),
				}
				byProduct[row.ProductID] = acc
			}

			acc.shareSum += normalizeShare(row.Share)
			acc.rows++
			acc.own += row.OwnSales
			acc.comp += row.CompetitorSales
			acc.stores[row.StoreID] = true
			acc.bricks[row.BrickID] = true
		}

		remaining -= batch
	}

	var records []domain.MarketPanelRecord
	for periodCode, byProduct := range accumulators {
		period := periodCodeToTime(int(periodCode))
		for productID, acc := range byProduct {
			records = append(records, domain.MarketPanelRecord{
				Period:          period,
				PeriodCode:      int(periodCode),
				ProductID:       strconv.FormatInt(productID, 10),
				Share:           acc.shareSum / float64(acc.rows),
				OwnSales:        acc.own,
				CompetitorSales: acc.comp,
				StoreCount:      len(acc.stores),
				BrickCount:      len(acc.bricks),
			})
		}
	}

	// Ordena para a concatenação ser determinística entre cargas
	sort.Slice(records, func(i, j int) bool {
		if records[i].PeriodCode != records[j].PeriodCode {
			return records[i].PeriodCode < records[j].PeriodCode
		}
		return records[i].ProductID < records[j].ProductID
	})

	return records, nil
}

// normalizeShare converte a coluna share para a representação canônica em
// fração [0,1]. A fonte mistura frações e percentuais entre arquivos;
// valores acima de 1.5 são tratados como percentuais.
func normalizeShare(share float64) float64 {
	if share > 1.5 {
		return share / 100
	}
	if share < 0 {
		return 0
	}
	return share
}

// periodCodeFromFilename extrai o código YYYYMM do fim do nome do arquivo.
func periodCodeFromFilename(path string) (int, bool) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(base, "_")
	last := parts[len(parts)-1]

	if len(last) != 6 {
		return 0, false
	}

	code, err := strconv.Atoi(last)
	if err != nil {
		return 0, false
	}

	month := code % 100
	if month < 1 || month > 12 {
		return 0, false
	}

	return code, true
}

// periodCodeToTime converte YYYYMM no primeiro dia do mês.
func periodCodeToTime(code int) time.Time {
	return time.Date(code/100, time.Month(code%100), 1, 0, 0, 0, 0, time.UTC)
}
