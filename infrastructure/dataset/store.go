package dataset

import (
	"sync"
	"time"

	"github.com/pharmadash/pharma-dashboard-api/internal/config"
	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store mantém as duas bases em memória pela vida do processo. É construído
// uma única vez no main e injetado em todos os consumidores; não há cache
// global implícito. O primeiro Load é serializado por mutex para que
// sessões concorrentes não disparem cargas duplicadas; depois de carregado,
// as leituras são livres porque os registros nunca são mutados.
type Store struct {
	cfg config.Datasets

	mu     sync.Mutex
	loaded bool
	sales  []domain.SalesRecord
	panel  []domain.MarketPanelRecord
}

func NewStore(cfg config.Datasets) *Store {
	return &Store{cfg: cfg}
}

// Load carrega as duas fontes respeitando a janela histórica de deploy.
// Idempotente: chamadas subsequentes retornam sem recarregar. Uma fonte
// ausente vira log de aviso e base vazia; o erro ErrDataUnavailable só é
// retornado quando nenhuma das duas fontes rendeu registros.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	start, cutoff := s.cfg.HistoryWindow()

	logrus.WithFields(logrus.Fields{
		"history_start":  start.Format(time.DateOnly),
		"history_cutoff": cutoff.Format(time.DateOnly),
	}).Info("dataset: iniciando carga das bases")

	sales, err := LoadSalesCSV(s.cfg.SalesFile, start, cutoff)
	if err != nil {
		logrus.WithError(err).WithField("file", s.cfg.SalesFile).
			Warn("dataset: base de preços indisponível")
	} else {
		logrus.WithField("records", len(sales)).Info("dataset: base de preços carregada")
	}

	panel, err := LoadPanelPartitions(s.cfg.PanelDir, s.cfg.PanelPattern, start, cutoff)
	if err != nil {
		logrus.WithError(err).WithField("dir", s.cfg.PanelDir).
			Warn("dataset: painel de mercado indisponível")
	} else {
		logrus.WithField("records", len(panel)).Info("dataset: painel de mercado carregado")
	}

	s.sales = sales
	s.panel = panel
	s.loaded = true

	if len(s.sales) == 0 && len(s.panel) == 0 {
		return errors.Wrap(domain.ErrDataUnavailable, "nenhuma fonte de dados rendeu registros")
	}

	return nil
}

// Sales retorna a base de preços completa. Somente leitura.
func (s *Store) Sales() []domain.SalesRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sales
}

// Panel retorna o painel de mercado completo. Somente leitura.
func (s *Store) Panel() []domain.MarketPanelRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panel
}

// Summary descreve o volume carregado. É a única consulta que enxerga as
// bases sem filtro de datas.
func (s *Store) Summary() domain.DatasetSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := domain.DatasetSummary{
		SalesRecords: len(s.sales),
		PanelRecords: len(s.panel),
		SalesLoaded:  len(s.sales) > 0,
		PanelLoaded:  len(s.panel) > 0,
	}

	salesPeriods := make(map[time.Time]bool)
	var first, last time.Time
	for _, r := range s.sales {
		salesPeriods[r.Period] = true
		if first.IsZero() || r.Period.Before(first) {
			first = r.Period
		}
		if r.Period.After(last) {
			last = r.Period
		}
	}
	summary.SalesPeriods = len(salesPeriods)

	panelPeriods := make(map[time.Time]bool)
	for _, r := range s.panel {
		panelPeriods[r.Period] = true
		if first.IsZero() || r.Period.Before(first) {
			first = r.Period
		}
		if r.Period.After(last) {
			last = r.Period
		}
	}
	summary.PanelPeriods = len(panelPeriods)

	if !first.IsZero() {
		summary.FirstPeriod = &first
	}
	if !last.IsZero() {
		summary.LastPeriod = &last
	}

	return summary
}
