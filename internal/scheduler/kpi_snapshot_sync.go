package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pharmadash/pharma-dashboard-api/infrastructure/repository"
	"github.com/pharmadash/pharma-dashboard-api/internal/config"
	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pharmadash/pharma-dashboard-api/internal/usecases/analytics"
	"github.com/pharmadash/pharma-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// KPISnapshotSyncConfig representa a configuração do agendador de snapshots de KPIs
type KPISnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	RetentionDays int
}

// KPISnapshotSyncService gerencia o agendamento da fotografia diária dos
// indicadores executivos sobre o período histórico completo
type KPISnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              KPISnapshotSyncConfig
	snapshotRepo        repository.KPISnapshotRepository
	analyzer            analytics.Analyzer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewKPISnapshotSyncService cria uma nova instância do serviço de snapshots de KPIs
func NewKPISnapshotSyncService(
	snapshotRepo repository.KPISnapshotRepository,
	analyzer analytics.Analyzer,
	appConfig *config.Config,
) *KPISnapshotSyncService {
	syncConfig := KPISnapshotSyncConfig{
		CronSchedule:  appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:   appConfig.SnapshotSync.Enabled,
		RetentionDays: appConfig.SnapshotSync.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"sync_enabled":   syncConfig.SyncEnabled,
		"retention_days": syncConfig.RetentionDays,
	}).Info("Configuração do agendador de snapshots de KPIs carregada")

	return &KPISnapshotSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		snapshotRepo: snapshotRepo,
		analyzer:     analyzer,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *KPISnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshot diário de KPIs desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de KPIs")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshot()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de KPIs: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de KPIs")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshot calcula os indicadores do período completo e persiste a
// fotografia do dia. Uma execução por vez; reexecução no mesmo dia
// sobrescreve o snapshot existente.
func (s *KPISnapshotSyncService) syncSnapshot() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de KPIs já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	// Identificador curto da execução para correlacionar os logs do ciclo
	runID, _ := utils.GenerateID()

	logrus.WithField("run_id", runID).Info("Iniciando snapshot diário de KPIs")

	snapshot, err := s.buildSnapshot(startTime)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao calcular snapshot de KPIs")
		return
	}

	existing, err := s.snapshotRepo.GetByDate(snapshot.Date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Warn("Erro ao consultar snapshot existente, seguindo com a gravação")
	} else if existing != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"date":   snapshot.Date.Format(time.DateOnly),
		}).Info("Snapshot já existente para a data será sobrescrito")
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"date":   snapshot.Date.Format(time.DateOnly),
			"error":  err.Error(),
		}).Error("Erro ao salvar snapshot de KPIs no banco de dados")
		return
	}

	s.applyRetention(runID)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"run_id":   runID,
		"date":     snapshot.Date.Format(time.DateOnly),
		"duration": duration.String(),
		"score":    snapshot.Score.TotalScore,
	}).Info("Snapshot diário de KPIs concluído")

	s.lastSyncCompletedAt = time.Now()
}

// buildSnapshot monta a fotografia dos indicadores sobre o período completo
// (recorte nil). Snapshot sem nenhuma fonte carregada é erro, não um
// registro zerado.
func (s *KPISnapshotSyncService) buildSnapshot(date time.Time) (*domain.KPISnapshot, error) {
	revenue := s.analyzer.RevenueMetrics(nil)
	marketShare := s.analyzer.MarketShareMetrics(nil)

	if !revenue.Available && !marketShare.Available {
		return nil, domain.ErrDataUnavailable
	}

	// Valores monetários e percentuais persistidos com duas casas decimais
	revenue.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue.TotalRevenue)
	revenue.AvgPrice = utils.RoundWithTwoDecimalPlace(revenue.AvgPrice)

	growth := s.analyzer.GrowthRates(nil, 0)
	growth.RevenueGrowth = utils.RoundWithTwoDecimalPlace(growth.RevenueGrowth)

	score := s.analyzer.PerformanceScore(nil)
	score.TotalScore = utils.RoundWithTwoDecimalPlace(score.TotalScore)

	return &domain.KPISnapshot{
		Date:        date,
		Revenue:     revenue,
		MarketShare: marketShare,
		Growth:      growth,
		Score:       score,
	}, nil
}

// applyRetention remove snapshots mais antigos que a janela de retenção
// configurada. Retenção zero mantém o histórico completo.
func (s *KPISnapshotSyncService) applyRetention(runID string) {
	if s.config.RetentionDays <= 0 {
		return
	}

	removed, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": runID,
			"error":  err.Error(),
		}).Error("Erro ao aplicar retenção de snapshots de KPIs")
		return
	}

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"run_id":         runID,
			"removed":        removed,
			"retention_days": s.config.RetentionDays,
		}).Info("Snapshots antigos removidos pela política de retenção")
	}
}

// TriggerManualSync inicia manualmente um snapshot de KPIs
func (s *KPISnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de KPIs já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de KPIs")
	go s.syncSnapshot()
}

// GetStatus retorna o status atual do agendador
func (s *KPISnapshotSyncService) GetStatus() map[string]any {
	retentionPolicy := "dados mantidos permanentemente"
	if s.config.RetentionDays > 0 {
		retentionPolicy = fmt.Sprintf("snapshots mantidos por %d dias", s.config.RetentionDays)
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_policy":       retentionPolicy,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
