package main

import (
	"context"
	"errors"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pharmadash/pharma-dashboard-api/infrastructure/database/postgres"
	"github.com/pharmadash/pharma-dashboard-api/infrastructure/dataset"
	"github.com/pharmadash/pharma-dashboard-api/infrastructure/repository"
	"github.com/pharmadash/pharma-dashboard-api/internal/api"
	"github.com/pharmadash/pharma-dashboard-api/internal/config"
	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
	"github.com/pharmadash/pharma-dashboard-api/internal/scheduler"
	"github.com/pharmadash/pharma-dashboard-api/internal/usecases/analytics"
	"github.com/pharmadash/pharma-dashboard-api/internal/usecases/authenticating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	snapshotRepo := repository.NewKPISnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Carrega as bases locais em memória. Base ausente não derruba a API:
	// os endpoints respondem com métricas indisponíveis até o próximo deploy.
	store := dataset.NewStore(cfg.Datasets)
	if err := store.Load(); err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			logrus.WithError(err).Warn("Nenhuma base de dados carregada, dashboard iniciando sem métricas")
		} else {
			logrus.WithError(err).Fatal("Erro ao carregar as bases de dados")
		}
	}

	summary := store.Summary()
	logrus.WithFields(logrus.Fields{
		"sales_loaded":  summary.SalesLoaded,
		"sales_records": summary.SalesRecords,
		"panel_loaded":  summary.PanelLoaded,
		"panel_records": summary.PanelRecords,
	}).Info("Bases de dados carregadas")

	analyticsService := analytics.NewService(store)

	// Inicializa o agendador de snapshots diários de KPIs
	kpiSnapshotSyncService := scheduler.NewKPISnapshotSyncService(
		snapshotRepo,
		analyticsService,
		cfg,
	)

	if err := kpiSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de KPIs")
	} else {
		logrus.Info("Agendador de snapshots de KPIs iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		snapshotRepo,
		kpiSnapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
