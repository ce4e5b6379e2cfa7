package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Datasets     Datasets     `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Datasets aponta para as fontes locais de dados e fixa a janela histórica
// de reporte. O corte é uma constante de deploy, não um parâmetro das
// análises; o filtro de datas por consulta é outra coisa.
type Datasets struct {
	SalesFile      string    `mapstructure:"dataset_sales_file"`
	PanelDir       string    `mapstructure:"dataset_panel_dir"`
	PanelPattern   string    `mapstructure:"dataset_panel_pattern"`
	HistoryStart   string    `mapstructure:"dataset_history_start"`
	HistoryCutoff  string    `mapstructure:"dataset_history_cutoff"`
	historyStartAt time.Time `mapstructure:"-"`
	historyCutAt   time.Time `mapstructure:"-"`
}

// HistoryWindow retorna os limites da janela histórica já convertidos.
func (d Datasets) HistoryWindow() (time.Time, time.Time) {
	return d.historyStartAt, d.historyCutAt
}

// NewDatasets monta a configuração de fontes com a janela histórica já
// resolvida. Caminho para testes e ferramentas; em produção os campos vêm
// do ambiente via NewConfig.
func NewDatasets(salesFile, panelDir, panelPattern string, start, cutoff time.Time) Datasets {
	return Datasets{
		SalesFile:      salesFile,
		PanelDir:       panelDir,
		PanelPattern:   panelPattern,
		HistoryStart:   start.Format(time.DateOnly),
		HistoryCutoff:  cutoff.Format(time.DateOnly),
		historyStartAt: start,
		historyCutAt:   cutoff,
	}
}

type SnapshotSync struct {
	CronSchedule  string `mapstructure:"kpi_snapshot_sync_cron"`
	Enabled       bool   `mapstructure:"kpi_snapshot_sync_enabled"`
	RetentionDays int    `mapstructure:"kpi_snapshot_retention_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATASET_SALES_FILE", "data/preco.csv")
	viper.SetDefault("DATASET_PANEL_DIR", "data")
	viper.SetDefault("DATASET_PANEL_PATTERN", "historico_iqvia_*.parquet")
	viper.SetDefault("DATASET_HISTORY_START", "2025-01-01")  // Início do período de reporte
	viper.SetDefault("DATASET_HISTORY_CUTOFF", "2025-09-30") // Corte fixo do período de reporte

	viper.SetDefault("KPI_SNAPSHOT_SYNC_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("KPI_SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("KPI_SNAPSHOT_RETENTION_DAYS", 0) // 0 mantém os snapshots permanentemente

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Datasets.historyStartAt, err = time.Parse(time.DateOnly, config.Datasets.HistoryStart)
	if err != nil {
		return nil, fmt.Errorf("DATASET_HISTORY_START inválido %q: %w", config.Datasets.HistoryStart, err)
	}

	config.Datasets.historyCutAt, err = time.Parse(time.DateOnly, config.Datasets.HistoryCutoff)
	if err != nil {
		return nil, fmt.Errorf("DATASET_HISTORY_CUTOFF inválido %q: %w", config.Datasets.HistoryCutoff, err)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
