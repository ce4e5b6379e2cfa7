package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pharmadash/pharma-dashboard-api/infrastructure/database/postgres"
	"github.com/pharmadash/pharma-dashboard-api/internal/domain"
)

const kpiSnapshotsTable = "kpi_snapshots ks"

// snapshotMetrics é o payload JSONB persistido por snapshot.
type snapshotMetrics struct {
	Revenue     domain.RevenueMetrics     `json:"revenue"`
	MarketShare domain.MarketShareMetrics `json:"market_share"`
	Growth      domain.GrowthRates        `json:"growth"`
	Score       domain.PerformanceScore   `json:"score"`
}

type KPISnapshotRepository interface {
	GetByDate(date time.Time) (*domain.KPISnapshot, error)
	GetByDateRange(startDate, endDate time.Time) ([]*domain.KPISnapshot, error)
	SaveOrUpdate(snapshot *domain.KPISnapshot) error
	DeleteOlderThan(days int) (int64, error)
}

type kpiSnapshotRepository struct {
	conn *postgres.Connection
}

func NewKPISnapshotRepository(conn *postgres.Connection) KPISnapshotRepository {
	return &kpiSnapshotRepository{
		conn: conn,
	}
}

func (r *kpiSnapshotRepository) GetByDate(date time.Time) (*domain.KPISnapshot, error) {
	query, args, err := squirrel.
		Select("ks.id, ks.date, ks.metrics, ks.created_at, ks.updated_at").
		From(kpiSnapshotsTable).
		Where(squirrel.Eq{"ks.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *kpiSnapshotRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.KPISnapshot, error) {
	query, args, err := squirrel.
		Select("ks.id, ks.date, ks.metrics, ks.created_at, ks.updated_at").
		From(kpiSnapshotsTable).
		Where(squirrel.GtOrEq{"ks.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ks.date": endDate.Format(time.DateOnly)}).
		OrderBy("ks.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.KPISnapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *kpiSnapshotRepository) SaveOrUpdate(snapshot *domain.KPISnapshot) error {
	metricsJSON, err := json.Marshal(snapshotMetrics{
		Revenue:     snapshot.Revenue,
		MarketShare: snapshot.MarketShare,
		Growth:      snapshot.Growth,
		Score:       snapshot.Score,
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("kpi_snapshots").
		Columns("date", "metrics").
		Values(
			snapshot.Date.Format(time.DateOnly),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *kpiSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("kpi_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *kpiSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.KPISnapshot, error) {
	snapshot := &domain.KPISnapshot{}
	var metricsJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.unmarshalMetrics(snapshot, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *kpiSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.KPISnapshot, error) {
	snapshot := &domain.KPISnapshot{}
	var metricsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Date,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.unmarshalMetrics(snapshot, metricsJSON); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *kpiSnapshotRepository) unmarshalMetrics(snapshot *domain.KPISnapshot, metricsJSON []byte) error {
	if metricsJSON == nil {
		return nil
	}

	var metrics snapshotMetrics
	if err := json.Unmarshal(metricsJSON, &metrics); err != nil {
		return fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
	}

	snapshot.Revenue = metrics.Revenue
	snapshot.MarketShare = metrics.MarketShare
	snapshot.Growth = metrics.Growth
	snapshot.Score = metrics.Score

	return nil
}
