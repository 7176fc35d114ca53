package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-ChefReservationService/pkg/metrics"
)

// DefaultPoolStatsInterval период сбора статистики connection pool
const DefaultPoolStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, которая пишет длительность запросов в prometheus
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB. metrics может быть nil - тогда запросы не измеряются
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор статистики пула до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, poolName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)
	go wrapped.collectPoolStats(poolName, DefaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(poolName string, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetPoolStats(poolName, stats.OpenConnections, stats.InUse, stats.Idle)
		case <-stopCh:
			return
		}
	}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveQuery(operation(query), time.Since(start), err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveQuery(operation(query), time.Since(start), err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveQuery(operation(query), time.Since(start), row.Err())
	return row
}

// BeginTx начинает транзакцию, запросы внутри которой тоже измеряются
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &meteredTx{tx: tx, metrics: d.metrics}, nil
}

type meteredTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *meteredTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveQuery(operation(query), time.Since(start), err)
	return res, err
}

func (t *meteredTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveQuery(operation(query), time.Since(start), err)
	return rows, err
}

func (t *meteredTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveQuery(operation(query), time.Since(start), row.Err())
	return row
}

func (t *meteredTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.metrics.ObserveQuery("commit", time.Since(start), err)
	return err
}

func (t *meteredTx) Rollback() error {
	return t.tx.Rollback()
}

// operation первое слово запроса в нижнем регистре (select, insert, ...)
func operation(query string) string {
	q := strings.TrimSpace(query)
	if i := strings.IndexAny(q, " \n\t"); i > 0 {
		q = q[:i]
	}
	return strings.ToLower(q)
}
