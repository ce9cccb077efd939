// Package store opens the PostgreSQL connection a Behavior resolves
// against: a pgx pool with OpenTelemetry instrumentation wrapped in a
// GORM handle. The resolver itself is storage-agnostic; anything that can
// produce a *gorm.DB works.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store owns one database connection pool.
type Store struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

// DB returns the handle scoped to the supplied context.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Close releases the underlying pool, if this store owns one.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Open connects to PostgreSQL. The dsn may be a key=value DSN or a
// postgres:// URL.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	o := newOptions(opts...)

	cleanedDSN, err := cleanPostgresDSN(dsn)
	if err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(cleanedDSN)
	if err != nil {
		return nil, fmt.Errorf("parse connection config: %w", err)
	}

	cfg.ConnConfig.Tracer = otelpgx.NewTracer()
	if o.MaxConns > 0 {
		cfg.MaxConns = o.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err = otelpgx.RecordStats(pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to record database stats: %w", err)
	}

	gormDB, err := openGorm(stdlib.OpenDBFromPool(pool), o)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{db: gormDB, pool: pool}, nil
}

// OpenWithConn wraps an existing database/sql connection whose lifecycle
// is managed elsewhere (tests, externally pooled connections).
func OpenWithConn(conn *sql.DB, opts ...Option) (*Store, error) {
	gormDB, err := openGorm(conn, newOptions(opts...))
	if err != nil {
		return nil, err
	}

	return &Store{db: gormDB}, nil
}

func openGorm(conn *sql.DB, o *Options) (*gorm.DB, error) {
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 conn,
			PreferSimpleProtocol: o.PreferSimpleProtocol,
		}),
		&gorm.Config{SkipDefaultTransaction: o.SkipDefaultTransaction},
	)
	if err != nil {
		return nil, fmt.Errorf("open gorm handle: %w", err)
	}

	return gormDB, nil
}

// cleanPostgresDSN checks if the input is already a DSN, otherwise converts a PostgreSQL URL to DSN.
func cleanPostgresDSN(pgString string) (string, error) {
	trimmed := strings.TrimSpace(pgString)
	// Heuristic: if it contains '=' and does not start with postgres:// or postgresql://, treat as DSN
	lower := strings.ToLower(trimmed)
	if strings.Contains(trimmed, "=") && !strings.HasPrefix(lower, "postgres://") &&
		!strings.HasPrefix(lower, "postgresql://") {
		return trimmed, nil
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", err
	}

	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("invalid scheme: %s", u.Scheme)
	}

	user := ""
	password := ""
	if u.User != nil {
		user = u.User.Username()
		password, _ = u.User.Password()
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	dbname := strings.TrimPrefix(u.Path, "/")

	dsn := []string{
		"host=" + host,
		"port=" + port,
		"user=" + user,
		"password=" + password,
		"dbname=" + dbname,
	}
	for k, vals := range u.Query() {
		for _, v := range vals {
			dsn = append(dsn, fmt.Sprintf("%s=%s", k, v))
		}
	}
	return strings.Join(dsn, " "), nil
}
