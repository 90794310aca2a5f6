package postgres

import (
	"context"
	"fmt"

	"habit-agent/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// applicationName tags agent sessions in pg_stat_activity.
const applicationName = "habit-agent"

// poolConfig maps DatabaseConfig onto pgxpool settings. Zero values keep pgx defaults,
// and min_conns is clamped so a misconfigured floor cannot exceed the ceiling.
func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing ledger database dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = min(cfg.MinConns, pc.MaxConns)
	if cfg.ConnMaxLifetime > 0 {
		pc.MaxConnLifetime = cfg.ConnMaxLifetime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = applicationName
	return pc, nil
}

// NewPool opens the pool shared by the check-in ledger, source connections and the
// audit log. It fails fast when the database is unreachable at startup.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("opening ledger pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ledger database unreachable at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	log.Info().
		Str("component", "ledger_db").
		Str("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)).
		Str("dbname", cfg.DBName).
		Int32("min_conns", pc.MinConns).
		Int32("max_conns", pc.MaxConns).
		Dur("conn_max_lifetime", pc.MaxConnLifetime).
		Msg("ledger database ready")

	return pool, nil
}
