package ports

import "context"

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis", "ledger_node").
	Name() string
}

// PingFunc adapts a named probe to HealthChecker.
type PingFunc struct {
	Component string
	Probe     func(ctx context.Context) error
}

func (p PingFunc) Ping(ctx context.Context) error { return p.Probe(ctx) }

func (p PingFunc) Name() string { return p.Component }
