package ports

import (
	"context"
	"time"

	"habit-agent/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// CheckInLedger is the durable record of confirmed check-ins.
// At most one record exists per (wallet, challenge, date); rows are never updated or deleted.
type CheckInLedger interface {
	Exists(ctx context.Context, wallet string, challengeID int64, date time.Time) (bool, error)
	// RecordIfAbsent inserts rec unless its key is already present. It never overwrites.
	RecordIfAbsent(ctx context.Context, rec *domain.CheckInRecord) (domain.RecordResult, error)
	// ListByWallet returns the newest records first.
	ListByWallet(ctx context.Context, wallet string, limit int) ([]domain.CheckInRecord, error)
}

// ConnectionRepository reads OAuth connections. Both getters return nil, nil when absent.
type ConnectionRepository interface {
	GetGitHub(ctx context.Context, wallet string) (*domain.GitHubConnection, error)
	GetStrava(ctx context.Context, wallet string) (*domain.StravaConnection, error)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
