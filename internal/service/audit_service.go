package service

import (
	"context"
	"time"

	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries only go to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
func (s *auditService) Log(_ context.Context, entry *domain.AuditLog) {
	go func() {
		wallet := ""
		if entry.WalletAddress != nil {
			wallet = *entry.WalletAddress
		}
		s.log.Info().
			Str("action", string(entry.Action)).
			Str("wallet", wallet).
			Str("resource_type", entry.ResourceType).
			Str("ip", entry.IPAddress).
			RawJSON("details", detailsJSON(entry.Details)).
			Msg("audit")

		if s.repo == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}

func detailsJSON(details string) []byte {
	if details == "" {
		return []byte("{}")
	}
	return []byte(details)
}
