package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"habit-agent/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ReconciliationJournal implements ports.ReconciliationJournal as a Redis list, newest first.
type ReconciliationJournal struct {
	client *goredis.Client
	key    string
}

func NewReconciliationJournal(client *goredis.Client) *ReconciliationJournal {
	return &ReconciliationJournal{
		client: client,
		key:    "reconciliation:orphans",
	}
}

func (j *ReconciliationJournal) Append(ctx context.Context, orphan *domain.OrphanedTransaction) error {
	payload, err := json.Marshal(orphan)
	if err != nil {
		return fmt.Errorf("marshal orphan: %w", err)
	}
	if err := j.client.LPush(ctx, j.key, payload).Err(); err != nil {
		return fmt.Errorf("redis journal push: %w", err)
	}
	return nil
}

// List returns up to limit entries; limit <= 0 returns all.
func (j *ReconciliationJournal) List(ctx context.Context, limit int64) ([]domain.OrphanedTransaction, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}
	raw, err := j.client.LRange(ctx, j.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis journal range: %w", err)
	}

	out := make([]domain.OrphanedTransaction, 0, len(raw))
	for _, item := range raw {
		var o domain.OrphanedTransaction
		if err := json.Unmarshal([]byte(item), &o); err != nil {
			return nil, fmt.Errorf("unmarshal orphan: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}
