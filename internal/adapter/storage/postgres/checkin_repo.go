package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit-agent/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// CheckInRepo implements ports.CheckInLedger.
// The (wallet_address, challenge_id, check_in_date) unique constraint is what
// makes RecordIfAbsent safe under concurrent writers.
type CheckInRepo struct {
	pool Pool
}

// NewCheckInRepo creates a new CheckInRepo.
func NewCheckInRepo(pool Pool) *CheckInRepo {
	return &CheckInRepo{pool: pool}
}

// Exists reports whether a record is stored for the triple.
func (r *CheckInRepo) Exists(ctx context.Context, wallet string, challengeID int64, date time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM checkin_records
		WHERE wallet_address = $1 AND challenge_id = $2 AND check_in_date = $3)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, wallet, challengeID, domain.CivilDate(date)).Scan(&exists); err != nil {
		return false, fmt.Errorf("checkin exists: %w", err)
	}
	return exists, nil
}

// RecordIfAbsent inserts rec in a single statement. A row already present for
// the key is left untouched and reported as RecordAlreadyPresent.
func (r *CheckInRepo) RecordIfAbsent(ctx context.Context, rec *domain.CheckInRecord) (domain.RecordResult, error) {
	query := `INSERT INTO checkin_records (wallet_address, challenge_id, check_in_date, created_at, proof_content, tx_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (wallet_address, challenge_id, check_in_date) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		rec.WalletAddress, rec.ChallengeID, domain.CivilDate(rec.CheckInDate),
		rec.CreatedAt, rec.ProofContent, rec.TxHash,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.RecordAlreadyPresent, nil
		}
		return "", fmt.Errorf("insert checkin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.RecordAlreadyPresent, nil
	}
	return domain.RecordInserted, nil
}

// ListByWallet returns the wallet's records, newest day first.
func (r *CheckInRepo) ListByWallet(ctx context.Context, wallet string, limit int) ([]domain.CheckInRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	query := `SELECT wallet_address, challenge_id, check_in_date, created_at, proof_content, tx_hash
		FROM checkin_records WHERE wallet_address = $1
		ORDER BY check_in_date DESC, challenge_id ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, wallet, limit)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	var out []domain.CheckInRecord
	for rows.Next() {
		var rec domain.CheckInRecord
		if err := rows.Scan(&rec.WalletAddress, &rec.ChallengeID, &rec.CheckInDate,
			&rec.CreatedAt, &rec.ProofContent, &rec.TxHash); err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkins: %w", err)
	}
	return out, nil
}
