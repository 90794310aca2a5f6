package postgres

import (
	"context"
	"errors"
	"fmt"

	"habit-agent/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ConnectionRepo implements ports.ConnectionRepository over the tables the OAuth flow writes.
type ConnectionRepo struct {
	pool Pool
}

func NewConnectionRepo(pool Pool) *ConnectionRepo {
	return &ConnectionRepo{pool: pool}
}

// GetGitHub returns nil, nil when the wallet has not linked GitHub.
func (r *ConnectionRepo) GetGitHub(ctx context.Context, wallet string) (*domain.GitHubConnection, error) {
	query := `SELECT wallet_address, github_id, github_username, github_avatar_url, access_token, repository, updated_at
		FROM github_connection WHERE wallet_address = $1`

	c := &domain.GitHubConnection{}
	err := r.pool.QueryRow(ctx, query, wallet).Scan(
		&c.WalletAddress, &c.GitHubID, &c.GitHubUsername, &c.GitHubAvatarURL,
		&c.AccessTokenEnc, &c.Repository, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get github connection: %w", err)
	}
	return c, nil
}

// GetStrava returns nil, nil when the wallet has not linked Strava.
func (r *ConnectionRepo) GetStrava(ctx context.Context, wallet string) (*domain.StravaConnection, error) {
	query := `SELECT wallet_address, strava_athlete_id, access_token, expires_at, updated_at
		FROM strava_connection WHERE wallet_address = $1`

	c := &domain.StravaConnection{}
	err := r.pool.QueryRow(ctx, query, wallet).Scan(
		&c.WalletAddress, &c.AthleteID, &c.AccessTokenEnc, &c.ExpiresAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get strava connection: %w", err)
	}
	return c, nil
}
