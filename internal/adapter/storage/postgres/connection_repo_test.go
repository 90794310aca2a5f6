package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionRepo_GetGitHub(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewConnectionRepo(mock)
	updated := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT wallet_address, github_id").
		WithArgs("0xabc").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_address", "github_id", "github_username", "github_avatar_url", "access_token", "repository", "updated_at"}).
			AddRow("0xabc", int64(42), "octo", "https://avatars/octo", "enc-token", strPtr("octo/habits"), updated))

	c, err := repo.GetGitHub(context.Background(), "0xabc")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "octo", c.GitHubUsername)
	assert.Equal(t, "enc-token", c.AccessTokenEnc)
	assert.Equal(t, "octo/habits", *c.Repository)
}

func TestConnectionRepo_GetGitHub_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewConnectionRepo(mock)
	mock.ExpectQuery("SELECT wallet_address, github_id").
		WithArgs("0xabc").
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.GetGitHub(context.Background(), "0xabc")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestConnectionRepo_GetStrava(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewConnectionRepo(mock)
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT wallet_address, strava_athlete_id").
		WithArgs("0xabc").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_address", "strava_athlete_id", "access_token", "expires_at", "updated_at"}).
			AddRow("0xabc", int64(7), "enc", expires, expires))

	c, err := repo.GetStrava(context.Background(), "0xabc")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(7), c.AthleteID)
	assert.Equal(t, expires, c.ExpiresAt)
}

func TestConnectionRepo_GetStrava_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewConnectionRepo(mock)
	mock.ExpectQuery("SELECT wallet_address, strava_athlete_id").WithArgs(pgxmock.AnyArg()).WillReturnError(pgx.ErrNoRows)

	c, err := repo.GetStrava(context.Background(), "0xabc")
	assert.NoError(t, err)
	assert.Nil(t, c)
}
