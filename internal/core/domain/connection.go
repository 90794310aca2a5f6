package domain

import "time"

// GitHubConnection links a wallet to a GitHub account. Written by the OAuth flow, read-only here.
type GitHubConnection struct {
	WalletAddress   string    `json:"wallet_address"`
	GitHubID        int64     `json:"github_id"`
	GitHubUsername  string    `json:"github_username"`
	GitHubAvatarURL string    `json:"github_avatar_url"`
	AccessTokenEnc  string    `json:"-"`
	Repository      *string   `json:"repository,omitempty"` // narrow the check to one repo
	UpdatedAt       time.Time `json:"updated_at"`
}

// StravaConnection links a wallet to a Strava athlete. Written by the OAuth flow, read-only here.
type StravaConnection struct {
	WalletAddress  string    `json:"wallet_address"`
	AthleteID      int64     `json:"athlete_id"`
	AccessTokenEnc string    `json:"-"`
	ExpiresAt      time.Time `json:"expires_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Expired reports whether the stored Strava token is past its expiry.
func (c *StravaConnection) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
