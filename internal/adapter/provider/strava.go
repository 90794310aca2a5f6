package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// StravaClient implements ports.RunActivityChecker against the Strava v3 API.
type StravaClient struct {
	base
}

func NewStravaClient(apiURL string, opts ...Option) *StravaClient {
	if apiURL == "" {
		apiURL = "https://www.strava.com/api/v3"
	}
	return &StravaClient{base: newBase(apiURL, opts)}
}

type stravaActivity struct {
	Type     string  `json:"type"`
	Distance float64 `json:"distance"` // meters
}

// HasRunSince reports whether any activity after since is a run with positive distance.
func (c *StravaClient) HasRunSince(ctx context.Context, token string, since time.Time) (bool, error) {
	u := fmt.Sprintf("%s/athlete/activities?after=%d&per_page=50", c.baseURL, since.Unix())
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)

	var activities []stravaActivity
	if err := c.getJSON(ctx, "strava", u, h, &activities); err != nil {
		return false, err
	}
	for _, a := range activities {
		if strings.EqualFold(a.Type, "Run") && a.Distance > 0 {
			return true, nil
		}
	}
	return false, nil
}
