package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var midnight = time.Date(2024, 3, 9, 16, 0, 0, 0, time.UTC)

func TestGitHubClient_PushEventsSince(t *testing.T) {
	tests := []struct {
		name   string
		events string
		want   bool
	}{
		{"push today", `[{"type":"WatchEvent","created_at":"2024-03-09T18:00:00Z"},{"type":"PushEvent","created_at":"2024-03-09T17:00:00Z"}]`, true},
		{"push yesterday only", `[{"type":"PushEvent","created_at":"2024-03-09T15:59:59Z"}]`, false},
		{"no events", `[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/octo/events", r.URL.Path)
				assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(tt.events))
			}))
			defer srv.Close()

			c := NewGitHubClient(srv.URL)
			got, err := c.HasCommitsSince(context.Background(), "octo", "", "gh-token", midnight)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGitHubClient_RepoCommitsSince(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octo/habits/commits", r.URL.Path)
		assert.Equal(t, "2024-03-09T16:00:00Z", r.URL.Query().Get("since"))
		_, _ = w.Write([]byte(`[{"sha":"abc"}]`))
	}))
	defer srv.Close()

	c := NewGitHubClient(srv.URL)
	got, err := c.HasCommitsSince(context.Background(), "octo", "habits", "", midnight)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestGitHubClient_EmptyRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/other/repo/commits", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Git Repository is empty."}`))
	}))
	defer srv.Close()

	c := NewGitHubClient(srv.URL)
	got, err := c.HasCommitsSince(context.Background(), "octo", "other/repo", "", midnight)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestGitHubClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewGitHubClient(srv.URL)
	_, err := c.HasCommitsSince(context.Background(), "octo", "", "", midnight)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Status)
}

func TestStravaClient_HasRunSince(t *testing.T) {
	tests := []struct {
		name       string
		activities string
		want       bool
	}{
		{"run with distance", `[{"type":"Ride","distance":10000},{"type":"Run","distance":5012.3}]`, true},
		{"zero distance run", `[{"type":"Run","distance":0}]`, false},
		{"case insensitive", `[{"type":"run","distance":1}]`, true},
		{"only walks", `[{"type":"Walk","distance":3000}]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/athlete/activities", r.URL.Path)
				assert.Equal(t, "1710000000", r.URL.Query().Get("after"))
				assert.Equal(t, "Bearer sv-token", r.Header.Get("Authorization"))
				_, _ = w.Write([]byte(tt.activities))
			}))
			defer srv.Close()

			c := NewStravaClient(srv.URL)
			got, err := c.HasRunSince(context.Background(), "sv-token", time.Unix(1710000000, 0))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStravaClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewStravaClient(srv.URL).HasRunSince(context.Background(), "expired", midnight)
	assert.Error(t, err)
}

func graderServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-v3", req.Model)
		assert.InDelta(t, 0.7, req.Temperature, 0.0001)
		assert.Equal(t, "json_object", req.ResponseFormat["type"])
		if assert.Len(t, req.Messages, 2) {
			assert.Equal(t, "system", req.Messages[0].Role)
			assert.Contains(t, req.Messages[0].Content, "at least ten characters")
			assert.Contains(t, req.Messages[1].Content, "habits compound")
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		})
	}))
}

func TestChatGrader_Grade(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantPass   bool
		wantReason string
	}{
		{"plain json", `{"pass": true, "reason": "Fine, you read something."}`, true, "Fine, you read something."},
		{"fenced json", "```json\n{\"pass\": false, \"reason\": \"Lazy.\"}\n```", false, "Lazy."},
		{"bare fence", "```{\"pass\": true, \"reason\": \"ok\"}```", true, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := graderServer(t, tt.content)
			defer srv.Close()

			g := NewChatGrader(GraderConfig{APIURL: srv.URL, APIKey: "sk-test", Temperature: 0.7})
			pass, reason, err := g.Grade(context.Background(), "Chapter 4: habits compound like interest.")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPass, pass)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestChatGrader_MalformedVerdict(t *testing.T) {
	srv := graderServer(t, "I think it passes")
	defer srv.Close()

	g := NewChatGrader(GraderConfig{APIURL: srv.URL, APIKey: "sk-test", Temperature: 0.7})
	_, _, err := g.Grade(context.Background(), "habits compound")
	assert.Error(t, err)
}

func TestChatGrader_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()

	g := NewChatGrader(GraderConfig{APIURL: u}, WithHTTPClient(&http.Client{Timeout: time.Second}))
	_, _, err := g.Grade(context.Background(), "anything")
	assert.Error(t, err)
}
