package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"habit-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthProbeTimeout = 3 * time.Second

type dependencyStatus struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

// HealthCheck probes every dependency in parallel and reports 503 when any of them is down.
// A slow ledger node therefore costs at most one probe timeout.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu   sync.Mutex
			deps = make(map[string]dependencyStatus, len(checkers))
			g    errgroup.Group
		)

		for _, checker := range checkers {
			g.Go(func() error {
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthProbeTimeout)
				defer cancel()

				start := time.Now()
				err := checker.Ping(ctx)
				st := dependencyStatus{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					st.Status = "unhealthy"
					st.Error = err.Error()
				}

				mu.Lock()
				deps[checker.Name()] = st
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		status, httpCode := "healthy", http.StatusOK
		for _, d := range deps {
			if d.Status != "healthy" {
				status, httpCode = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
