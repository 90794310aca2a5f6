package middleware

import (
	"encoding/json"
	"time"

	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records every check-in request once the handler has run, whatever
// its status. Handlers publish the wallet and outcome through the context.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		action, ok := routeActions[c.FullPath()]
		if !ok {
			return
		}

		var wallet *string
		if w := c.GetString(CtxWallet); w != "" {
			wallet = &w
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"outcome":    c.GetString(CtxOutcome),
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:            uuid.New(),
			WalletAddress: wallet,
			Action:        action,
			ResourceType:  "checkin",
			ResourceID:    c.GetString(CtxChallenge),
			IPAddress:     c.ClientIP(),
			Details:       string(details),
			CreatedAt:     time.Now(),
		})
	}
}

var routeActions = map[string]domain.AuditAction{
	"/api/v1/checkins/github":  domain.AuditActionCheckInGitHub,
	"/api/v1/checkins/strava":  domain.AuditActionCheckInStrava,
	"/api/v1/checkins/reading": domain.AuditActionCheckInReading,
}
