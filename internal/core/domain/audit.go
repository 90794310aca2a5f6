package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionCheckInGitHub  AuditAction = "CHECKIN_GITHUB"
	AuditActionCheckInStrava  AuditAction = "CHECKIN_STRAVA"
	AuditActionCheckInReading AuditAction = "CHECKIN_READING"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID            uuid.UUID   `json:"id"`
	WalletAddress *string     `json:"wallet_address,omitempty"`
	Action        AuditAction `json:"action"`
	ResourceType  string      `json:"resource_type"`
	ResourceID    string      `json:"resource_id,omitempty"`
	Details       string      `json:"details,omitempty"` // JSON string
	IPAddress     string      `json:"ip_address"`
	CreatedAt     time.Time   `json:"created_at"`
}
