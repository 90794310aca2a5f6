package dto

import (
	"time"

	"habit-agent/internal/core/domain"
)

// WalletQuery identifies the caller by wallet address.
type WalletQuery struct {
	WalletAddress string `form:"wallet_address" binding:"required,eth_wallet"`
}

// CheckInQuery is the query string of the GitHub and Strava check-in endpoints.
// Without a challenge id the activity is verified but nothing is recorded.
// Challenge ids are per-user contract indexes and start at 0.
type CheckInQuery struct {
	WalletAddress string `form:"wallet_address" binding:"required,eth_wallet"`
	ChallengeID   *int64 `form:"challenge_id" binding:"omitempty,min=0"`
}

// ReadingCheckInRequest is the request body for a graded reading note.
// An empty note is not a binding error; the grader rejects it with a friendly reason.
type ReadingCheckInRequest struct {
	WalletAddress string `json:"wallet_address" binding:"required,eth_wallet"`
	ChallengeID   *int64 `json:"challenge_id" binding:"omitempty,min=0"`
	Content       string `json:"content" binding:"max=5000" sanitize:"trim"`
}

// ReadingStatusQuery asks whether today's reading check-in exists.
type ReadingStatusQuery struct {
	WalletAddress string `form:"wallet_address" binding:"required,eth_wallet"`
	ChallengeID   *int64 `form:"challenge_id" binding:"required,min=0"`
}

// HistoryQuery lists a wallet's recorded check-ins.
type HistoryQuery struct {
	WalletAddress string `form:"wallet_address" binding:"required,eth_wallet"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ReconciliationQuery pages through journaled orphaned transactions.
type ReconciliationQuery struct {
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=500"`
}

// CheckInResponse is the response body of every check-in endpoint.
type CheckInResponse struct {
	Success   bool   `json:"success"`
	ClockedIn bool   `json:"clocked_in"`
	Outcome   string `json:"outcome"`
	TxHash    string `json:"tx_hash,omitempty"`
	Message   string `json:"message"`
}

// NewCheckInResponse maps a domain result. Detail stays server-side.
func NewCheckInResponse(res *domain.CheckInResult) CheckInResponse {
	return CheckInResponse{
		Success:   true,
		ClockedIn: res.ClockedIn,
		Outcome:   string(res.Outcome),
		TxHash:    res.TxHash,
		Message:   res.Message,
	}
}

// TodayStatusResponse reports today's check-in state for one challenge.
type TodayStatusResponse struct {
	Date      string `json:"date"`
	CheckedIn bool   `json:"checked_in"`
}

// CheckInRecordResponse is one row of a wallet's history.
type CheckInRecordResponse struct {
	ChallengeID  int64   `json:"challenge_id"`
	CheckInDate  string  `json:"check_in_date"`
	TxHash       *string `json:"tx_hash,omitempty"`
	ProofContent *string `json:"proof_content,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// HistoryResponse wraps a wallet's check-in history.
type HistoryResponse struct {
	WalletAddress string                  `json:"wallet_address"`
	Records       []CheckInRecordResponse `json:"records"`
	Count         int                     `json:"count"`
}

// NewHistoryResponse converts ledger rows into their wire form.
func NewHistoryResponse(wallet string, recs []domain.CheckInRecord) HistoryResponse {
	out := make([]CheckInRecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, CheckInRecordResponse{
			ChallengeID:  r.ChallengeID,
			CheckInDate:  r.CheckInDate.Format(domain.DateLayout),
			TxHash:       r.TxHash,
			ProofContent: r.ProofContent,
			CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return HistoryResponse{WalletAddress: wallet, Records: out, Count: len(out)}
}

// GitHubConnectionResponse reports whether a wallet has linked GitHub.
type GitHubConnectionResponse struct {
	Connected  bool    `json:"connected"`
	Username   string  `json:"username,omitempty"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
	Repository *string `json:"repository,omitempty"`
}

// ReconciliationResponse lists broadcast transactions missing a ledger row.
type ReconciliationResponse struct {
	Orphans []domain.OrphanedTransaction `json:"orphans"`
	Count   int                          `json:"count"`
}
