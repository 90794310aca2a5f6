package domain

import "time"

// OrphanedTransaction is a chain write whose ledger row could not be persisted.
// It is journaled for out-of-band reconciliation tooling; this service never resolves it.
type OrphanedTransaction struct {
	WalletAddress string    `json:"wallet_address"`
	ChallengeID   int64     `json:"challenge_id"`
	CheckInDate   string    `json:"check_in_date"`
	TxHash        string    `json:"tx_hash"`
	ProofContent  *string   `json:"proof_content,omitempty"`
	Error         string    `json:"error"`
	DetectedAt    time.Time `json:"detected_at"`
}
