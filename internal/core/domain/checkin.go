package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire and key format of a check-in date.
const DateLayout = "2006-01-02"

// CheckInRecord is one confirmed, ledger-backed day of challenge completion.
// Records are append-only: created once after a successful chain broadcast, never updated.
type CheckInRecord struct {
	WalletAddress string    `json:"wallet_address"`
	ChallengeID   int64     `json:"challenge_id"`
	CheckInDate   time.Time `json:"check_in_date"` // civil date, midnight UTC carrying the local Y-M-D
	CreatedAt     time.Time `json:"created_at"`
	ProofContent  *string   `json:"proof_content,omitempty"` // reading notes only
	TxHash        *string   `json:"tx_hash,omitempty"`
}

// Key returns the natural key of the record.
func (r *CheckInRecord) Key() CheckInKey {
	return CheckInKey{WalletAddress: r.WalletAddress, ChallengeID: r.ChallengeID, Date: r.CheckInDate}
}

// CheckInKey is the (wallet, challenge, day) triple that admits at most one record.
type CheckInKey struct {
	WalletAddress string
	ChallengeID   int64
	Date          time.Time
}

// String renders the key as "wallet:challenge:YYYY-MM-DD".
func (k CheckInKey) String() string {
	return fmt.Sprintf("%s:%d:%s", k.WalletAddress, k.ChallengeID, k.Date.Format(DateLayout))
}

// RecordResult is the outcome of an insert-if-absent on the ledger.
type RecordResult string

const (
	RecordInserted       RecordResult = "INSERTED"
	RecordAlreadyPresent RecordResult = "ALREADY_PRESENT"
)
