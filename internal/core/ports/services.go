package ports

import (
	"context"
	"math/big"
	"time"

	"habit-agent/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Infrastructure Ports ---

// ChainClient is a thin JSON-RPC client for the ledger node.
type ChainClient interface {
	// NonceFor returns the confirmed ("latest") transaction count of addr.
	NonceFor(ctx context.Context, addr string) (uint64, error)
	CurrentGasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	// Broadcast sends a 0x-prefixed signed raw transaction and returns its hash.
	Broadcast(ctx context.Context, signedTxHex string) (string, error)
}

// TransactionSigner submits recordDayComplete calls signed by the agent key.
type TransactionSigner interface {
	SubmitCompletion(ctx context.Context, userAddress string, challengeID int64) (string, error)
	AgentAddress() string
}

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService handles operator JWTs.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// CheckInCache is the Redis fast path in front of the ledger.
type CheckInCache interface {
	IsRecorded(ctx context.Context, key domain.CheckInKey) (bool, error)
	MarkRecorded(ctx context.Context, key domain.CheckInKey, txHash string) error
}

// DistributedLock serializes work on a key across server instances.
type DistributedLock interface {
	// Acquire blocks until the lock is held, wait elapses, or ctx is done.
	// The returned token must be passed to Release.
	Acquire(ctx context.Context, key string, ttl, wait time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

// ReconciliationJournal records chain writes whose ledger row is missing.
type ReconciliationJournal interface {
	Append(ctx context.Context, orphan *domain.OrphanedTransaction) error
	List(ctx context.Context, limit int64) ([]domain.OrphanedTransaction, error)
}

// --- Verification Ports ---

// VerificationSource decides whether the wallet's owner did today's task.
type VerificationSource interface {
	Kind() domain.SourceKind
	Check(ctx context.Context, wallet string, proof string) (domain.Verdict, error)
}

// CommitActivityChecker asks a code host about commits since a point in time.
type CommitActivityChecker interface {
	// HasCommitsSince narrows to repo ("owner/name") when non-empty.
	HasCommitsSince(ctx context.Context, username, repo, token string, since time.Time) (bool, error)
}

// RunActivityChecker asks a fitness tracker about runs since a point in time.
type RunActivityChecker interface {
	HasRunSince(ctx context.Context, token string, since time.Time) (bool, error)
}

// NoteGrader asks a language model whether a reading note is genuine.
type NoteGrader interface {
	Grade(ctx context.Context, note string) (pass bool, reason string, err error)
}

// --- Service Ports (Business Logic) ---

// CheckInService is the check-in orchestrator.
type CheckInService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (*domain.CheckInResult, error)
	TodayStatus(ctx context.Context, wallet string, challengeID int64) (*TodayStatus, error)
	History(ctx context.Context, wallet string, limit int) ([]domain.CheckInRecord, error)
}

// CheckInRequest holds validated input for a check-in.
type CheckInRequest struct {
	Wallet       string
	Source       domain.SourceKind
	ChallengeID  *int64
	ProofContent string
}

// TodayStatus reports whether today's ledger row exists for a challenge.
type TodayStatus struct {
	Date      string `json:"date"`
	CheckedIn bool   `json:"checked_in"`
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
