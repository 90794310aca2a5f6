package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// CheckInDeps wires the orchestrator. Cache, Lock and Journal are optional (Redis-backed).
type CheckInDeps struct {
	Sources  []ports.VerificationSource
	Ledger   ports.CheckInLedger
	Signer   ports.TransactionSigner
	Cache    ports.CheckInCache
	Lock     ports.DistributedLock
	Journal  ports.ReconciliationJournal
	Clock    *domain.Clock
	LockTTL  time.Duration
	LockWait time.Duration
}

// CheckInServiceImpl implements ports.CheckInService.
//
// For a given (wallet, challenge, day) at most one chain submission is made:
// concurrent calls in this process share one singleflight execution, calls across
// processes queue on a Redis lock, and the ledger is re-read once the lock is held.
type CheckInServiceImpl struct {
	sources  map[domain.SourceKind]ports.VerificationSource
	ledger   ports.CheckInLedger
	signer   ports.TransactionSigner
	cache    ports.CheckInCache
	lock     ports.DistributedLock
	journal  ports.ReconciliationJournal
	clock    *domain.Clock
	lockTTL  time.Duration
	lockWait time.Duration
	group    singleflight.Group
	log      zerolog.Logger
}

// NewCheckInService creates a new check-in orchestrator.
func NewCheckInService(deps CheckInDeps, log zerolog.Logger) *CheckInServiceImpl {
	sources := make(map[domain.SourceKind]ports.VerificationSource, len(deps.Sources))
	for _, src := range deps.Sources {
		sources[src.Kind()] = src
	}
	if deps.LockTTL <= 0 {
		deps.LockTTL = 8 * time.Minute
	}
	if deps.LockWait <= 0 {
		deps.LockWait = 2 * time.Minute
	}
	return &CheckInServiceImpl{
		sources:  sources,
		ledger:   deps.Ledger,
		signer:   deps.Signer,
		cache:    deps.Cache,
		lock:     deps.Lock,
		journal:  deps.Journal,
		clock:    deps.Clock,
		lockTTL:  deps.LockTTL,
		lockWait: deps.LockWait,
		log:      log,
	}
}

// CheckIn verifies today's activity and, when a challenge is given, records it on-chain once.
// Rejections come back as errors; every other terminal state is a result.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context, req ports.CheckInRequest) (*domain.CheckInResult, error) {
	src, ok := s.sources[req.Source]
	if !ok {
		return nil, apperror.ErrUnknownSource(string(req.Source))
	}

	verdict, err := src.Check(ctx, req.Wallet, req.ProofContent)
	if err != nil {
		return nil, err
	}

	switch verdict.Status {
	case domain.VerdictSourceNotConnected:
		return nil, apperror.ErrSourceNotConnected(providerName(req.Source))
	case domain.VerdictValidationRejected:
		return nil, apperror.ErrValidationRejected(verdict.Reason)
	case domain.VerdictNotYetVerified:
		return domain.NewCheckInResult(domain.OutcomeNotYetVerified, notYetMessage(req.Source)), nil
	case domain.VerdictVerified:
	default:
		return nil, apperror.InternalError(fmt.Errorf("unknown verdict %q", verdict.Status))
	}

	if req.ChallengeID == nil {
		return domain.NewCheckInResult(domain.OutcomeActivityConfirmed, withReason(doneMessage(req.Source), verdict.Reason)), nil
	}

	key := domain.CheckInKey{
		WalletAddress: req.Wallet,
		ChallengeID:   *req.ChallengeID,
		Date:          s.clock.Today(),
	}

	recorded, err := s.alreadyRecorded(ctx, key)
	if err != nil {
		return s.ledgerUnavailable(key, req, err), nil
	}
	if recorded {
		return domain.NewCheckInResult(domain.OutcomeAlreadyRecorded, doneMessage(req.Source)+" (already recorded on-chain)"), nil
	}

	v, err, shared := s.group.Do(key.String(), func() (any, error) {
		return s.record(ctx, key, req, verdict)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.log.Debug().Str("key", key.String()).Msg("check-in joined an in-flight submission")
	}
	res := *v.(*domain.CheckInResult)
	return &res, nil
}

// alreadyRecorded consults the cache, then the ledger. A cache outage falls through to the ledger.
func (s *CheckInServiceImpl) alreadyRecorded(ctx context.Context, key domain.CheckInKey) (bool, error) {
	if s.cache != nil {
		hit, err := s.cache.IsRecorded(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key.String()).Msg("check-in cache unavailable, falling back to ledger")
		} else if hit {
			return true, nil
		}
	}

	exists, err := s.ledger.Exists(ctx, key.WalletAddress, key.ChallengeID, key.Date)
	if err != nil {
		return false, apperror.ErrDatabaseError(err)
	}
	if exists {
		s.markCached(ctx, key, "")
	}
	return exists, nil
}

// record runs once per key at a time. It does not honor caller cancellation:
// a broadcast that has started must be followed by its ledger write.
func (s *CheckInServiceImpl) record(ctx context.Context, key domain.CheckInKey, req ports.CheckInRequest, verdict domain.Verdict) (*domain.CheckInResult, error) {
	ctx = context.WithoutCancel(ctx)

	release, err := s.acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	defer release()

	exists, err := s.ledger.Exists(ctx, key.WalletAddress, key.ChallengeID, key.Date)
	if err != nil {
		return s.ledgerUnavailable(key, req, apperror.ErrDatabaseError(err)), nil
	}
	if exists {
		return domain.NewCheckInResult(domain.OutcomeAlreadyRecorded, doneMessage(req.Source)+" (already recorded on-chain)"), nil
	}

	txHash, err := s.signer.SubmitCompletion(ctx, key.WalletAddress, key.ChallengeID)
	if err != nil {
		s.log.Warn().Err(err).
			Str("key", key.String()).
			Str("error_code", apperror.CodeOf(err)).
			Msg("chain submission failed, activity still counts")
		res := domain.NewCheckInResult(domain.OutcomeSubmissionFailed,
			doneMessage(req.Source)+" (the on-chain record failed and will be retried on your next check-in)")
		res.Detail = err.Error()
		return res, nil
	}

	rec := &domain.CheckInRecord{
		WalletAddress: key.WalletAddress,
		ChallengeID:   key.ChallengeID,
		CheckInDate:   key.Date,
		CreatedAt:     s.clock.Now(),
		TxHash:        &txHash,
	}
	if req.Source == domain.SourceGradedNote {
		proof := req.ProofContent
		rec.ProofContent = &proof
	}

	// The transaction is out; mark the key before touching the ledger so a failed
	// write cannot lead to a second submission for the same day.
	s.markCached(ctx, key, txHash)

	result, err := s.ledger.RecordIfAbsent(ctx, rec)
	if err != nil {
		s.reportOrphan(ctx, rec, err)
		res := domain.NewCheckInResult(domain.OutcomeLedgerWriteFailed,
			doneMessage(req.Source)+" (recorded on-chain, local history will catch up)")
		res.TxHash = txHash
		res.Detail = err.Error()
		return res, nil
	}
	if result == domain.RecordAlreadyPresent {
		s.log.Error().
			Str("key", key.String()).
			Str("tx_hash", txHash).
			Msg("duplicate chain submission: ledger row appeared during broadcast")
		return domain.NewCheckInResult(domain.OutcomeAlreadyRecorded, doneMessage(req.Source)+" (already recorded on-chain)"), nil
	}

	s.log.Info().
		Str("key", key.String()).
		Str("tx_hash", txHash).
		Str("source", string(req.Source)).
		Msg("check-in recorded")

	msg := doneMessage(req.Source) + " (recorded on-chain: " + txHash + ")"
	if req.Source == domain.SourceGradedNote {
		msg = withReason("Check-in succeeded.", verdict.Reason)
	}
	res := domain.NewCheckInResult(domain.OutcomeRecorded, msg)
	res.TxHash = txHash
	return res, nil
}

// ledgerUnavailable is the verified-but-unrecorded result used when the ledger
// cannot be read. Nothing is submitted without a duplicate check.
func (s *CheckInServiceImpl) ledgerUnavailable(key domain.CheckInKey, req ports.CheckInRequest, err error) *domain.CheckInResult {
	s.log.Warn().Err(err).
		Str("key", key.String()).
		Str("error_code", apperror.CodeOf(err)).
		Msg("ledger unavailable, skipping chain submission")
	res := domain.NewCheckInResult(domain.OutcomeSubmissionFailed,
		doneMessage(req.Source)+" (the on-chain record failed and will be retried on your next check-in)")
	res.Detail = err.Error()
	return res
}

// acquire takes the per-key Redis lock. Only a timeout is fatal; a Redis outage
// leaves singleflight and the ledger constraint in charge.
func (s *CheckInServiceImpl) acquire(ctx context.Context, key domain.CheckInKey) (func(), error) {
	if s.lock == nil {
		return func() {}, nil
	}
	lockKey := "checkin:" + key.String()
	token, err := s.lock.Acquire(ctx, lockKey, s.lockTTL, s.lockWait)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		s.log.Warn().Err(err).Str("key", lockKey).Msg("check-in lock unavailable, continuing without it")
		return func() {}, nil
	}
	return func() {
		if err := s.lock.Release(context.Background(), lockKey, token); err != nil {
			s.log.Warn().Err(err).Str("key", lockKey).Msg("failed to release check-in lock")
		}
	}, nil
}

func (s *CheckInServiceImpl) markCached(ctx context.Context, key domain.CheckInKey, txHash string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkRecorded(ctx, key, txHash); err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("failed to cache check-in")
	}
}

// reportOrphan logs a landed transaction with no ledger row and journals it for reconciliation tooling.
func (s *CheckInServiceImpl) reportOrphan(ctx context.Context, rec *domain.CheckInRecord, cause error) {
	s.log.Error().Err(cause).
		Bool("reconciliation_required", true).
		Str("wallet", rec.WalletAddress).
		Int64("challenge_id", rec.ChallengeID).
		Str("check_in_date", rec.CheckInDate.Format(domain.DateLayout)).
		Str("tx_hash", *rec.TxHash).
		Msg("ledger write failed after successful broadcast")

	if s.journal == nil {
		return
	}
	orphan := &domain.OrphanedTransaction{
		WalletAddress: rec.WalletAddress,
		ChallengeID:   rec.ChallengeID,
		CheckInDate:   rec.CheckInDate.Format(domain.DateLayout),
		TxHash:        *rec.TxHash,
		ProofContent:  rec.ProofContent,
		Error:         cause.Error(),
		DetectedAt:    s.clock.Now().UTC(),
	}
	if err := s.journal.Append(ctx, orphan); err != nil {
		s.log.Error().Err(err).Str("tx_hash", orphan.TxHash).Msg("failed to journal orphaned transaction")
	}
}

// TodayStatus reports whether today's row exists for (wallet, challenge).
func (s *CheckInServiceImpl) TodayStatus(ctx context.Context, wallet string, challengeID int64) (*ports.TodayStatus, error) {
	today := s.clock.Today()
	exists, err := s.ledger.Exists(ctx, wallet, challengeID, today)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return &ports.TodayStatus{Date: today.Format(domain.DateLayout), CheckedIn: exists}, nil
}

// History lists the wallet's recorded check-ins, newest first.
func (s *CheckInServiceImpl) History(ctx context.Context, wallet string, limit int) ([]domain.CheckInRecord, error) {
	recs, err := s.ledger.ListByWallet(ctx, wallet, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return recs, nil
}

func providerName(kind domain.SourceKind) string {
	switch kind {
	case domain.SourceCommitActivity:
		return "GitHub"
	case domain.SourceRunActivity:
		return "Strava"
	}
	return string(kind)
}

func doneMessage(kind domain.SourceKind) string {
	switch kind {
	case domain.SourceCommitActivity:
		return "Checked in for today"
	case domain.SourceRunActivity:
		return "Today's run is done"
	case domain.SourceGradedNote:
		return "Today's reading is done"
	}
	return "Done for today"
}

func notYetMessage(kind domain.SourceKind) string {
	switch kind {
	case domain.SourceCommitActivity:
		return "No commits detected today"
	case domain.SourceRunActivity:
		return "No qualifying run detected today"
	}
	return "Not checked in yet today"
}

func withReason(msg, reason string) string {
	if reason == "" {
		return msg
	}
	return msg + " " + reason
}
