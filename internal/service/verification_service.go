package service

import (
	"context"
	"strings"

	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports"
	"habit-agent/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	emptyNoteReason         = "please write your reading note"
	graderUnavailableReason = "The grader dozed off, so this one passes. Don't make a habit of it."
)

// CommitActivitySource verifies a commit pushed today on the wallet's linked GitHub account.
type CommitActivitySource struct {
	conns   ports.ConnectionRepository
	checker ports.CommitActivityChecker
	enc     ports.EncryptionService
	clock   *domain.Clock
	log     zerolog.Logger
}

// NewCommitActivitySource creates the GitHub source. A nil enc means tokens are stored unencrypted.
func NewCommitActivitySource(conns ports.ConnectionRepository, checker ports.CommitActivityChecker, enc ports.EncryptionService, clock *domain.Clock, log zerolog.Logger) *CommitActivitySource {
	return &CommitActivitySource{conns: conns, checker: checker, enc: enc, clock: clock, log: log}
}

func (s *CommitActivitySource) Kind() domain.SourceKind { return domain.SourceCommitActivity }

func (s *CommitActivitySource) Check(ctx context.Context, wallet, _ string) (domain.Verdict, error) {
	conn, err := s.conns.GetGitHub(ctx, wallet)
	if err != nil {
		return domain.Verdict{}, apperror.ErrDatabaseError(err)
	}
	if conn == nil {
		return domain.SourceNotConnected(), nil
	}
	token, err := openToken(s.enc, conn.AccessTokenEnc)
	if err != nil {
		return domain.Verdict{}, err
	}

	repo := ""
	if conn.Repository != nil {
		repo = *conn.Repository
	}
	ok, err := s.checker.HasCommitsSince(ctx, conn.GitHubUsername, repo, token, s.clock.StartOfDay())
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Str("github_user", conn.GitHubUsername).Msg("commit activity check failed")
		return domain.Verdict{}, apperror.ErrVerificationUnavailable(err)
	}
	if !ok {
		return domain.NotYetVerified(), nil
	}
	return domain.Verified(""), nil
}

// RunActivitySource verifies a run logged today on the wallet's linked Strava account.
type RunActivitySource struct {
	conns   ports.ConnectionRepository
	checker ports.RunActivityChecker
	enc     ports.EncryptionService
	clock   *domain.Clock
	log     zerolog.Logger
}

func NewRunActivitySource(conns ports.ConnectionRepository, checker ports.RunActivityChecker, enc ports.EncryptionService, clock *domain.Clock, log zerolog.Logger) *RunActivitySource {
	return &RunActivitySource{conns: conns, checker: checker, enc: enc, clock: clock, log: log}
}

func (s *RunActivitySource) Kind() domain.SourceKind { return domain.SourceRunActivity }

// Check treats an expired Strava token as not connected; refreshing belongs to the OAuth flow.
func (s *RunActivitySource) Check(ctx context.Context, wallet, _ string) (domain.Verdict, error) {
	conn, err := s.conns.GetStrava(ctx, wallet)
	if err != nil {
		return domain.Verdict{}, apperror.ErrDatabaseError(err)
	}
	if conn == nil {
		return domain.SourceNotConnected(), nil
	}
	if conn.Expired(s.clock.Now()) {
		s.log.Info().Str("wallet", wallet).Time("expires_at", conn.ExpiresAt).Msg("strava token expired")
		return domain.SourceNotConnected(), nil
	}
	token, err := openToken(s.enc, conn.AccessTokenEnc)
	if err != nil {
		return domain.Verdict{}, err
	}

	ok, err := s.checker.HasRunSince(ctx, token, s.clock.StartOfDay())
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Int64("athlete_id", conn.AthleteID).Msg("run activity check failed")
		return domain.Verdict{}, apperror.ErrVerificationUnavailable(err)
	}
	if !ok {
		return domain.NotYetVerified(), nil
	}
	return domain.Verified(""), nil
}

// GradedNoteSource has a language model judge a reading note. It never returns
// NotYetVerified: a note is either accepted or rejected on the spot.
type GradedNoteSource struct {
	grader ports.NoteGrader
	log    zerolog.Logger
}

func NewGradedNoteSource(grader ports.NoteGrader, log zerolog.Logger) *GradedNoteSource {
	return &GradedNoteSource{grader: grader, log: log}
}

func (s *GradedNoteSource) Kind() domain.SourceKind { return domain.SourceGradedNote }

// Check fails open: a grader outage accepts the note.
func (s *GradedNoteSource) Check(ctx context.Context, wallet, note string) (domain.Verdict, error) {
	if strings.TrimSpace(note) == "" {
		return domain.ValidationRejected(emptyNoteReason), nil
	}

	pass, reason, err := s.grader.Grade(ctx, note)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", wallet).Msg("note grader unavailable, accepting note")
		return domain.Verified(graderUnavailableReason), nil
	}
	if !pass {
		return domain.ValidationRejected(reason), nil
	}
	return domain.Verified(reason), nil
}

func openToken(enc ports.EncryptionService, stored string) (string, error) {
	if enc == nil {
		return stored, nil
	}
	token, err := enc.Decrypt(stored)
	if err != nil {
		return "", apperror.ErrEncryptionFailure(err)
	}
	return token, nil
}
