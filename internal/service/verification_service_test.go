package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"habit-agent/internal/core/domain"
	"habit-agent/internal/core/ports/mocks"
	"habit-agent/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// 2024-03-09 18:30 UTC is 2024-03-10 02:30 in Shanghai; local midnight is 2024-03-09 16:00 UTC.
var (
	testInstant    = time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)
	testStartOfDay = time.Date(2024, 3, 9, 16, 0, 0, 0, time.UTC)
	testToday      = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
)

func newTestClock(t *testing.T) *domain.Clock {
	t.Helper()
	clock, err := domain.NewClock(domain.DefaultTimezone, func() time.Time { return testInstant })
	require.NoError(t, err)
	return clock
}

func sameInstant(want time.Time) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		got, ok := x.(time.Time)
		return ok && got.Equal(want)
	})
}

func TestCommitActivitySource_Check(t *testing.T) {
	repo := "octo/habits"
	tests := []struct {
		name     string
		conn     *domain.GitHubConnection
		found    bool
		checkErr error
		want     domain.VerdictStatus
		wantCode string
	}{
		{name: "not connected", conn: nil, want: domain.VerdictSourceNotConnected},
		{name: "commit today", conn: &domain.GitHubConnection{GitHubUsername: "octo", AccessTokenEnc: "enc"}, found: true, want: domain.VerdictVerified},
		{name: "repo scoped, nothing yet", conn: &domain.GitHubConnection{GitHubUsername: "octo", AccessTokenEnc: "enc", Repository: &repo}, found: false, want: domain.VerdictNotYetVerified},
		{name: "provider down", conn: &domain.GitHubConnection{GitHubUsername: "octo", AccessTokenEnc: "enc"}, checkErr: errors.New("502"), wantCode: "CHK_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conns := mocks.NewMockConnectionRepository(ctrl)
			checker := mocks.NewMockCommitActivityChecker(ctrl)
			enc := mocks.NewMockEncryptionService(ctrl)
			src := NewCommitActivitySource(conns, checker, enc, newTestClock(t), newTestLogger())

			conns.EXPECT().GetGitHub(gomock.Any(), "0xabc").Return(tt.conn, nil)
			if tt.conn != nil {
				enc.EXPECT().Decrypt("enc").Return("gh-token", nil)
				wantRepo := ""
				if tt.conn.Repository != nil {
					wantRepo = *tt.conn.Repository
				}
				checker.EXPECT().HasCommitsSince(gomock.Any(), "octo", wantRepo, "gh-token", sameInstant(testStartOfDay)).
					Return(tt.found, tt.checkErr)
			}

			v, err := src.Check(context.Background(), "0xabc", "")
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Status)
			assert.Equal(t, domain.SourceCommitActivity, src.Kind())
		})
	}
}

func TestCommitActivitySource_DecryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	conns := mocks.NewMockConnectionRepository(ctrl)
	enc := mocks.NewMockEncryptionService(ctrl)
	src := NewCommitActivitySource(conns, mocks.NewMockCommitActivityChecker(ctrl), enc, newTestClock(t), newTestLogger())

	conns.EXPECT().GetGitHub(gomock.Any(), "0xabc").Return(&domain.GitHubConnection{GitHubUsername: "octo", AccessTokenEnc: "bad"}, nil)
	enc.EXPECT().Decrypt("bad").Return("", errors.New("cipher: message authentication failed"))

	_, err := src.Check(context.Background(), "0xabc", "")
	assert.Equal(t, "SYS_003", apperror.CodeOf(err))
}

func TestCommitActivitySource_PlaintextTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	conns := mocks.NewMockConnectionRepository(ctrl)
	checker := mocks.NewMockCommitActivityChecker(ctrl)
	src := NewCommitActivitySource(conns, checker, nil, newTestClock(t), newTestLogger())

	conns.EXPECT().GetGitHub(gomock.Any(), "0xabc").Return(&domain.GitHubConnection{GitHubUsername: "octo", AccessTokenEnc: "raw"}, nil)
	checker.EXPECT().HasCommitsSince(gomock.Any(), "octo", "", "raw", gomock.Any()).Return(true, nil)

	v, err := src.Check(context.Background(), "0xabc", "")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictVerified, v.Status)
}

func TestRunActivitySource_Check(t *testing.T) {
	future := testInstant.Add(time.Hour)
	past := testInstant.Add(-time.Hour)

	tests := []struct {
		name     string
		conn     *domain.StravaConnection
		callsAPI bool
		found    bool
		checkErr error
		want     domain.VerdictStatus
		wantCode string
	}{
		{name: "not connected", want: domain.VerdictSourceNotConnected},
		{name: "token expired", conn: &domain.StravaConnection{AccessTokenEnc: "sv", ExpiresAt: past}, want: domain.VerdictSourceNotConnected},
		{name: "ran today", conn: &domain.StravaConnection{AccessTokenEnc: "sv", ExpiresAt: future}, callsAPI: true, found: true, want: domain.VerdictVerified},
		{name: "no run", conn: &domain.StravaConnection{AccessTokenEnc: "sv", ExpiresAt: future}, callsAPI: true, want: domain.VerdictNotYetVerified},
		{name: "provider down", conn: &domain.StravaConnection{AccessTokenEnc: "sv", ExpiresAt: future}, callsAPI: true, checkErr: errors.New("timeout"), wantCode: "CHK_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			conns := mocks.NewMockConnectionRepository(ctrl)
			checker := mocks.NewMockRunActivityChecker(ctrl)
			src := NewRunActivitySource(conns, checker, nil, newTestClock(t), newTestLogger())

			conns.EXPECT().GetStrava(gomock.Any(), "0xabc").Return(tt.conn, nil)
			if tt.callsAPI {
				checker.EXPECT().HasRunSince(gomock.Any(), "sv", sameInstant(testStartOfDay)).Return(tt.found, tt.checkErr)
			}

			v, err := src.Check(context.Background(), "0xabc", "")
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, apperror.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Status)
		})
	}
}

func TestRunActivitySource_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	conns := mocks.NewMockConnectionRepository(ctrl)
	src := NewRunActivitySource(conns, mocks.NewMockRunActivityChecker(ctrl), nil, newTestClock(t), newTestLogger())

	conns.EXPECT().GetStrava(gomock.Any(), "0xabc").Return(nil, errors.New("db down"))

	_, err := src.Check(context.Background(), "0xabc", "")
	assert.Equal(t, "SYS_001", apperror.CodeOf(err))
}

func TestGradedNoteSource_Check(t *testing.T) {
	tests := []struct {
		name       string
		note       string
		grades     bool
		pass       bool
		reason     string
		gradeErr   error
		want       domain.VerdictStatus
		wantReason string
	}{
		{name: "empty", note: "", want: domain.VerdictValidationRejected, wantReason: emptyNoteReason},
		{name: "whitespace", note: " \n\t ", want: domain.VerdictValidationRejected, wantReason: emptyNoteReason},
		{name: "pass", note: "habits compound", grades: true, pass: true, reason: "Acceptable.", want: domain.VerdictVerified, wantReason: "Acceptable."},
		{name: "fail", note: "asdf", grades: true, pass: false, reason: "That is not a note.", want: domain.VerdictValidationRejected, wantReason: "That is not a note."},
		{name: "grader down fails open", note: "habits compound", grades: true, gradeErr: errors.New("timeout"), want: domain.VerdictVerified, wantReason: graderUnavailableReason},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			grader := mocks.NewMockNoteGrader(ctrl)
			src := NewGradedNoteSource(grader, newTestLogger())

			if tt.grades {
				grader.EXPECT().Grade(gomock.Any(), tt.note).Return(tt.pass, tt.reason, tt.gradeErr)
			}

			v, err := src.Check(context.Background(), "0xabc", tt.note)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Status)
			assert.Equal(t, tt.wantReason, v.Reason)
		})
	}
}
