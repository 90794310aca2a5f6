package domain

// SourceKind names a verification source variant.
type SourceKind string

const (
	SourceCommitActivity SourceKind = "github"
	SourceRunActivity    SourceKind = "strava"
	SourceGradedNote     SourceKind = "reading"
)

// Valid reports whether k is a known source.
func (k SourceKind) Valid() bool {
	switch k {
	case SourceCommitActivity, SourceRunActivity, SourceGradedNote:
		return true
	}
	return false
}

// VerdictStatus is the uniform answer of every verification source.
type VerdictStatus string

const (
	VerdictVerified           VerdictStatus = "VERIFIED"
	VerdictNotYetVerified     VerdictStatus = "NOT_YET_VERIFIED"
	VerdictSourceNotConnected VerdictStatus = "SOURCE_NOT_CONNECTED"
	VerdictValidationRejected VerdictStatus = "VALIDATION_REJECTED"
)

// Verdict is a source's answer plus a human-readable rationale, when the source has one.
type Verdict struct {
	Status VerdictStatus
	Reason string
}

func Verified(reason string) Verdict {
	return Verdict{Status: VerdictVerified, Reason: reason}
}

func NotYetVerified() Verdict {
	return Verdict{Status: VerdictNotYetVerified}
}

func SourceNotConnected() Verdict {
	return Verdict{Status: VerdictSourceNotConnected}
}

func ValidationRejected(reason string) Verdict {
	return Verdict{Status: VerdictValidationRejected, Reason: reason}
}
