package domain

// CheckInOutcome is the terminal state a check-in call ends in.
type CheckInOutcome string

const (
	// OutcomeNotYetVerified: the activity was not detected today.
	OutcomeNotYetVerified CheckInOutcome = "NOT_YET_VERIFIED"
	// OutcomeActivityConfirmed: verified, no challenge given, nothing written.
	OutcomeActivityConfirmed CheckInOutcome = "ACTIVITY_CONFIRMED"
	OutcomeAlreadyRecorded   CheckInOutcome = "ALREADY_RECORDED"
	OutcomeRecorded          CheckInOutcome = "RECORDED"
	// OutcomeSubmissionFailed: verified but the chain write did not happen; a later call retries.
	OutcomeSubmissionFailed CheckInOutcome = "SUBMISSION_FAILED"
	// OutcomeLedgerWriteFailed: the chain write landed but the local row could not be stored.
	OutcomeLedgerWriteFailed CheckInOutcome = "LEDGER_WRITE_FAILED"
)

// ClockedIn reports whether the user completed the task today under this outcome.
func (o CheckInOutcome) ClockedIn() bool {
	return o != OutcomeNotYetVerified
}

// CheckInResult is what a check-in call returns to the caller.
type CheckInResult struct {
	Outcome   CheckInOutcome `json:"outcome"`
	ClockedIn bool           `json:"clocked_in"`
	TxHash    string         `json:"tx_hash,omitempty"`
	Message   string         `json:"message"`
	// Detail carries the underlying failure, for diagnostics only.
	Detail string `json:"detail,omitempty"`
}

// NewCheckInResult fills ClockedIn from the outcome.
func NewCheckInResult(outcome CheckInOutcome, message string) *CheckInResult {
	return &CheckInResult{
		Outcome:   outcome,
		ClockedIn: outcome.ClockedIn(),
		Message:   message,
	}
}
