package lookup

import "github.com/jrh3k5/nft-price-checker/internal/nft"

// Status identifies which variant of State is active.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// State is the lookup's current state. Exactly one variant is active:
// Record is only set for StatusSuccess and Message only for StatusFailure.
type State struct {
	status  Status
	record  nft.DisplayRecord
	message string
}

// Idle is the state before any lookup has been submitted.
func Idle() State {
	return State{status: StatusIdle}
}

// Loading is the state while a lookup request is in flight.
func Loading() State {
	return State{status: StatusLoading}
}

// Success holds the normalized record of a completed lookup.
func Success(record nft.DisplayRecord) State {
	return State{status: StatusSuccess, record: record}
}

// Failure holds the user-facing message of a failed lookup.
func Failure(message string) State {
	return State{status: StatusFailure, message: message}
}

// Status reports which variant is active.
func (s State) Status() Status {
	return s.status
}

// Record returns the normalized record and true when the state is Success.
func (s State) Record() (nft.DisplayRecord, bool) {
	if s.status != StatusSuccess {
		return nft.DisplayRecord{}, false
	}

	return s.record, true
}

// Message returns the user-facing failure message and true when the state is Failure.
func (s State) Message() (string, bool) {
	if s.status != StatusFailure {
		return "", false
	}

	return s.message, true
}

func (s State) String() string {
	if s.status == StatusFailure {
		return s.status.String() + ": " + s.message
	}

	return s.status.String()
}
