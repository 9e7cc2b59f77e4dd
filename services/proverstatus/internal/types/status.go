package types

import "fmt"

// DefaultMaxAttempts is the retry budget after which a failing or hanging job is considered stuck.
const DefaultMaxAttempts uint32 = 10

type StatusKind uint8

const (
	StatusKindQueued StatusKind = iota
	StatusKindInProgress
	StatusKindSuccessful
	StatusKindWaitingForProofs
	StatusKindStuck
	StatusKindJobsNotFound
	StatusKindCustom
)

// Status is the derived health of a collection of jobs.
// Message is set only for StatusKindCustom.
type Status struct {
	Kind    StatusKind
	Message string
}

var (
	StatusQueued           = Status{Kind: StatusKindQueued}
	StatusInProgress       = Status{Kind: StatusKindInProgress}
	StatusSuccessful       = Status{Kind: StatusKindSuccessful}
	StatusWaitingForProofs = Status{Kind: StatusKindWaitingForProofs}
	StatusStuck            = Status{Kind: StatusKindStuck}
	StatusJobsNotFound     = Status{Kind: StatusKindJobsNotFound}
)

func CustomStatus(message string) Status {
	return Status{Kind: StatusKindCustom, Message: message}
}

func (s Status) String() string {
	switch s.Kind {
	case StatusKindQueued:
		return "📥 Queued"
	case StatusKindInProgress:
		return "⌛️ In Progress"
	case StatusKindSuccessful:
		return "✅ Successful"
	case StatusKindWaitingForProofs:
		return "⏱️ Waiting for proof"
	case StatusKindStuck:
		return "🛑 Stuck"
	case StatusKindJobsNotFound:
		return "🚫 Jobs not found"
	case StatusKindCustom:
		return s.Message
	default:
		return fmt.Sprintf("Status(%d)", uint8(s.Kind))
	}
}
