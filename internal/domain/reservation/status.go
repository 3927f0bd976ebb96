package reservation

import (
	"strings"

	"donbalon/internal/pkg/errs"
)

var ErrInvalidStatus = errs.New("invalid reservation status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusFinalized Status = "finalized"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusFinalized:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the reservation still expects a lifecycle action.
func (s Status) IsOpen() bool {
	return s == StatusPending || s == StatusPaid
}

// ParseStatus accepts the stored name in any letter case.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "unknown reservation status %q", s)
	}
	return status, nil
}

type Event string

const (
	EventConfirmPayment Event = "confirm_payment"
	EventCancel         Event = "cancel"
	EventFinalize       Event = "finalize"
)

func (e Event) String() string {
	return string(e)
}

type OutcomeKind string

const (
	// the state changed
	OutcomeApplied OutcomeKind = "applied"
	// nothing to do; reported as a warning
	OutcomeIgnored OutcomeKind = "ignored"
	// the event is not allowed in the current state
	OutcomeRejected OutcomeKind = "rejected"
)

type Outcome struct {
	Event          Event
	From           Status
	To             Status
	Kind           OutcomeKind
	Message        string
	RefundRequired bool
}

func (o Outcome) Changed() bool {
	return o.Kind == OutcomeApplied && o.From != o.To
}

type rule struct {
	to      Status
	kind    OutcomeKind
	message string
	refund  bool
}

var transitions = map[Status]map[Event]rule{
	StatusPending: {
		EventConfirmPayment: {to: StatusPaid, kind: OutcomeApplied, message: "payment received"},
		EventCancel:         {to: StatusCancelled, kind: OutcomeApplied, message: "pending reservation cancelled"},
		EventFinalize:       {to: StatusCancelled, kind: OutcomeApplied, message: "slot expired while unpaid"},
	},
	StatusPaid: {
		EventConfirmPayment: {to: StatusPaid, kind: OutcomeIgnored, message: "already paid"},
		EventCancel:         {to: StatusCancelled, kind: OutcomeApplied, message: "paid reservation cancelled, refund required", refund: true},
		EventFinalize:       {to: StatusFinalized, kind: OutcomeApplied, message: "slot finished"},
	},
	StatusCancelled: {
		EventConfirmPayment: {to: StatusCancelled, kind: OutcomeRejected, message: "cannot pay a cancelled reservation"},
		EventCancel:         {to: StatusCancelled, kind: OutcomeRejected, message: "already cancelled"},
		EventFinalize:       {to: StatusCancelled, kind: OutcomeIgnored, message: "cancelled reservations need no finalization"},
	},
	StatusFinalized: {
		EventConfirmPayment: {to: StatusFinalized, kind: OutcomeRejected, message: "already finalized"},
		EventCancel:         {to: StatusFinalized, kind: OutcomeRejected, message: "cannot cancel a finalized reservation"},
		EventFinalize:       {to: StatusFinalized, kind: OutcomeRejected, message: "already finalized"},
	},
}

// Transition is total over (status, event): unknown combinations are rejected without changing state.
func Transition(from Status, event Event) (Status, Outcome) {
	r, ok := transitions[from][event]
	if !ok {
		return from, Outcome{
			Event:   event,
			From:    from,
			To:      from,
			Kind:    OutcomeRejected,
			Message: "unsupported transition",
		}
	}
	return r.to, Outcome{
		Event:          event,
		From:           from,
		To:             r.to,
		Kind:           r.kind,
		Message:        r.message,
		RefundRequired: r.refund,
	}
}
