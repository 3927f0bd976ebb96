package slot

import (
	"strings"

	"donbalon/internal/pkg/errs"
)

var ErrInvalidStatus = errs.New("invalid slot status")

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", errs.Wrapf(ErrInvalidStatus, "unknown slot status %q", s)
	}
	return status, nil
}

type Event string

const (
	EventReserve Event = "reserve"
	EventRelease Event = "release"
)

type Outcome struct {
	Event   Event
	From    Status
	To      Status
	Applied bool
	Message string
}

func (o Outcome) Changed() bool {
	return o.Applied && o.From != o.To
}

// Transition never fails; repeating an event is a reported no-op.
func Transition(from Status, event Event) (Status, Outcome) {
	out := Outcome{Event: event, From: from, To: from}
	switch {
	case event == EventReserve && from == StatusAvailable:
		out.To, out.Applied, out.Message = StatusUnavailable, true, "slot reserved"
	case event == EventReserve && from == StatusUnavailable:
		out.Message = "slot is already unavailable"
	case event == EventRelease && from == StatusUnavailable:
		out.To, out.Applied, out.Message = StatusAvailable, true, "slot released"
	case event == EventRelease && from == StatusAvailable:
		out.Message = "slot is already available"
	default:
		out.Message = "unsupported transition"
	}
	return out.To, out
}
