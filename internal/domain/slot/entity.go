package slot

import (
	"fmt"
	"time"

	"donbalon/internal/pkg/errs"
)

var ErrInvalidKey = errs.New("slot key needs a court, a schedule and a date")

// Key identifies the bookable unit; at most one slot exists per key.
type Key struct {
	CourtID    int64
	ScheduleID int64
	Date       time.Time
}

func NewKey(courtID, scheduleID int64, date time.Time) (Key, error) {
	if courtID <= 0 || scheduleID <= 0 || date.IsZero() {
		return Key{}, ErrInvalidKey
	}
	return Key{CourtID: courtID, ScheduleID: scheduleID, Date: truncateDate(date)}, nil
}

func (k Key) String() string {
	return fmt.Sprintf("court=%d schedule=%d date=%s", k.CourtID, k.ScheduleID, k.Date.Format(time.DateOnly))
}

type Slot struct {
	id     int64
	key    Key
	status Status
}

// NewBookedSlot is how a booking creates slots: already unavailable.
func NewBookedSlot(key Key) *Slot {
	return &Slot{key: key, status: StatusUnavailable}
}

func Reconstruct(id int64, key Key, status Status) *Slot {
	return &Slot{id: id, key: key, status: status}
}

func (s *Slot) Reserve() Outcome { return s.apply(EventReserve) }
func (s *Slot) Release() Outcome { return s.apply(EventRelease) }

func (s *Slot) apply(event Event) Outcome {
	next, out := Transition(s.status, event)
	s.status = next
	return out
}

// IsPast compares calendar dates only.
func (s *Slot) IsPast(today time.Time) bool {
	return s.key.Date.Before(truncateDate(today))
}

func (s *Slot) WithID(id int64) *Slot {
	cp := *s
	cp.id = id
	return &cp
}

func (s *Slot) ID() int64      { return s.id }
func (s *Slot) Key() Key       { return s.key }
func (s *Slot) Status() Status { return s.status }

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
