package reservation

import (
	"time"

	"donbalon/internal/pkg/errs"
)

var (
	ErrInvalidClient     = errs.New("client id must be positive")
	ErrInitialStatus     = errs.New("a new reservation starts pending or paid")
	ErrTotalMismatch     = errs.New("total does not match the sum of the lines")
	ErrMissingReservedOn = errs.New("reservation date is required")
)

type Reservation struct {
	id         int64
	clientID   int64
	total      Money
	reservedOn time.Time
	status     Status
}

// NewReservation builds an unsaved reservation; only Pending and Paid are valid entry states.
func NewReservation(clientID int64, total Money, reservedOn time.Time, initial Status) (*Reservation, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClient
	}
	if initial != StatusPending && initial != StatusPaid {
		return nil, ErrInitialStatus
	}
	if reservedOn.IsZero() {
		return nil, ErrMissingReservedOn
	}
	return &Reservation{
		clientID:   clientID,
		total:      total,
		reservedOn: truncateDate(reservedOn),
		status:     initial,
	}, nil
}

func ReconstructReservation(id, clientID int64, total Money, reservedOn time.Time, status Status) *Reservation {
	return &Reservation{
		id:         id,
		clientID:   clientID,
		total:      total,
		reservedOn: truncateDate(reservedOn),
		status:     status,
	}
}

func (r *Reservation) ConfirmPayment() Outcome { return r.Apply(EventConfirmPayment) }
func (r *Reservation) Cancel() Outcome         { return r.Apply(EventCancel) }
func (r *Reservation) Finalize() Outcome       { return r.Apply(EventFinalize) }

// Apply never fails: a disallowed event leaves the status as it was and says so in the outcome.
func (r *Reservation) Apply(event Event) Outcome {
	next, outcome := Transition(r.status, event)
	r.status = next
	return outcome
}

// WithID returns a copy carrying the identity assigned by storage.
func (r *Reservation) WithID(id int64) *Reservation {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) ClientID() int64       { return r.clientID }
func (r *Reservation) Total() Money          { return r.total }
func (r *Reservation) ReservedOn() time.Time { return r.reservedOn }
func (r *Reservation) Status() Status        { return r.status }

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
