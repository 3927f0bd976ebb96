package queries

import (
	"context"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidCursor       = errs.New("invalid cursor")
)

// Read models (DTO for read side)
type ReservationView struct {
	ID         int64                 `json:"id"`
	ClientID   int64                 `json:"client_id"`
	ClientName string                `json:"client_name"`
	Total      string                `json:"total"`
	ReservedOn time.Time             `json:"reserved_on"`
	Status     string                `json:"status"`
	Lines      []ReservationLineView `json:"lines"`
	Payment    *PaymentView          `json:"payment,omitempty"`
}

type ReservationLineView struct {
	ID         int64     `json:"id"`
	SlotID     int64     `json:"slot_id"`
	CourtID    int64     `json:"court_id"`
	CourtName  string    `json:"court_name"`
	ScheduleID int64     `json:"schedule_id"`
	StartsAt   string    `json:"starts_at"`
	EndsAt     string    `json:"ends_at"`
	Date       time.Time `json:"date"`
	SlotStatus string    `json:"slot_status"`
	Price      string    `json:"price"`
}

type PaymentView struct {
	ID              int64     `json:"id"`
	PaymentMethodID int64     `json:"payment_method_id"`
	PaymentMethod   string    `json:"payment_method"`
	PaidOn          time.Time `json:"paid_on"`
	Amount          string    `json:"amount"`
}

type ReservationListItem struct {
	ID         int64     `json:"id"`
	Total      string    `json:"total"`
	ReservedOn time.Time `json:"reserved_on"`
	Status     string    `json:"status"`
	LineCount  int32     `json:"line_count"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByClientFirstPage(ctx context.Context, clientID int64, limit int32) ([]*ReservationListItem, error)
	FindByClientKeyset(ctx context.Context, clientID int64, lastReservedOn time.Time, lastID int64, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	ListByClient(ctx context.Context, clientID int64, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListByClient pages newest first.
func (q *reservationQueriesImpl) ListByClient(ctx context.Context, clientID int64, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByClientFirstPage(ctx, clientID, int32(limit+1))
	} else {
		lastReservedOn, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByClientKeyset(ctx, clientID, lastReservedOn, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.ReservedOn, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
