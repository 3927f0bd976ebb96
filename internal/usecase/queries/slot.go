package queries

import (
	"context"
	"time"

	"donbalon/internal/infra"
	"donbalon/internal/pkg/errs"
)

var ErrCourtNotFound = errs.New("court not found")

type CourtView struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	CourtType  string `json:"court_type"`
	HourlyRate string `json:"hourly_rate"`
}

type ScheduleAvailability struct {
	ScheduleID int64   `json:"schedule_id"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	SlotID     *int64  `json:"slot_id,omitempty"`
	SlotStatus *string `json:"slot_status,omitempty"`
	// Bookable only when no slot row exists; a released slot still blocks the triple.
	Bookable bool `json:"bookable"`
}

type CourtDayView struct {
	Court     CourtView              `json:"court"`
	Date      time.Time              `json:"date"`
	Schedules []ScheduleAvailability `json:"schedules"`
}

type SlotReadStore interface {
	FindCourt(ctx context.Context, courtID int64) (*CourtView, error)
	FindDaySchedules(ctx context.Context, courtID int64, date time.Time) ([]ScheduleAvailability, error)
}

type SlotQueries interface {
	CourtDay(ctx context.Context, courtID int64, date time.Time) (*CourtDayView, error)
}

type slotQueriesImpl struct {
	repo SlotReadStore
}

func NewSlotQueries(repo SlotReadStore) SlotQueries {
	return &slotQueriesImpl{repo: repo}
}

func (q *slotQueriesImpl) CourtDay(ctx context.Context, courtID int64, date time.Time) (*CourtDayView, error) {
	court, err := q.repo.FindCourt(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	schedules, err := q.repo.FindDaySchedules(ctx, courtID, day)
	if err != nil {
		return nil, err
	}
	for i := range schedules {
		schedules[i].Bookable = schedules[i].SlotID == nil
	}

	return &CourtDayView{Court: *court, Date: day, Schedules: schedules}, nil
}
