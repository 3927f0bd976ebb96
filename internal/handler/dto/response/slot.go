package response

import (
	"donbalon/internal/domain/slot"
	"donbalon/internal/usecase/queries"
)

type CourtDayResponse struct {
	CourtID    int64                  `json:"court_id"`
	CourtName  string                 `json:"court_name"`
	CourtType  string                 `json:"court_type"`
	HourlyRate string                 `json:"hourly_rate"`
	Date       string                 `json:"date"`
	Schedules  []ScheduleSlotResponse `json:"schedules"`
}

type ScheduleSlotResponse struct {
	ScheduleID int64   `json:"schedule_id"`
	StartsAt   string  `json:"starts_at"`
	EndsAt     string  `json:"ends_at"`
	SlotID     *int64  `json:"slot_id,omitempty"`
	SlotStatus *string `json:"slot_status,omitempty"`
	Bookable   bool    `json:"bookable"`
}

func FromCourtDayView(v *queries.CourtDayView) *CourtDayResponse {
	schedules := make([]ScheduleSlotResponse, len(v.Schedules))
	for i, s := range v.Schedules {
		schedules[i] = ScheduleSlotResponse(s)
	}
	return &CourtDayResponse{
		CourtID:    v.Court.ID,
		CourtName:  v.Court.Name,
		CourtType:  v.Court.CourtType,
		HourlyRate: v.Court.HourlyRate,
		Date:       v.Date.Format(dateLayout),
		Schedules:  schedules,
	}
}

// ConflictDetail is the error detail for an already booked triple.
type ConflictDetail struct {
	CourtID    int64  `json:"court_id"`
	ScheduleID int64  `json:"schedule_id"`
	Date       string `json:"date"`
}

func FromSlotKey(k slot.Key) ConflictDetail {
	return ConflictDetail{CourtID: k.CourtID, ScheduleID: k.ScheduleID, Date: k.Date.Format(dateLayout)}
}
