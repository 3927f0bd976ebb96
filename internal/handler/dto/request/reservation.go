package request

import (
	"time"

	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/commands"
)

const DateLayout = "2006-01-02"

type CreateReservationRequest struct {
	ClientID        int64                    `json:"client_id" binding:"required"`
	PaymentMethodID int64                    `json:"payment_method_id" binding:"required"`
	Items           []ReservationItemRequest `json:"items" binding:"dive"`
}

type ReservationItemRequest struct {
	CourtID    int64  `json:"court_id" binding:"required"`
	ScheduleID int64  `json:"schedule_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

func (r CreateReservationRequest) ToCommand() (commands.RegisterBookingRequest, error) {
	items := make([]commands.BookingItem, len(r.Items))
	for i, it := range r.Items {
		date, err := ParseDate(it.Date)
		if err != nil {
			return commands.RegisterBookingRequest{}, errs.Wrapf(err, "items[%d].date", i)
		}
		items[i] = commands.BookingItem{
			CourtID:    it.CourtID,
			ScheduleID: it.ScheduleID,
			Date:       date,
		}
	}
	return commands.RegisterBookingRequest{
		ClientID:        r.ClientID,
		PaymentMethodID: r.PaymentMethodID,
		Items:           items,
	}, nil
}

// ParseDate reads a calendar date; the result is UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Newf("expected %s, got %q", DateLayout, s)
	}
	return t, nil
}
