package response

import (
	"donbalon/internal/usecase/commands"
	"donbalon/internal/usecase/queries"
)

const dateLayout = "2006-01-02"

type ReservationResponse struct {
	ID         int64                 `json:"id"`
	ClientID   int64                 `json:"client_id"`
	ClientName string                `json:"client_name,omitempty"`
	Total      string                `json:"total"`
	ReservedOn string                `json:"reserved_on"`
	Status     string                `json:"status"`
	Lines      []ReservationLineItem `json:"lines"`
	Payment    *PaymentResponse      `json:"payment,omitempty"`
}

type ReservationLineItem struct {
	ID         int64  `json:"id"`
	SlotID     int64  `json:"slot_id"`
	CourtID    int64  `json:"court_id"`
	CourtName  string `json:"court_name,omitempty"`
	ScheduleID int64  `json:"schedule_id"`
	StartsAt   string `json:"starts_at,omitempty"`
	EndsAt     string `json:"ends_at,omitempty"`
	Date       string `json:"date"`
	SlotStatus string `json:"slot_status"`
	Price      string `json:"price"`
}

type PaymentResponse struct {
	ID              int64  `json:"id"`
	PaymentMethodID int64  `json:"payment_method_id"`
	PaymentMethod   string `json:"payment_method,omitempty"`
	PaidOn          int64  `json:"paid_on"`
	Amount          string `json:"amount"`
}

func FromBookingResult(r *commands.BookingResult) *ReservationResponse {
	res := r.Reservation
	lines := make([]ReservationLineItem, len(r.Lines))
	for i, bl := range r.Lines {
		key := bl.Slot.Key()
		lines[i] = ReservationLineItem{
			ID:         bl.Line.ID(),
			SlotID:     bl.Slot.ID(),
			CourtID:    key.CourtID,
			ScheduleID: key.ScheduleID,
			Date:       key.Date.Format(dateLayout),
			SlotStatus: bl.Slot.Status().String(),
			Price:      bl.Line.Price().String(),
		}
	}
	return &ReservationResponse{
		ID:         res.ID(),
		ClientID:   res.ClientID(),
		Total:      res.Total().String(),
		ReservedOn: res.ReservedOn().Format(dateLayout),
		Status:     res.Status().String(),
		Lines:      lines,
		Payment: &PaymentResponse{
			ID:              r.Payment.ID(),
			PaymentMethodID: r.Payment.PaymentMethodID(),
			PaymentMethod:   r.PaymentMethod,
			PaidOn:          r.Payment.PaidOn().Unix(),
			Amount:          r.Payment.Amount().String(),
		},
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	lines := make([]ReservationLineItem, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = ReservationLineItem{
			ID:         l.ID,
			SlotID:     l.SlotID,
			CourtID:    l.CourtID,
			CourtName:  l.CourtName,
			ScheduleID: l.ScheduleID,
			StartsAt:   l.StartsAt,
			EndsAt:     l.EndsAt,
			Date:       l.Date.Format(dateLayout),
			SlotStatus: l.SlotStatus,
			Price:      l.Price,
		}
	}
	resp := &ReservationResponse{
		ID:         v.ID,
		ClientID:   v.ClientID,
		ClientName: v.ClientName,
		Total:      v.Total,
		ReservedOn: v.ReservedOn.Format(dateLayout),
		Status:     v.Status,
		Lines:      lines,
	}
	if p := v.Payment; p != nil {
		resp.Payment = &PaymentResponse{
			ID:              p.ID,
			PaymentMethodID: p.PaymentMethodID,
			PaymentMethod:   p.PaymentMethod,
			PaidOn:          p.PaidOn.Unix(),
			Amount:          p.Amount,
		}
	}
	return resp
}

type ReservationListItemResponse struct {
	ID         int64  `json:"id"`
	Total      string `json:"total"`
	ReservedOn string `json:"reserved_on"`
	Status     string `json:"status"`
	LineCount  int32  `json:"line_count"`
}

type ReservationListResponse struct {
	Items      []ReservationListItemResponse `json:"items"`
	NextCursor string                        `json:"next_cursor,omitempty"`
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	res := make([]ReservationListItemResponse, len(items))
	for i, it := range items {
		res[i] = ReservationListItemResponse{
			ID:         it.ID,
			Total:      it.Total,
			ReservedOn: it.ReservedOn.Format(dateLayout),
			Status:     it.Status,
			LineCount:  it.LineCount,
		}
	}
	out := &ReservationListResponse{Items: res}
	if next != nil {
		out.NextCursor = next.After
	}
	return out
}

// LifecycleResponse reports the state machine outcome; rejected and ignored events are not errors.
type LifecycleResponse struct {
	ReservationID  int64   `json:"reservation_id"`
	Event          string  `json:"event"`
	Outcome        string  `json:"outcome"`
	From           string  `json:"from"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	Changed        bool    `json:"changed"`
	RefundRequired bool    `json:"refund_required"`
	ReleasedSlots  []int64 `json:"released_slots,omitempty"`
}

func FromLifecycleResult(r *commands.LifecycleResult) *LifecycleResponse {
	out := r.Outcome
	return &LifecycleResponse{
		ReservationID:  r.Reservation.ID(),
		Event:          out.Event.String(),
		Outcome:        string(out.Kind),
		From:           out.From.String(),
		Status:         r.Reservation.Status().String(),
		Message:        out.Message,
		Changed:        out.Changed(),
		RefundRequired: out.RefundRequired,
		ReleasedSlots:  r.ReleasedSlots,
	}
}
