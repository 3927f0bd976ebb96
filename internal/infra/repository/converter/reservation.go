package converter

import (
	"donbalon/internal/domain/reservation"
	"donbalon/internal/domain/slot"
	"donbalon/internal/infra/sqlc"
	"donbalon/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		ClientID:   res.ClientID(),
		Total:      pgconv.DecimalToNumeric(res.Total().Decimal()),
		ReservedOn: pgconv.DateToPgtype(res.ReservedOn()),
		Status:     res.Status().String(),
	}
}

func SlotToCreateParams(s *slot.Slot) sqlc.CreateSlotParams {
	key := s.Key()
	return sqlc.CreateSlotParams{
		CourtID:    key.CourtID,
		ScheduleID: key.ScheduleID,
		SlotDate:   pgconv.DateToPgtype(key.Date),
		Status:     s.Status().String(),
	}
}

func LineToCreateParams(line reservation.Line) sqlc.CreateReservationLineParams {
	return sqlc.CreateReservationLineParams{
		ReservationID: line.ReservationID(),
		SlotID:        line.SlotID(),
		Price:         pgconv.DecimalToNumeric(line.Price().Decimal()),
	}
}

func PaymentToCreateParams(p reservation.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ReservationID:   p.ReservationID(),
		PaymentMethodID: p.PaymentMethodID(),
		PaidOn:          pgconv.TimeToPgtype(p.PaidOn()),
		Amount:          pgconv.DecimalToNumeric(p.Amount().Decimal()),
	}
}
