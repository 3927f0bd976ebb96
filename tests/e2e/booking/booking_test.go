//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "donbalon/internal/handler/dto/request"
	"donbalon/internal/handler/dto/response"
	"donbalon/tests/common/builder"
	"donbalon/tests/common/dbtest"
	"donbalon/tests/common/httptest"
	"donbalon/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL       = "/api/reservations"
	clientReservationsURL = "/api/clients/%d/reservations"
	courtSlotsURL         = "/api/courts/%d/slots?date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// upcoming is a bookable day well after today in the calendar zone (UTC in tests).
func upcoming(days int) time.Time {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return today.AddDate(0, 0, days)
}

func bookingRequest(clientID, paymentMethodID int64, items ...builder.BookingItem) reqdto.CreateReservationRequest {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ClientID = clientID
		b.PaymentMethodID = paymentMethodID
		b.Items = items
	}).BuildRequestDTO()
}

func futbol(scheduleID int64, day time.Time) builder.BookingItem {
	return builder.BookingItem{CourtID: dbtest.CourtFutbol, ScheduleID: scheduleID, Date: day}
}

func (s *BookingSuite) assertNothingBooked(t *testing.T) {
	t.Helper()
	for _, table := range []string{"reservation", "slot", "reservation_line", "payment"} {
		require.Zero(t, dbtest.CountRows(t, s.DB, table), "%s should be empty after a failed booking", table)
	}
}

// =============================================================================
// TestRegisterBooking - booking registration API tests
// =============================================================================

func (s *BookingSuite) TestRegisterBooking() {
	day := upcoming(7)

	s.Run("Normal case: cash booking starts pending", func() {
		t := s.T()

		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCash,
			futbol(dbtest.ScheduleEvening, day), futbol(dbtest.ScheduleNight, day))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, fmt.Sprintf("%s/%d", reservationsURL, created.ID), w.Header().Get("Location"))

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, w.Header().Get("Location"), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		date := day.Format(time.DateOnly)
		expected := &response.ReservationResponse{
			ID:         created.ID,
			ClientID:   dbtest.ClientAna,
			ClientName: "Ana Torres",
			Total:      "500.00",
			ReservedOn: time.Now().UTC().Format(time.DateOnly),
			Status:     "pending",
			Lines: []response.ReservationLineItem{
				{CourtID: dbtest.CourtFutbol, CourtName: "Cancha 1", ScheduleID: dbtest.ScheduleEvening, StartsAt: "18:00", EndsAt: "19:00", Date: date, SlotStatus: "unavailable", Price: dbtest.FutbolHourlyRate},
				{CourtID: dbtest.CourtFutbol, CourtName: "Cancha 1", ScheduleID: dbtest.ScheduleNight, StartsAt: "19:00", EndsAt: "20:00", Date: date, SlotStatus: "unavailable", Price: dbtest.FutbolHourlyRate},
			},
			Payment: &response.PaymentResponse{
				PaymentMethodID: dbtest.PaymentCash,
				PaymentMethod:   "Efectivo",
				Amount:          "500.00",
			},
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationLineItem{}, "ID", "SlotID"),
			cmpopts.IgnoreFields(response.PaymentResponse{}, "ID", "PaidOn"),
			cmpopts.SortSlices(func(a, b response.ReservationLineItem) bool { return a.ScheduleID < b.ScheduleID }),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation"))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "slot"))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "reservation_line"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "payment"))
	})

	s.Run("Normal case: card booking is paid up front", func() {
		t := s.T()

		reqBody := bookingRequest(dbtest.ClientBruno, dbtest.PaymentCard,
			builder.BookingItem{CourtID: dbtest.CourtPadel, ScheduleID: dbtest.ScheduleLate, Date: day})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "paid", created.Status)
		require.Equal(t, dbtest.PadelHourlyRate, created.Total)
		require.Len(t, created.Lines, 1)
		require.NotNil(t, created.Payment)
		require.Equal(t, "Tarjeta", created.Payment.PaymentMethod)
		require.Equal(t, created.Total, created.Payment.Amount)
	})

	s.Run("Error case: booking an already booked triple conflicts", func() {
		t := s.T()

		first := bookingRequest(dbtest.ClientAna, dbtest.PaymentCash, futbol(dbtest.ScheduleEvening, day))
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, first, "")
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		second := bookingRequest(dbtest.ClientBruno, dbtest.PaymentCard,
			futbol(dbtest.ScheduleLate, day), futbol(dbtest.ScheduleEvening, day))
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, second, "")

		var detail response.ConflictDetail
		httptest.AssertErrorDetail(t, w2, http.StatusConflict, "Slot already booked", &detail)
		require.Equal(t, response.ConflictDetail{
			CourtID:    dbtest.CourtFutbol,
			ScheduleID: dbtest.ScheduleEvening,
			Date:       day.Format(time.DateOnly),
		}, detail)

		// the free schedule of the rejected request was not taken either
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "slot"))
	})

	s.Run("Error case: the same triple twice in one request conflicts", func() {
		t := s.T()

		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCash,
			futbol(dbtest.ScheduleEvening, day), futbol(dbtest.ScheduleEvening, day))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Slot already booked")
		s.assertNothingBooked(t)
	})

	s.Run("Error case: a failing item rolls back the whole booking", func() {
		t := s.T()

		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCash,
			futbol(dbtest.ScheduleEvening, day), futbol(999, day))
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Schedule not found")
		s.assertNothingBooked(t)
	})

	s.Run("Error case: unknown references are reported as not found", func() {
		testCases := []struct {
			name        string
			reqBody     reqdto.CreateReservationRequest
			expectedMsg string
		}{
			{
				name:        "client",
				reqBody:     bookingRequest(999, dbtest.PaymentCash, futbol(dbtest.ScheduleEvening, day)),
				expectedMsg: "Client not found",
			},
			{
				name:        "payment method",
				reqBody:     bookingRequest(dbtest.ClientAna, 999, futbol(dbtest.ScheduleEvening, day)),
				expectedMsg: "Payment method not found",
			},
			{
				name: "court",
				reqBody: bookingRequest(dbtest.ClientAna, dbtest.PaymentCash,
					builder.BookingItem{CourtID: 999, ScheduleID: dbtest.ScheduleEvening, Date: day}),
				expectedMsg: "Court not found",
			},
		}

		for _, tc := range testCases {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, tc.reqBody, "")
			httptest.AssertErrorResponse(t, w, http.StatusNotFound, tc.expectedMsg)
			s.assertNothingBooked(t)
		}
	})

	s.Run("Error case: malformed request is rejected before any lookup", func() {
		t := s.T()

		reqBody := map[string]any{
			"client_id":         dbtest.ClientAna,
			"payment_method_id": dbtest.PaymentCash,
			"items":             []map[string]any{{"court_id": 1, "schedule_id": 1, "date": "tomorrow"}},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
		s.assertNothingBooked(t)
	})
}

// =============================================================================
// TestIdempotentBooking - Idempotency-Key handling
// =============================================================================

func (s *BookingSuite) TestIdempotentBooking() {
	day := upcoming(10)

	s.Run("Normal case: a retried request replays the first booking", func() {
		t := s.T()

		key := map[string]string{"Idempotency-Key": uuid.NewString()}
		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleEvening, day))

		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody, key, "")
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())
		var first response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody, key, "")
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
		require.Equal(t, "true", w2.Header().Get("Idempotent-Replayed"))
		require.Equal(t, w1.Header().Get("Location"), w2.Header().Get("Location"))

		var replayed response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &replayed))
		require.Equal(t, first.ID, replayed.ID)
		require.Equal(t, first.Total, replayed.Total)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "idempotency_key"))
	})

	s.Run("Error case: reusing a key for another request is rejected", func() {
		t := s.T()

		key := map[string]string{"Idempotency-Key": uuid.NewString()}
		first := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleEvening, day))
		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, first, key, "")
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		other := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleNight, day))
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, other, key, "")
		httptest.AssertErrorResponse(t, w2, http.StatusUnprocessableEntity, "different request")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reservation"))
	})

	s.Run("Normal case: a failed attempt frees its key", func() {
		t := s.T()

		key := map[string]string{"Idempotency-Key": uuid.NewString()}
		failing := bookingRequest(999, dbtest.PaymentCard, futbol(dbtest.ScheduleEvening, day))
		w1 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, failing, key, "")
		httptest.AssertErrorResponse(t, w1, http.StatusNotFound, "Client not found")
		require.Zero(t, dbtest.CountRows(t, s.DB, "idempotency_key"))

		fixed := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleEvening, day))
		w2 := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, fixed, key, "")
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Normal case: an expired key can be claimed again", func() {
		t := s.T()

		rawKey := uuid.New()
		dbtest.InsertIdempotencyKey(t, s.DB, rawKey, "processing", nil, time.Now().Add(-time.Hour))

		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleLate, day))
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody,
			map[string]string{"Idempotency-Key": rawKey.String()}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestReadEndpoints - reservation listing and court availability
// =============================================================================

func (s *BookingSuite) TestReadEndpoints() {
	s.Run("Normal case: client reservations page newest first", func() {
		t := s.T()

		var ids []int64
		for i := range 3 {
			reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCard, futbol(dbtest.ScheduleEvening, upcoming(3+i)))
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var created response.ReservationResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			ids = append(ids, created.ID)
		}
		// another client's booking must not leak into the listing
		other := bookingRequest(dbtest.ClientBruno, dbtest.PaymentCard, futbol(dbtest.ScheduleNight, upcoming(3)))
		require.Equal(t, http.StatusCreated, httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, other, "").Code)

		url := fmt.Sprintf(clientReservationsURL, dbtest.ClientAna)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2", nil, "")
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())
		var page1 response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &page1))
		require.Len(t, page1.Items, 2)
		require.Equal(t, ids[2], page1.Items[0].ID)
		require.Equal(t, ids[1], page1.Items[1].ID)
		require.Equal(t, int32(1), page1.Items[0].LineCount)
		require.NotEmpty(t, page1.NextCursor)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2&cursor="+page1.NextCursor, nil, "")
		require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())
		var page2 response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &page2))
		require.Len(t, page2.Items, 1)
		require.Equal(t, ids[0], page2.Items[0].ID)
		require.Empty(t, page2.NextCursor)
	})

	s.Run("Error case: a tampered cursor is rejected", func() {
		t := s.T()
		url := fmt.Sprintf(clientReservationsURL, dbtest.ClientAna) + "?cursor=not-a-cursor"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("Normal case: court day shows booked and free schedules", func() {
		t := s.T()
		day := upcoming(5)

		reqBody := bookingRequest(dbtest.ClientAna, dbtest.PaymentCash, futbol(dbtest.ScheduleNight, day))
		require.Equal(t, http.StatusCreated, httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, "").Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(courtSlotsURL, dbtest.CourtFutbol, day.Format(time.DateOnly)), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.CourtDayResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		unavailable := "unavailable"
		expected := &response.CourtDayResponse{
			CourtID:    dbtest.CourtFutbol,
			CourtName:  "Cancha 1",
			CourtType:  "Fútbol 5",
			HourlyRate: dbtest.FutbolHourlyRate,
			Date:       day.Format(time.DateOnly),
			Schedules: []response.ScheduleSlotResponse{
				{ScheduleID: dbtest.ScheduleEvening, StartsAt: "18:00", EndsAt: "19:00", Bookable: true},
				{ScheduleID: dbtest.ScheduleNight, StartsAt: "19:00", EndsAt: "20:00", SlotStatus: &unavailable},
				{ScheduleID: dbtest.ScheduleLate, StartsAt: "20:00", EndsAt: "21:00", Bookable: true},
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ScheduleSlotResponse{}, "SlotID"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Court day mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, actual.Schedules[1].SlotID)
	})

	s.Run("Error case: unknown court", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(courtSlotsURL, 999, upcoming(1).Format(time.DateOnly)), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Court not found")
	})

	s.Run("Error case: unknown reservation", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/999", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})
}
