package api

import (
	"net/http"
	"strconv"

	reqdto "donbalon/internal/handler/dto/request"
	resdto "donbalon/internal/handler/dto/response"
	"donbalon/internal/handler/httperr"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/commands"
	"donbalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidIdempotencyKey = errs.New("idempotency key must not be the nil uuid")

const (
	idempotencyKeyHeader     = "Idempotency-Key"
	idempotentReplayedHeader = "Idempotent-Replayed"
)

type ReservationHandler struct {
	booking commands.BookingCommands
	q       queries.ReservationQueries
}

func NewReservationHandler(booking commands.BookingCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{booking: booking, q: q}
}

// @Summary Register booking
// @Description Book one or more court slots for a client and record the payment
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID; a retry with the same key and body replays the first booking"
// @Param request body reqdto.CreateReservationRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Success 200 {object} resdto.ReservationResponse "Replayed booking"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	if cmd.IdempotencyKey, err = idempotencyKey(c); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid Idempotency-Key", nil)
		return
	}

	result, err := h.booking.RegisterBooking(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	if result.Replayed() {
		view, err := h.q.GetByID(c.Request.Context(), result.ReplayedReservationID)
		if err != nil {
			abortWithUseCaseError(c, err)
			return
		}
		c.Header(idempotentReplayedHeader, "true")
		c.Header("Location", reservationLocation(view.ID))
		c.JSON(http.StatusOK, resdto.FromReservationView(view))
		return
	}

	c.Header("Location", reservationLocation(result.Reservation.ID()))
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Get reservation
// @Description Reservation with its lines, slots and payment
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List client reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Param id path int true "Client ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /clients/{id}/reservations [get]
func (h *ReservationHandler) ListByClient(c *gin.Context) {
	clientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	cursor, limit, ok := parsePage(c)
	if !ok {
		return
	}
	items, next, err := h.q.ListByClient(c.Request.Context(), clientID, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func parsePage(c *gin.Context) (*queries.Cursor, int, bool) {
	var cursor *queries.Cursor
	if after := c.Query("cursor"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			if err == nil {
				err = strconv.ErrRange
			}
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return nil, 0, false
		}
		limit = n
	}
	return cursor, limit, true
}

// idempotencyKey returns uuid.Nil when the header is absent.
func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if key == uuid.Nil {
		return uuid.Nil, errInvalidIdempotencyKey
	}
	return key, nil
}

func reservationLocation(id int64) string {
	return "/api/reservations/" + strconv.FormatInt(id, 10)
}
