package api

import (
	"net/http"

	resdto "donbalon/internal/handler/dto/response"
	"donbalon/internal/handler/httperr"
	"donbalon/internal/pkg/errs"
	"donbalon/internal/usecase/commands"
	"donbalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps the use case error taxonomy onto HTTP statuses.
// Anything unclassified is reported as an opaque 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	var conflict *commands.SlotConflictError
	switch {
	case errs.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked", resdto.FromSlotKey(conflict.Key))
	case errs.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked", nil)
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request with this Idempotency-Key is still in progress", nil)
	case errs.Is(err, commands.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Idempotency-Key was used for a different request", nil)
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	case errs.Is(err, commands.ErrPaymentMethodNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment method not found", nil)
	case errs.Is(err, commands.ErrCourtNotFound), errs.Is(err, queries.ErrCourtNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
	case errs.Is(err, commands.ErrCourtTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Court type not found", nil)
	case errs.Is(err, commands.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errs.Is(err, commands.ErrScheduleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
	case errs.Is(err, commands.ErrReservationNotFound), errs.Is(err, queries.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, commands.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
