package api

import (
	"context"
	"log/slog"
	"net/http"

	resdto "donbalon/internal/handler/dto/response"
	"donbalon/internal/handler/middleware"
	"donbalon/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminReservationHandler drives reservation lifecycle events on behalf of staff.
type AdminReservationHandler struct {
	cmds commands.ReservationCommands
}

func NewAdminReservationHandler(cmds commands.ReservationCommands) *AdminReservationHandler {
	return &AdminReservationHandler{cmds: cmds}
}

type lifecycleCommand func(ctx context.Context, reservationID int64) (*commands.LifecycleResult, error)

// @Summary Confirm payment
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.LifecycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/confirm-payment [post]
func (h *AdminReservationHandler) ConfirmPayment(c *gin.Context) {
	h.run(c, h.cmds.ConfirmPayment)
}

// @Summary Cancel reservation
// @Description Cancelling a paid reservation reports refund_required
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.LifecycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/cancel [post]
func (h *AdminReservationHandler) Cancel(c *gin.Context) {
	h.run(c, h.cmds.Cancel)
}

// @Summary Finalize reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.LifecycleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id}/finalize [post]
func (h *AdminReservationHandler) Finalize(c *gin.Context) {
	h.run(c, h.cmds.Finalize)
}

func (h *AdminReservationHandler) run(c *gin.Context, cmd lifecycleCommand) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	result, err := cmd(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if staffID, ok := middleware.GetStaffID(c); ok {
		slog.Info("staff lifecycle action",
			"staff_id", staffID,
			"reservation_id", id,
			"event", result.Outcome.Event.String(),
			"outcome", string(result.Outcome.Kind))
	}
	c.JSON(http.StatusOK, resdto.FromLifecycleResult(result))
}
