package api

import (
	"net/http"

	reqdto "donbalon/internal/handler/dto/request"
	resdto "donbalon/internal/handler/dto/response"
	"donbalon/internal/handler/httperr"
	"donbalon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	q queries.SlotQueries
}

func NewCourtHandler(q queries.SlotQueries) *CourtHandler {
	return &CourtHandler{q: q}
}

// @Summary Court availability for a day
// @Description Every schedule of the court with the slot booked on that date, if any
// @Tags courts
// @Produce json
// @Param id path int true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CourtDayResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /courts/{id}/slots [get]
func (h *CourtHandler) DaySlots(c *gin.Context) {
	courtID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", err.Error())
		return
	}
	view, err := h.q.CourtDay(c.Request.Context(), courtID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtDayView(view))
}
