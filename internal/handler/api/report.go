package api

import (
	"errors"
	"net/http"

	resdto "canchacontrol/internal/handler/dto/response"
	"canchacontrol/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reportQueries: reportQueries}
}

// @Summary Reservation stats
// @Description Aggregate reservation counts and revenue over a date range
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start date (YYYY-MM-DD, inclusive)"
// @Param to query string true "Range end date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} resdto.ReservationStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reports/reservations [get]
func (h *ReportHandler) GetReservationStats(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from and to query parameters are required",
		})
		return
	}

	stats, err := h.reportQueries.ReservationStats(c.Request.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidStatsRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range, expected from <= to in YYYY-MM-DD",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationStatsView(stats))
}
