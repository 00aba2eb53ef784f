package api

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"consultation-booking/internal/domain/availability"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

const maxDateCount = 90

type AvailabilityConfig struct {
	WindowDays int
	Location   *time.Location
}

type AvailabilityHandler struct {
	clock clock.Clock
	cfg   AvailabilityConfig
}

func NewAvailabilityHandler(clock clock.Clock, cfg AvailabilityConfig) *AvailabilityHandler {
	return &AvailabilityHandler{clock: clock, cfg: cfg}
}

// @Summary List bookable dates
// @Description Next weekdays starting tomorrow in the business time zone
// @Tags availability
// @Produce json
// @Param count query int false "Number of dates (default 30, max 90)"
// @Success 200 {array} resdto.DateOption
// @Failure 400 {object} httperr.Response
// @Router /availability/dates [get]
func (h *AvailabilityHandler) Dates(c *gin.Context) {
	count := h.cfg.WindowDays
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxDateCount {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "count must be between 0 and 90", nil)
			return
		}
		count = n
	}
	dates := slices.Collect(availability.Dates(h.clock.Now(), count, h.cfg.Location))
	c.JSON(http.StatusOK, resdto.FromDates(dates))
}

// @Summary List time slots
// @Description The fixed half-hour grid from 9:00 AM to 4:30 PM
// @Tags availability
// @Produce json
// @Success 200 {array} resdto.SlotResponse
// @Router /availability/slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromSlots(availability.TimeSlots()))
}

// @Summary Booking form options
// @Description Topics and experience levels accepted by the details form
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.OptionsResponse
// @Router /booking/options [get]
func (h *AvailabilityHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.NewOptionsResponse(h.cfg.Location))
}
