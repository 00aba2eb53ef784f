package api

import (
	"log/slog"
	"net/http"
	"time"

	"consultation-booking/internal/domain/availability"
	reqdto "consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/migrations"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sseEventBookings = "bookings"
	sseEventError    = "error"
)

type BookingHandler struct {
	q    queries.BookingQueries
	cmds commands.BookingAdminCommands
	loc  *time.Location
}

func NewBookingHandler(q queries.BookingQueries, cmds commands.BookingAdminCommands, loc *time.Location) *BookingHandler {
	return &BookingHandler{q: q, cmds: cmds, loc: loc}
}

func bindListFilter(c *gin.Context) (queries.ListFilter, bool) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return queries.ListFilter{}, false
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "window must be one of all, upcoming, past, today", nil)
		return queries.ListFilter{}, false
	}
	return filter, true
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary List bookings
// @Description Filtered bookings plus statistics over every stored booking
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param search query string false "Case-insensitive match on name, email, company or topic"
// @Param window query string false "all, upcoming, past or today"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	list, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Stream bookings
// @Description Server-Sent Events: a "bookings" event with the list payload now and after every change
// @Tags admin
// @Security BearerAuth
// @Produce text/event-stream
// @Param search query string false "Search term"
// @Param window query string false "all, upcoming, past or today"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/stream [get]
func (h *BookingHandler) Stream(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	sess, ok := middleware.GetAdminSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Admin session required", nil)
		return
	}

	started := false
	err := h.q.Watch(c.Request.Context(), sess.ID.String(), filter, func(list *queries.BookingList) error {
		if !started {
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Header("X-Accel-Buffering", "no")
			started = true
		}
		c.SSEvent(sseEventBookings, resdto.FromBookingList(list))
		c.Writer.Flush()
		return nil
	})
	if err == nil {
		return
	}
	if !started {
		abortWithUsecaseErr(c, err, "Failed to open booking stream")
		return
	}
	slog.Warn("Booking stream ended", "session_id", sess.ID, "error", err.Error())
	c.SSEvent(sseEventError, gin.H{"message": "Live updates stopped, reconnect to resume"})
	c.Writer.Flush()
}

// @Summary Export bookings as CSV
// @Tags admin
// @Security BearerAuth
// @Produce text/csv
// @Param search query string false "Search term"
// @Param window query string false "all, upcoming, past or today"
// @Success 200 {file} file
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings/export.csv [get]
func (h *BookingHandler) ExportCSV(c *gin.Context) {
	filter, ok := bindListFilter(c)
	if !ok {
		return
	}
	file, err := h.q.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to export bookings")
		return
	}
	writeAttachment(c, file.FileName, file.ContentType, file.Data)
}

// @Summary Export bookings as JSON
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {file} file
// @Failure 401 {object} httperr.Response
// @Router /admin/bookings/export.json [get]
func (h *BookingHandler) ExportJSON(c *gin.Context) {
	file, err := h.q.ExportJSON(c.Request.Context())
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to export bookings")
		return
	}
	writeAttachment(c, file.FileName, file.ContentType, file.Data)
}

// @Summary Bookings on a date
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param date path string true "Date as YYYY-MM-DD"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings/date/{date} [get]
func (h *BookingHandler) ListForDate(c *gin.Context) {
	date, err := availability.ParseDate(c.Param("date"), h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date must be formatted as YYYY-MM-DD", nil)
		return
	}
	views, err := h.q.ListForDate(c.Request.Context(), date)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Check a slot
// @Description Whether a stored booking already starts at the given date and time
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date as YYYY-MM-DD"
// @Param time query string true "Slot as HH:MM"
// @Success 200 {object} resdto.SlotStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings/slot [get]
func (h *BookingHandler) Slot(c *gin.Context) {
	var query reqdto.SlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date and time are required", nil)
		return
	}
	date, err := query.ToDomain(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date must be formatted as YYYY-MM-DD", nil)
		return
	}
	status, err := h.q.SlotAvailability(c.Request.Context(), date, query.Time)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to check slot")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotStatus(status))
}

// @Summary Get a booking
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Correct a booking
// @Description Partial update of meet link, company or experience
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, in); err != nil {
		abortWithUsecaseErr(c, err, "Failed to update booking")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Delete a booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseErr(c, err, "Failed to delete booking")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Database setup SQL
// @Description The statements that create the bookings table and its change trigger
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SetupResponse
// @Router /admin/setup [get]
func (h *BookingHandler) Setup(c *gin.Context) {
	sql, err := migrations.SetupSQL()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SetupResponse{
		Message: "Run this SQL against the bookings database to create the schema.",
		SQL:     sql,
	})
}
