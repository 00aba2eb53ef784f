package api

import (
	"net/http"
	"time"

	"consultation-booking/internal/domain/draft"
	reqdto "consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	cmds  commands.DraftCommands
	clock clock.Clock
	loc   *time.Location
}

func NewDraftHandler(cmds commands.DraftCommands, clock clock.Clock, loc *time.Location) *DraftHandler {
	return &DraftHandler{cmds: cmds, clock: clock, loc: loc}
}

func (h *DraftHandler) respond(c *gin.Context, status int, d *draft.Draft) {
	c.JSON(status, resdto.FromDraft(d, h.clock.Now(), h.loc))
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Start a booking
// @Description Create a draft at the date selection step
// @Tags drafts
// @Produce json
// @Success 201 {object} resdto.DraftResponse
// @Router /drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	h.respond(c, http.StatusCreated, h.cmds.Create())
}

// @Summary Get a booking draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.cmds.Get(id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to load draft")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Select a date
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectDateRequest true "Date as YYYY-MM-DD"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/date [put]
func (h *DraftHandler) SelectDate(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	date, err := req.ToDomain(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Date must be formatted as YYYY-MM-DD", nil)
		return
	}
	d, err := h.cmds.SelectDate(id, date)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to select date")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Select a time slot
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SelectTimeRequest true "Slot as HH:MM"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/time [put]
func (h *DraftHandler) SelectTime(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.SelectTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	d, err := h.cmds.SelectTime(id, req.Time)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to select time")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Submit client details and confirm
// @Description Validates the form, then books the consultation: calendar event, storage, client and admin emails
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.SubmitDetailsRequest true "Client details"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /drafts/{id}/details [post]
func (h *DraftHandler) SubmitDetails(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.SubmitDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	details, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}
	d, err := h.cmds.SubmitDetails(c.Request.Context(), id, details)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to confirm booking")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Go back one step
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/back [post]
func (h *DraftHandler) Back(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.cmds.Back(id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to go back")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Start over
// @Description Clears every field and returns to date selection
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/reset [post]
func (h *DraftHandler) Reset(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	d, err := h.cmds.Reset(id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to reset draft")
		return
	}
	h.respond(c, http.StatusOK, d)
}

// @Summary Download the calendar file
// @Tags drafts
// @Produce text/calendar
// @Param id path string true "Draft ID"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /drafts/{id}/calendar.ics [get]
func (h *DraftHandler) CalendarFile(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	file, err := h.cmds.CalendarFile(id)
	if err != nil {
		abortWithUsecaseErr(c, err, "Failed to build calendar file")
		return
	}
	writeAttachment(c, file.FileName, file.ContentType, file.Data)
}

func writeAttachment(c *gin.Context, name, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, data)
}
