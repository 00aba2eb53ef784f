package response

import (
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/pkg/ical"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DetailsResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Topic       string `json:"topic"`
	CustomTopic string `json:"customTopic"`
}

type ConfirmationResponse struct {
	Status            booking.ConfirmationStatus `json:"status"`
	Message           string                     `json:"message"`
	Calendar          booking.StepOutcome        `json:"calendar"`
	Persist           booking.StepOutcome        `json:"persist"`
	ClientEmail       booking.StepOutcome        `json:"clientEmail"`
	AdminEmail        booking.StepOutcome        `json:"adminEmail"`
	SchemaMissing     bool                       `json:"schemaMissing"`
	CalendarEventLink string                     `json:"calendarEventLink,omitempty"`
}

type DraftResponse struct {
	ID                uuid.UUID             `json:"id"`
	Step              draft.Step            `json:"step"`
	StepNumber        int                   `json:"stepNumber"`
	Date              *string               `json:"date,omitempty"`
	Slot              *SlotResponse         `json:"slot,omitempty"`
	Details           *DetailsResponse      `json:"details,omitempty"`
	DateTime          *time.Time            `json:"dateTime,omitempty"`
	Confirmation      *ConfirmationResponse `json:"confirmation,omitempty"`
	Booking           *BookingResponse      `json:"booking,omitempty"`
	GoogleCalendarURL string                `json:"googleCalendarUrl,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

func FromDraft(d *draft.Draft, now time.Time, loc *time.Location) DraftResponse {
	resp := DraftResponse{
		ID:         d.ID(),
		Step:       d.Step(),
		StepNumber: d.Step().Number(),
		CreatedAt:  d.CreatedAt(),
		UpdatedAt:  d.UpdatedAt(),
	}
	if date := d.Date(); date != nil {
		s := date.In(loc).Format(availability.DateLayout)
		resp.Date = &s
	}
	if slot := d.Slot(); slot != nil {
		var sr SlotResponse
		_ = copier.Copy(&sr, slot)
		resp.Slot = &sr
	}
	if details := d.Details(); details != nil {
		var dr DetailsResponse
		_ = copier.Copy(&dr, details)
		resp.Details = &dr
	}
	if d.Step() == draft.StepConfirming {
		dt := d.DateTime()
		resp.DateTime = &dt
	}
	if conf := d.Confirmation(); conf != nil {
		var cr ConfirmationResponse
		_ = copier.Copy(&cr, conf)
		resp.Confirmation = &cr
	}
	if b := d.Booking(); b != nil {
		view := queries.ToView(b, now, loc)
		br := FromBookingView(&view)
		resp.Booking = &br
		resp.GoogleCalendarURL = ical.GoogleCalendarURL(commands.CalendarEvent(d))
	}
	return resp
}
