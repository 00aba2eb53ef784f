package ical

import (
	"net/url"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

const (
	ProductID      = "-//Coffee Chat//Consultation Booking//EN"
	OrganizerEmail = "coffee@techconsult.dev"
	utcLayout      = "20060102T150405Z"
	googleRender   = "https://calendar.google.com/calendar/render"
)

type Event struct {
	UID           string
	Start         time.Time
	End           time.Time
	Summary       string
	Description   string
	Location      string
	AttendeeName  string
	AttendeeEmail string
}

// Build renders a single-event VCALENDAR with UTC start and end.
func Build(e Event, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)

	ev := cal.AddEvent(e.UID)
	ev.SetDtStampTime(stamp.UTC())
	ev.SetStartAt(e.Start.UTC())
	ev.SetEndAt(e.End.UTC())
	ev.SetSummary(e.Summary)
	ev.SetDescription(e.Description)
	if e.Location != "" {
		ev.SetLocation(e.Location)
	}
	ev.SetProperty(ics.ComponentPropertyOrganizer, "mailto:"+OrganizerEmail, ics.WithCN("Coffee Chat"))
	if e.AttendeeEmail != "" {
		ev.AddProperty(ics.ComponentPropertyAttendee, "mailto:"+e.AttendeeEmail,
			ics.WithCN(e.AttendeeName),
			ics.CalendarUserTypeIndividual,
			ics.ParticipationStatusAccepted,
			ics.ParticipationRoleReqParticipant,
		)
	}
	ev.SetProperty(ics.ComponentPropertyStatus, "CONFIRMED")
	ev.SetProperty(ics.ComponentPropertySequence, "0")

	return cal.Serialize()
}

// GoogleCalendarURL returns an "add to calendar" template link.
func GoogleCalendarURL(e Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Summary)
	q.Set("dates", e.Start.UTC().Format(utcLayout)+"/"+e.End.UTC().Format(utcLayout))
	q.Set("details", e.Description)
	if e.Location != "" {
		q.Set("location", e.Location)
	}
	return googleRender + "?" + q.Encode()
}

func FileName(clientName string) string {
	slug := strings.Join(strings.Fields(clientName), "-")
	if slug == "" {
		slug = "booking"
	}
	return "coffee-chat-" + slug + ".ics"
}
