//go:build unit

package ical_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"consultation-booking/internal/pkg/ical"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() ical.Event {
	start := time.Date(2026, time.October, 15, 17, 30, 0, 0, time.UTC)
	return ical.Event{
		UID:           "3f2b8c1e-0000-4000-8000-000000000001",
		Start:         start,
		End:           start.Add(30 * time.Minute),
		Summary:       "☕ Tech Consultation - Ada Lovelace",
		Description:   "Topic: Code Review",
		Location:      "https://meet.google.com/abc-defg-hij",
		AttendeeName:  "Ada Lovelace",
		AttendeeEmail: "ada@example.com",
	}
}

func TestBuild(t *testing.T) {
	stamp := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
	out := ical.Build(sampleEvent(), stamp)

	assert.Contains(t, out, "PRODID:"+ical.ProductID)
	assert.Contains(t, out, "DTSTART:20261015T173000Z")
	assert.Contains(t, out, "DTEND:20261015T180000Z")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Contains(t, out, "SEQUENCE:0")
	assert.Contains(t, out, "mailto:"+ical.OrganizerEmail)

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "3f2b8c1e-0000-4000-8000-000000000001", events[0].Id())
	require.Len(t, events[0].Attendees(), 1)
	assert.Equal(t, "ada@example.com", events[0].Attendees()[0].Email())
}

func TestGoogleCalendarURL(t *testing.T) {
	raw := ical.GoogleCalendarURL(sampleEvent())
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "calendar.google.com", u.Host)
	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "20261015T173000Z/20261015T180000Z", q.Get("dates"))
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", q.Get("location"))
	assert.Equal(t, "☕ Tech Consultation - Ada Lovelace", q.Get("text"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "coffee-chat-Ada-Lovelace.ics", ical.FileName("Ada Lovelace"))
	assert.Equal(t, "coffee-chat-Ada-King-Lovelace.ics", ical.FileName(" Ada  King Lovelace "))
	assert.Equal(t, "coffee-chat-booking.ics", ical.FileName(""))
}
