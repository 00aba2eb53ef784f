//go:build unit

package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consultation-booking/internal/infra/calendar"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

func eventRequest() commands.CalendarEventRequest {
	start := time.Date(2026, time.October, 15, 17, 30, 0, 0, time.UTC)
	return commands.CalendarEventRequest{
		RequestID:   "coffee-chat-test",
		Summary:     "☕ Tech Consultation - Ada Lovelace",
		Description: "Tech consultation session with Ada Lovelace",
		Start:       start,
		End:         start.Add(30 * time.Minute),
		TimeZone:    "America/Los_Angeles",
		Attendees: []commands.Attendee{
			{Email: "ada@example.com", DisplayName: "Ada Lovelace"},
			{Email: "admin@coffechat.dev", DisplayName: "Coffee Chat Consultant", Organizer: true, Accepted: true},
		},
	}
}

func newClient(t *testing.T, handler http.HandlerFunc) *calendar.GoogleClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := calendar.NewGoogleClient(context.Background(),
		config.CalendarConfig{CalendarID: "primary"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return client
}

func TestGoogleClient_CreateEvent(t *testing.T) {
	t.Run("success: video entry point becomes the meet link", func(t *testing.T) {
		var got gcal.Event
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/calendars/primary/events", r.URL.Path)
			assert.Equal(t, "1", r.URL.Query().Get("conferenceDataVersion"))
			assert.Equal(t, "all", r.URL.Query().Get("sendUpdates"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "evt-1",
				"htmlLink": "https://calendar.google.com/event?eid=evt-1",
				"conferenceData": map[string]any{
					"entryPoints": []map[string]string{
						{"entryPointType": "phone", "uri": "tel:+1-555-0100"},
						{"entryPointType": "video", "uri": "https://meet.google.com/abc-defg-hij"},
					},
				},
			})
		})

		res, err := client.CreateEvent(context.Background(), eventRequest())
		require.NoError(t, err)
		assert.Equal(t, "https://meet.google.com/abc-defg-hij", res.MeetLink)
		assert.Equal(t, "evt-1", res.EventID)

		assert.Equal(t, "☕ Tech Consultation - Ada Lovelace", got.Summary)
		assert.Equal(t, "2026-10-15T17:30:00Z", got.Start.DateTime)
		assert.Equal(t, "America/Los_Angeles", got.End.TimeZone)
		require.Len(t, got.Attendees, 2)
		assert.Equal(t, "needsAction", got.Attendees[0].ResponseStatus)
		assert.True(t, got.Attendees[1].Organizer)
		require.NotNil(t, got.ConferenceData)
		assert.Equal(t, "hangoutsMeet", got.ConferenceData.CreateRequest.ConferenceSolutionKey.Type)
		require.NotNil(t, got.Reminders)
		assert.False(t, got.Reminders.UseDefault)
		require.Len(t, got.Reminders.Overrides, 3)
		assert.Equal(t, int64(1440), got.Reminders.Overrides[0].Minutes)
		assert.Equal(t, "popup", got.Reminders.Overrides[2].Method)
		require.NotNil(t, got.GuestsCanInviteOthers)
		assert.False(t, *got.GuestsCanInviteOthers)
		require.NotNil(t, got.GuestsCanSeeOtherGuests)
		assert.False(t, *got.GuestsCanSeeOtherGuests)
	})

	t.Run("error: no video entry point", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"evt-2"}`))
		})

		_, err := client.CreateEvent(context.Background(), eventRequest())
		assert.True(t, errs.Is(err, calendar.ErrNoVideoEntry), "got %v", err)
	})

	t.Run("error: API failure", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
		})

		_, err := client.CreateEvent(context.Background(), eventRequest())
		assert.Error(t, err)
	})
}

func TestNewGoogleClient_NotConfigured(t *testing.T) {
	_, err := calendar.NewGoogleClient(context.Background(), config.CalendarConfig{CalendarID: "primary"})
	assert.True(t, errs.Is(err, calendar.ErrNotConfigured))

	_, err = calendar.Disabled{}.CreateEvent(context.Background(), eventRequest())
	assert.True(t, errs.Is(err, calendar.ErrNotConfigured))
}
