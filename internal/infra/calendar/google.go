package calendar

import (
	"context"
	"time"

	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var (
	ErrNotConfigured = errs.New("calendar integration is not configured")
	ErrNoVideoEntry  = errs.New("event has no video entry point")
)

const (
	entryPointVideo = "video"
	meetSolution    = "hangoutsMeet"
)

type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleClient authenticates with a credentials file when one is set and
// otherwise with the OAuth2 refresh token. Extra options override both.
func NewGoogleClient(ctx context.Context, cfg config.CalendarConfig, opts ...option.ClientOption) (*GoogleClient, error) {
	if len(opts) == 0 {
		switch {
		case cfg.CredentialsFile != "":
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile), option.WithScopes(gcal.CalendarEventsScope))
		case cfg.Enabled():
			oc := &oauth2.Config{
				ClientID:     cfg.ClientID,
				ClientSecret: cfg.ClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{gcal.CalendarEventsScope},
			}
			opts = append(opts, option.WithTokenSource(oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})))
		default:
			return nil, ErrNotConfigured
		}
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create calendar service")
	}
	return &GoogleClient{svc: svc, calendarID: cfg.CalendarID}, nil
}

func (c *GoogleClient) CreateEvent(ctx context.Context, req commands.CalendarEventRequest) (*commands.CalendarEventResult, error) {
	created, err := c.svc.Events.Insert(c.calendarID, toEvent(req)).
		ConferenceDataVersion(1).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errs.Wrap(err, "insert calendar event")
	}

	link := videoURI(created)
	if link == "" {
		return nil, ErrNoVideoEntry
	}
	return &commands.CalendarEventResult{
		EventID:  created.Id,
		HTMLLink: created.HtmlLink,
		MeetLink: link,
	}, nil
}

func toEvent(req commands.CalendarEventRequest) *gcal.Event {
	attendees := make([]*gcal.EventAttendee, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		status := "needsAction"
		if a.Accepted {
			status = "accepted"
		}
		attendees = append(attendees, &gcal.EventAttendee{
			Email:          a.Email,
			DisplayName:    a.DisplayName,
			Organizer:      a.Organizer,
			ResponseStatus: status,
		})
	}

	no := false
	return &gcal.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &gcal.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: req.TimeZone},
		End:         &gcal.EventDateTime{DateTime: req.End.Format(time.RFC3339), TimeZone: req.TimeZone},
		Attendees:   attendees,
		ConferenceData: &gcal.ConferenceData{
			CreateRequest: &gcal.CreateConferenceRequest{
				RequestId:             req.RequestID,
				ConferenceSolutionKey: &gcal.ConferenceSolutionKey{Type: meetSolution},
			},
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "email", Minutes: 60},
				{Method: "popup", Minutes: 15},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		GuestsCanModify:         false,
		GuestsCanInviteOthers:   &no,
		GuestsCanSeeOtherGuests: &no,
	}
}

func videoURI(ev *gcal.Event) string {
	if ev == nil || ev.ConferenceData == nil {
		return ""
	}
	for _, ep := range ev.ConferenceData.EntryPoints {
		if ep.EntryPointType == entryPointVideo {
			return ep.Uri
		}
	}
	return ""
}

// Disabled is used when no Google credentials are configured.
type Disabled struct{}

func (Disabled) CreateEvent(context.Context, commands.CalendarEventRequest) (*commands.CalendarEventResult, error) {
	return nil, ErrNotConfigured
}
