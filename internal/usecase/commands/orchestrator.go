package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/draft"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/ical"
)

const (
	StepCalendar    = "calendar"
	StepPersist     = "persist"
	StepClientEmail = "client_email"
	StepAdminEmail  = "admin_email"

	notSpecified      = "Not specified"
	meetingDateLayout = "Monday, January 2, 2006"
	meetingTimeSuffix = " PT"
	adminDisplayName  = "Coffee Chat Consultant"
)

var ErrStepPanicked = errs.New("booking step panicked")

type OrchestratorConfig struct {
	AdminEmail string
	Location   *time.Location
}

// Confirmed is what one orchestration run produced. Booking is the stored row
// when persisting succeeded and the unsaved booking otherwise.
type Confirmed struct {
	Booking      *booking.Booking
	Confirmation *booking.Confirmation
}

type Orchestrator struct {
	calendar CalendarClient
	repo     BookingRepository
	mailer   Mailer
	metrics  Metrics
	clock    clock.Clock
	cfg      OrchestratorConfig
}

func NewOrchestrator(
	calendar CalendarClient,
	repo BookingRepository,
	mailer Mailer,
	metrics Metrics,
	clock clock.Clock,
	cfg OrchestratorConfig,
) *Orchestrator {
	return &Orchestrator{
		calendar: calendar,
		repo:     repo,
		mailer:   mailer,
		metrics:  metrics,
		clock:    clock,
		cfg:      cfg,
	}
}

// Confirm runs calendar, persist and email in that order. It never returns an
// error: every failure, panics included, is recorded on the Confirmation and
// the remaining steps still run.
func (o *Orchestrator) Confirm(ctx context.Context, d *draft.Draft) (result Confirmed) {
	ctx = context.WithoutCancel(ctx)
	conf := booking.NewConfirmation()
	result.Confirmation = conf

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Booking orchestration panicked", "draft_id", d.ID(), "panic", fmt.Sprint(r))
			conf.Unexpected = true
		}
		conf.Finalize()
		o.observe(conf)
	}()

	link := booking.FallbackMeetLink()
	if o.guard(d, StepCalendar, func() { link = o.createCalendarEvent(ctx, d, conf) }) {
		conf.Unexpected = true
		conf.Calendar = booking.FellBack(ErrStepPanicked)
	}

	b, err := booking.NewBooking(d.DateTime(), *d.Client(), *d.Topic(), link)
	if err != nil {
		slog.Error("Confirming draft produced an invalid booking", "draft_id", d.ID(), "error", err.Error())
		conf.Unexpected = true
		return result
	}
	result.Booking = b

	if o.guard(d, StepPersist, func() {
		if saved := o.persist(ctx, d, b, conf); saved != nil {
			result.Booking = saved
		}
	}) {
		conf.Unexpected = true
		conf.Persist = booking.Failed(ErrStepPanicked)
	}

	clientMsg, adminMsg := o.emailMessages(result.Booking, conf.CalendarEventLink)
	conf.ClientEmail = o.send(ctx, d, StepClientEmail, clientMsg, conf)
	conf.AdminEmail = o.send(ctx, d, StepAdminEmail, adminMsg, conf)
	return result
}

// guard reports whether fn panicked.
func (o *Orchestrator) guard(d *draft.Draft, step string, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Booking step panicked", "draft_id", d.ID(), "step", step, "panic", fmt.Sprint(r))
			panicked = true
		}
	}()
	fn()
	return false
}

func (o *Orchestrator) createCalendarEvent(ctx context.Context, d *draft.Draft, conf *booking.Confirmation) booking.MeetLink {
	client := d.Client()
	topic := d.Topic().String()
	start := d.DateTime()

	res, err := o.calendar.CreateEvent(ctx, CalendarEventRequest{
		RequestID: requestID(o.clock.Now()),
		Summary:   eventSummary(client.Name.String()),
		Description: strings.Join([]string{
			"Tech consultation session with " + client.Name.String(),
			"",
			"Topic: " + topic,
			"Company: " + client.CompanyOr(notSpecified),
			"Experience: " + client.ExperienceOr(notSpecified),
			"",
			"About the session:",
			"- Duration: 30 minutes",
			"- Focus: " + topic,
			"- Platform: Google Meet (link will be generated automatically)",
			"",
			"Please join 2-3 minutes early to test your connection.",
		}, "\n"),
		Start:    start,
		End:      start.Add(availability.SessionDuration),
		TimeZone: o.cfg.Location.String(),
		Attendees: []Attendee{
			{Email: client.Email.String(), DisplayName: client.Name.String()},
			{Email: o.cfg.AdminEmail, DisplayName: adminDisplayName, Organizer: true, Accepted: true},
		},
	})
	if err == nil {
		var link booking.MeetLink
		link, err = booking.NewMeetLink(res.MeetLink)
		if err == nil {
			conf.Calendar = booking.Succeeded()
			conf.CalendarEventLink = res.HTMLLink
			return link
		}
	}

	slog.Warn("Calendar event failed, using fallback meet link", "draft_id", d.ID(), "error", err.Error())
	conf.Calendar = booking.FellBack(err)
	return booking.FallbackMeetLink()
}

func (o *Orchestrator) persist(ctx context.Context, d *draft.Draft, b *booking.Booking, conf *booking.Confirmation) *booking.Booking {
	saved, err := o.repo.Insert(ctx, b)
	if err != nil {
		conf.Persist = booking.Failed(err)
		conf.SchemaMissing = infra.IsKind(err, infra.KindSchemaMissing)
		slog.Error("Failed to save booking", "draft_id", d.ID(), "schema_missing", conf.SchemaMissing, "error", err.Error())
		return nil
	}
	conf.Persist = booking.Succeeded()
	return saved
}

// send is called once per message; one failing never skips the other.
func (o *Orchestrator) send(ctx context.Context, d *draft.Draft, step string, msg EmailMessage, conf *booking.Confirmation) booking.StepOutcome {
	var err error
	if o.guard(d, step, func() { err = o.mailer.Send(ctx, msg) }) {
		conf.Unexpected = true
		return booking.Failed(ErrStepPanicked)
	}
	if err != nil {
		slog.Warn("Failed to send email", "draft_id", d.ID(), "kind", string(msg.Kind), "error", err.Error())
		return booking.Failed(err)
	}
	return booking.Succeeded()
}

func (o *Orchestrator) emailMessages(b *booking.Booking, calendarLink string) (EmailMessage, EmailMessage) {
	c := b.Client()
	local := b.DateTime().In(o.cfg.Location)
	date := local.Format(meetingDateLayout)
	slotTime := local.Format(availability.DisplayLayout)
	topic := b.Topic().String()
	link := b.MeetLink().String()
	company := c.CompanyOr(notSpecified)
	experience := c.ExperienceOr(notSpecified)

	calendarRef := calendarLink
	if calendarRef == "" {
		calendarRef = "N/A"
	}

	client := EmailMessage{
		Kind: EmailClientConfirmation,
		Params: map[string]string{
			"to_email":          c.Email.String(),
			"to_name":           c.Name.String(),
			"from_name":         "Coffee Chat Consultations",
			"subject":           "☕ Your Tech Consultation is Confirmed!",
			"meeting_date":      date,
			"meeting_time":      slotTime + meetingTimeSuffix,
			"meeting_topic":     topic,
			"meet_link":         link,
			"client_name":       c.Name.String(),
			"client_company":    company,
			"client_experience": experience,
			"calendar_link":     calendarLink,
			"message": strings.Join([]string{
				"Hi " + c.Name.String() + ",",
				"",
				"Great news! Your tech consultation has been confirmed. Here are the details:",
				"",
				"📅 Date: " + date,
				"⏰ Time: " + slotTime + " PT (Pacific Time)",
				"💻 Topic: " + topic,
				"🎥 Google Meet: " + link,
				"",
				"Before our session:",
				"• Test your microphone and camera",
				"• Prepare any specific questions or code you'd like to discuss",
				"• Have your development environment ready if doing code review",
				"",
				"Looking forward to our chat!",
				"",
				"Best regards,",
				"The Coffee Chat Team",
			}, "\n"),
		},
	}

	admin := EmailMessage{
		Kind: EmailAdminAlert,
		Params: map[string]string{
			"to_email":          o.cfg.AdminEmail,
			"to_name":           "Admin",
			"from_name":         "Coffee Chat Booking System",
			"subject":           "🔔 New Consultation Booking",
			"meeting_date":      date,
			"meeting_time":      slotTime + meetingTimeSuffix,
			"meeting_topic":     topic,
			"meet_link":         link,
			"client_name":       c.Name.String(),
			"client_email":      c.Email.String(),
			"client_company":    company,
			"client_experience": experience,
			"calendar_link":     calendarLink,
			"message": strings.Join([]string{
				"New consultation booking received:",
				"",
				"👤 Client: " + c.Name.String(),
				"📧 Email: " + c.Email.String(),
				"🏢 Company: " + company,
				"⭐ Experience: " + experience,
				"",
				"📅 Date: " + date,
				"⏰ Time: " + slotTime + " PT",
				"💻 Topic: " + topic,
				"🎥 Google Meet: " + link,
				"",
				"Calendar Event: " + calendarRef,
			}, "\n"),
		},
	}
	return client, admin
}

func (o *Orchestrator) observe(conf *booking.Confirmation) {
	o.metrics.ObserveStep(StepCalendar, conf.Calendar.Result)
	o.metrics.ObserveStep(StepPersist, conf.Persist.Result)
	o.metrics.ObserveStep(StepClientEmail, conf.ClientEmail.Result)
	o.metrics.ObserveStep(StepAdminEmail, conf.AdminEmail.Result)
	o.metrics.ObserveConfirmation(conf.Status)
}

func eventSummary(name string) string {
	return "☕ Tech Consultation - " + name
}

// requestID is the conference create request id; it only has to be unique per event.
func requestID(now time.Time) string {
	return "coffee-chat-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.FormatUint(rand.Uint64()%(36*36*36*36*36*36), 36)
}

// CalendarEvent describes a confirmed draft for .ics export and the template link.
func CalendarEvent(d *draft.Draft) ical.Event {
	b := d.Booking()
	c := b.Client()
	return ical.Event{
		UID:           d.ID().String(),
		Start:         b.DateTime(),
		End:           b.EndTime(),
		Summary:       eventSummary(c.Name.String()),
		Description:   "Topic: " + b.Topic().String() + "\nGoogle Meet: " + b.MeetLink().String(),
		Location:      b.MeetLink().String(),
		AttendeeName:  c.Name.String(),
		AttendeeEmail: c.Email.String(),
	}
}
