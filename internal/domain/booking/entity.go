package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDateTime = errors.New("invalid booking date time")
	ErrEmptyChanges    = errors.New("no fields to update")
)

type Booking struct {
	id        uuid.UUID
	dateTime  time.Time
	client    Client
	topic     Topic
	meetLink  MeetLink
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking builds an unsaved booking; id and timestamps are assigned by the store.
func NewBooking(dateTime time.Time, client Client, topic Topic, meetLink MeetLink) (*Booking, error) {
	if dateTime.IsZero() {
		return nil, ErrInvalidDateTime
	}
	return &Booking{
		dateTime: dateTime.UTC(),
		client:   client,
		topic:    topic,
		meetLink: meetLink,
		status:   StatusConfirmed,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	dateTime time.Time,
	client Client,
	topic Topic,
	meetLink MeetLink,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		dateTime:  dateTime.UTC(),
		client:    client,
		topic:     topic,
		meetLink:  meetLink,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) EndTime() time.Time {
	return b.dateTime.Add(SessionDuration)
}

func (b *Booking) IsPersisted() bool {
	return b.id != uuid.Nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) DateTime() time.Time  { return b.dateTime }
func (b *Booking) Client() Client       { return b.client }
func (b *Booking) Topic() Topic         { return b.topic }
func (b *Booking) MeetLink() MeetLink   { return b.meetLink }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

const SessionDuration = 30 * time.Minute

// Changes lists the fields an admin may correct after the fact.
// A non-nil empty Company clears it.
type Changes struct {
	MeetLink   *MeetLink
	Company    *string
	Experience *Experience
}

func (c Changes) IsEmpty() bool {
	return c.MeetLink == nil && c.Company == nil && c.Experience == nil
}

type Window string

const (
	WindowAll      Window = "all"
	WindowUpcoming Window = "upcoming"
	WindowPast     Window = "past"
	WindowToday    Window = "today"
)

var ErrInvalidWindow = errors.New("invalid status window")

func NewWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case "":
		return WindowAll, nil
	case WindowAll, WindowUpcoming, WindowPast, WindowToday:
		return w, nil
	default:
		return "", ErrInvalidWindow
	}
}

// Matches applies the list filter: upcoming is strictly after now, past is at or before now,
// today is the same local calendar day regardless of the hour.
func (w Window) Matches(dateTime, now time.Time, loc *time.Location) bool {
	switch w {
	case WindowUpcoming:
		return dateTime.After(now)
	case WindowPast:
		return !dateTime.After(now)
	case WindowToday:
		return SameDay(dateTime, now, loc)
	default:
		return true
	}
}

// Classify returns the badge shown next to a booking: today wins over upcoming/past.
func Classify(dateTime, now time.Time, loc *time.Location) Window {
	switch {
	case SameDay(dateTime, now, loc):
		return WindowToday
	case dateTime.After(now):
		return WindowUpcoming
	default:
		return WindowPast
	}
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

type ChangeOp string

const (
	ChangeInsert ChangeOp = "INSERT"
	ChangeUpdate ChangeOp = "UPDATE"
	ChangeDelete ChangeOp = "DELETE"
)

type ChangeEvent struct {
	Op ChangeOp  `json:"op"`
	ID uuid.UUID `json:"id"`
}
