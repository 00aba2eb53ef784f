package queries

import (
	"context"
	"strings"
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrChangeFeedClosed = errs.New("booking change feed closed")
	ErrUnknownSlot      = errs.New("unknown time slot")
)

type BookingView struct {
	ID               uuid.UUID      `json:"id"`
	DateTime         time.Time      `json:"dateTime"`
	ClientName       string         `json:"clientName"`
	ClientEmail      string         `json:"clientEmail"`
	ClientCompany    *string        `json:"clientCompany,omitempty"`
	ClientExperience *string        `json:"clientExperience,omitempty"`
	Topic            string         `json:"topic"`
	MeetLink         string         `json:"meetLink"`
	Status           string         `json:"status"`
	Badge            booking.Window `json:"badge"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// Stats are always computed over every stored booking, never the filtered list.
type Stats struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Past      int `json:"past"`
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
	ThisYear  int `json:"thisYear"`
	Pending   int `json:"pending"`
}

type ListFilter struct {
	Search string
	Window booking.Window
}

type BookingList struct {
	Bookings []BookingView `json:"bookings"`
	Stats    Stats         `json:"stats"`
}

type SlotStatus struct {
	DateTime time.Time `json:"dateTime"`
	Time     string    `json:"time"`
	Display  string    `json:"display"`
	InGrid   bool      `json:"inGrid"`
	Taken    bool      `json:"taken"`
}

type BookingQueries interface {
	List(ctx context.Context, filter ListFilter) (*BookingList, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListForDate(ctx context.Context, date time.Time) ([]BookingView, error)
	SlotAvailability(ctx context.Context, date time.Time, slot string) (*SlotStatus, error)
	ExportCSV(ctx context.Context, filter ListFilter) (*ExportFile, error)
	ExportJSON(ctx context.Context) (*ExportFile, error)
	Watch(ctx context.Context, owner string, filter ListFilter, emit func(*BookingList) error) error
}

type bookingQueriesImpl struct {
	store BookingReadStore
	feed  ChangeFeed
	clock clock.Clock
	loc   *time.Location
}

func NewBookingQueries(store BookingReadStore, feed ChangeFeed, clk clock.Clock, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{store: store, feed: feed, clock: clk, loc: loc}
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter ListFilter) (*BookingList, error) {
	all, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	now := q.clock.Now()

	filtered := Filter(all, filter, now, q.loc)
	views := make([]BookingView, 0, len(filtered))
	for _, b := range filtered {
		views = append(views, ToView(b, now, q.loc))
	}
	return &BookingList{
		Bookings: views,
		Stats:    ComputeStats(all, now, q.loc),
	}, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	v := ToView(b, q.clock.Now(), q.loc)
	return &v, nil
}

func (q *bookingQueriesImpl) ListForDate(ctx context.Context, date time.Time) ([]BookingView, error) {
	rows, err := q.store.ListForDate(ctx, date)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	now := q.clock.Now()
	views := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		views = append(views, ToView(b, now, q.loc))
	}
	return views, nil
}

// SlotAvailability reports whether a stored booking already starts at the slot.
// InGrid mirrors the static placeholder grid and is independent of Taken.
func (q *bookingQueriesImpl) SlotAvailability(ctx context.Context, date time.Time, slot string) (*SlotStatus, error) {
	ts, ok := availability.LookupSlot(slot)
	if !ok {
		return nil, ErrUnknownSlot
	}
	at, err := availability.At(date, ts.Value, q.loc)
	if err != nil {
		return nil, ErrUnknownSlot
	}
	taken, err := q.store.IsSlotTaken(ctx, at.UTC())
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	return &SlotStatus{
		DateTime: at.UTC(),
		Time:     ts.Value,
		Display:  ts.Display,
		InGrid:   ts.Available,
		Taken:    taken,
	}, nil
}

// Watch holds one subscription for its whole lifetime and emits the current
// list first and again after every change. It returns nil once ctx is done.
func (q *bookingQueriesImpl) Watch(ctx context.Context, owner string, filter ListFilter, emit func(*BookingList) error) error {
	sub, err := q.feed.Subscribe(ctx, owner)
	if err != nil {
		return err
	}
	defer sub.Close()

	if err := q.emitList(ctx, filter, emit); err != nil {
		return err
	}

	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return ErrChangeFeedClosed
			}
			if err := q.emitList(ctx, filter, emit); err != nil {
				return err
			}
		}
	}
}

func (q *bookingQueriesImpl) emitList(ctx context.Context, filter ListFilter, emit func(*BookingList) error) error {
	list, err := q.List(ctx, filter)
	if err != nil {
		return err
	}
	return emit(list)
}

// Filter applies the search first and the window second.
func Filter(all []*booking.Booking, filter ListFilter, now time.Time, loc *time.Location) []*booking.Booking {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]*booking.Booking, 0, len(all))
	for _, b := range all {
		if term != "" && !matchesSearch(b, term) {
			continue
		}
		if !filter.Window.Matches(b.DateTime(), now, loc) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesSearch(b *booking.Booking, term string) bool {
	c := b.Client()
	fields := []string{c.Name.String(), c.Email.String(), b.Topic().String()}
	if c.Company != nil {
		fields = append(fields, *c.Company)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func ComputeStats(all []*booking.Booking, now time.Time, loc *time.Location) Stats {
	today := availability.StartOfDay(now, loc)
	startOfWeek := today.AddDate(0, 0, -int(today.Weekday()))
	startOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
	startOfYear := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)

	s := Stats{Total: len(all)}
	for _, b := range all {
		dt := b.DateTime()
		if dt.After(now) {
			s.Upcoming++
			if b.Status() == booking.StatusConfirmed {
				s.Pending++
			}
		} else {
			s.Past++
		}
		if booking.SameDay(dt, now, loc) {
			s.Today++
		}
		if !dt.Before(startOfWeek) {
			s.ThisWeek++
		}
		if !dt.Before(startOfMonth) {
			s.ThisMonth++
		}
		if !dt.Before(startOfYear) {
			s.ThisYear++
		}
	}
	return s
}

// ToView flattens a booking and badges it relative to now.
func ToView(b *booking.Booking, now time.Time, loc *time.Location) BookingView {
	c := b.Client()
	v := BookingView{
		ID:            b.ID(),
		DateTime:      b.DateTime(),
		ClientName:    c.Name.String(),
		ClientEmail:   c.Email.String(),
		ClientCompany: c.Company,
		Topic:         b.Topic().String(),
		MeetLink:      b.MeetLink().String(),
		Status:        b.Status().String(),
		Badge:         booking.Classify(b.DateTime(), now, loc),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if c.Experience.IsSet() {
		exp := c.Experience.String()
		v.ClientExperience = &exp
	}
	return v
}
