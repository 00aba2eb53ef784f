package draft

import (
	"errors"
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid draft transition")
	ErrDateOutsideWindow = errors.New("date is not an available weekday")
	ErrUnknownSlot       = errors.New("unknown time slot")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrAlreadyConfirmed  = errors.New("draft already has a confirmation")
	ErrNotConfirming     = errors.New("draft is not confirming")
)

type Step string

const (
	StepSelectingDate   Step = "selecting_date"
	StepSelectingTime   Step = "selecting_time"
	StepEnteringDetails Step = "entering_details"
	StepConfirming      Step = "confirming"
)

func (s Step) Number() int {
	switch s {
	case StepSelectingDate:
		return 1
	case StepSelectingTime:
		return 2
	case StepEnteringDetails:
		return 3
	case StepConfirming:
		return 4
	default:
		return 0
	}
}

// Availability is the window a date must fall into when selected.
type Availability struct {
	Now        time.Time
	WindowDays int
	Location   *time.Location
}

type Draft struct {
	id   uuid.UUID
	step Step

	date    *time.Time
	slot    *availability.TimeSlot
	details *Details

	client   *booking.Client
	topic    *booking.Topic
	dateTime time.Time

	booking      *booking.Booking
	confirmation *booking.Confirmation

	createdAt time.Time
	updatedAt time.Time
}

func New(now time.Time) *Draft {
	return &Draft{
		id:        uuid.New(),
		step:      StepSelectingDate,
		createdAt: now,
		updatedAt: now,
	}
}

func (d *Draft) SelectDate(date time.Time, avail Availability) error {
	if d.step != StepSelectingDate {
		return ErrInvalidTransition
	}
	if !availability.InWindow(date, avail.Now, avail.WindowDays, avail.Location) {
		return ErrDateOutsideWindow
	}
	day := availability.StartOfDay(date, avail.Location)
	d.date = &day
	d.slot = nil
	d.step = StepSelectingTime
	d.touch(avail.Now)
	return nil
}

func (d *Draft) SelectTime(value string, now time.Time) error {
	if d.step != StepSelectingTime {
		return ErrInvalidTransition
	}
	slot, ok := availability.LookupSlot(value)
	if !ok {
		return ErrUnknownSlot
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}
	d.slot = &slot
	d.step = StepEnteringDetails
	d.touch(now)
	return nil
}

// SubmitDetails validates the client form. On success the draft enters StepConfirming;
// on failure it returns FieldErrors and stays where it is.
func (d *Draft) SubmitDetails(in Details, loc *time.Location, now time.Time) error {
	if d.step != StepEnteringDetails {
		return ErrInvalidTransition
	}
	input := in
	d.details = &input

	client, topic, err := in.Validate()
	if err != nil {
		return err
	}
	dt, err := availability.At(*d.date, d.slot.Value, loc)
	if err != nil {
		return err
	}

	d.client = &client
	d.topic = &topic
	d.dateTime = dt.UTC()
	d.step = StepConfirming
	d.touch(now)
	return nil
}

func (d *Draft) Back(now time.Time) error {
	switch d.step {
	case StepSelectingTime:
		d.step = StepSelectingDate
	case StepEnteringDetails:
		d.step = StepSelectingTime
	default:
		return ErrInvalidTransition
	}
	d.touch(now)
	return nil
}

// Reset starts a new booking with the same draft id.
func (d *Draft) Reset(now time.Time) {
	*d = Draft{
		id:        d.id,
		step:      StepSelectingDate,
		createdAt: d.createdAt,
		updatedAt: now,
	}
}

func (d *Draft) Confirm(b *booking.Booking, c *booking.Confirmation, now time.Time) error {
	if d.step != StepConfirming {
		return ErrNotConfirming
	}
	if d.confirmation != nil {
		return ErrAlreadyConfirmed
	}
	d.booking = b
	d.confirmation = c
	d.touch(now)
	return nil
}

func (d *Draft) Clone() *Draft {
	cp := *d
	return &cp
}

func (d *Draft) touch(now time.Time) {
	d.updatedAt = now
}

func (d *Draft) ID() uuid.UUID                       { return d.id }
func (d *Draft) Step() Step                          { return d.step }
func (d *Draft) Date() *time.Time                    { return d.date }
func (d *Draft) Slot() *availability.TimeSlot        { return d.slot }
func (d *Draft) Details() *Details                   { return d.details }
func (d *Draft) Client() *booking.Client             { return d.client }
func (d *Draft) Topic() *booking.Topic               { return d.topic }
func (d *Draft) DateTime() time.Time                 { return d.dateTime }
func (d *Draft) Booking() *booking.Booking           { return d.booking }
func (d *Draft) Confirmation() *booking.Confirmation { return d.confirmation }
func (d *Draft) CreatedAt() time.Time                { return d.createdAt }
func (d *Draft) UpdatedAt() time.Time                { return d.updatedAt }
