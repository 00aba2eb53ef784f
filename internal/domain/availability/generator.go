package availability

import (
	"iter"
	"time"
)

const (
	DefaultWindowDays = 30
	SessionDuration   = 30 * time.Minute

	firstSlotHour = 9
	lastSlotHour  = 17 // exclusive
	slotStep      = 30 * time.Minute

	ValueLayout   = "15:04"
	DisplayLayout = "3:04 PM"
	DateLayout    = "2006-01-02"
)

// unavailableSlots is a static placeholder; it is not derived from stored bookings.
var unavailableSlots = map[string]struct{}{
	"10:00": {},
	"11:30": {},
	"14:00": {},
	"15:30": {},
}

type TimeSlot struct {
	Value     string
	Display   string
	Available bool
}

// Dates yields the next count weekdays starting tomorrow (relative to now in loc),
// each at local midnight. Every range over the returned sequence starts over.
func Dates(now time.Time, count int, loc *time.Location) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if count <= 0 {
			return
		}
		day := StartOfDay(now, loc)
		for produced := 0; produced < count; {
			day = day.AddDate(0, 0, 1)
			if isWeekend(day) {
				continue
			}
			if !yield(day) {
				return
			}
			produced++
		}
	}
}

// InWindow reports whether date (any time within the day) is one of Dates(now, count, loc).
func InWindow(date, now time.Time, count int, loc *time.Location) bool {
	target := StartOfDay(date, loc)
	for d := range Dates(now, count, loc) {
		if d.Equal(target) {
			return true
		}
		if d.After(target) {
			return false
		}
	}
	return false
}

func TimeSlots() []TimeSlot {
	base := time.Date(2000, time.January, 1, firstSlotHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, time.January, 1, lastSlotHour, 0, 0, 0, time.UTC)

	slots := make([]TimeSlot, 0, int(end.Sub(base)/slotStep))
	for t := base; t.Before(end); t = t.Add(slotStep) {
		value := t.Format(ValueLayout)
		_, blocked := unavailableSlots[value]
		slots = append(slots, TimeSlot{
			Value:     value,
			Display:   t.Format(DisplayLayout),
			Available: !blocked,
		})
	}
	return slots
}

func LookupSlot(value string) (TimeSlot, bool) {
	for _, s := range TimeSlots() {
		if s.Value == value {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// At combines a calendar date and a slot value into an instant in loc.
func At(date time.Time, slotValue string, loc *time.Location) (time.Time, error) {
	clock, err := time.Parse(ValueLayout, slotValue)
	if err != nil {
		return time.Time{}, err
	}
	d := date.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, loc)
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
