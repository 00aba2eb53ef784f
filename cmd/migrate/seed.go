package main

import (
	"errors"
	"slices"
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"

	"github.com/brianvoe/gofakeit/v7"
)

// demoBookings spreads n bookings over the weekdays from windowDays ago to
// windowDays ahead, so every dashboard window has rows.
func demoBookings(now time.Time, n, windowDays int, loc *time.Location) ([]*booking.Booking, error) {
	dates := slices.Collect(availability.Dates(now.AddDate(0, 0, -windowDays), 2*windowDays, loc))
	slots := availability.TimeSlots()
	topics := booking.TopicOptions()
	levels := booking.ExperienceLevels()
	if len(dates) == 0 {
		return nil, errors.New("booking window is empty, set BOOKING_WINDOW_DAYS")
	}

	out := make([]*booking.Booking, 0, n)
	for range n {
		at, err := availability.At(dates[gofakeit.IntN(len(dates))], slots[gofakeit.IntN(len(slots))].Value, loc)
		if err != nil {
			return nil, err
		}

		var company *string
		if gofakeit.Bool() {
			c := gofakeit.Company()
			company = &c
		}
		client, err := booking.NewClient(gofakeit.Name(), gofakeit.Email(), company, levels[gofakeit.IntN(len(levels))].String())
		if err != nil {
			return nil, err
		}

		selection := topics[gofakeit.IntN(len(topics))]
		custom := ""
		if selection == booking.TopicOther {
			custom = gofakeit.BuzzWord() + " " + gofakeit.HackerNoun()
		}
		topic, err := booking.NewTopic(string(selection), custom)
		if err != nil {
			return nil, err
		}

		b, err := booking.NewBooking(at, client, topic, booking.FallbackMeetLink())
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
