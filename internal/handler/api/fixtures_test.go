//go:build unit

package api_test

import (
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/draft"

	"github.com/stretchr/testify/require"
)

var (
	la       = mustLoad("America/Los_Angeles")
	fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, la)
	thursday = time.Date(2026, time.October, 15, 0, 0, 0, 0, la)
)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func adaDetails() draft.Details {
	return draft.Details{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Company:    "Analytical Engines",
		Experience: string(booking.ExperienceSenior),
		Topic:      string(booking.TopicSystemArchitecture),
	}
}

func avail() draft.Availability {
	return draft.Availability{Now: fixedNow, WindowDays: 30, Location: la}
}

func draftAtTime(t *testing.T) *draft.Draft {
	t.Helper()
	d := draft.New(fixedNow)
	require.NoError(t, d.SelectDate(thursday, avail()))
	return d
}

func draftAtDetails(t *testing.T) *draft.Draft {
	t.Helper()
	d := draftAtTime(t)
	require.NoError(t, d.SelectTime("10:30", fixedNow))
	return d
}

func confirmedDraft(t *testing.T) *draft.Draft {
	t.Helper()
	d := draftAtDetails(t)
	require.NoError(t, d.SubmitDetails(adaDetails(), la, fixedNow))

	link, err := booking.NewMeetLink("https://meet.google.com/abc-defg-hij")
	require.NoError(t, err)
	b, err := booking.NewBooking(d.DateTime(), *d.Client(), *d.Topic(), link)
	require.NoError(t, err)

	conf := booking.NewConfirmation()
	conf.Calendar = booking.Succeeded()
	conf.Persist = booking.Succeeded()
	conf.ClientEmail = booking.Succeeded()
	conf.AdminEmail = booking.Succeeded()
	conf.Finalize()
	require.NoError(t, d.Confirm(b, conf, fixedNow))
	return d
}
