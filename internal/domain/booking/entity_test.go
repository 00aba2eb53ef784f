//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallbackPattern = regexp.MustCompile(`^https://meet\.google\.com/[a-z0-9]{3}-[a-z0-9]{3}-[a-z0-9]{3}$`)

func TestTopic(t *testing.T) {
	testCases := []struct {
		name      string
		selection string
		custom    string
		want      string
		errIs     error
	}{
		{name: "fixed option", selection: "Code Review", want: "Code Review"},
		{name: "custom text ignored for fixed option", selection: "Career Advice", custom: "x", want: "Career Advice"},
		{name: "Other with text", selection: "Other", custom: " GraphQL federation ", want: "GraphQL federation"},
		{name: "Other without text", selection: "Other", errIs: booking.ErrEmptyCustomTopic},
		{name: "empty selection", selection: " ", errIs: booking.ErrEmptyTopic},
		{name: "unknown selection", selection: "Cooking", errIs: booking.ErrInvalidTopic},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			topic, err := booking.NewTopic(tc.selection, tc.custom)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, topic.String())
		})
	}

	t.Run("reconstruct", func(t *testing.T) {
		assert.False(t, booking.ReconstructTopic("Best Practices").IsCustom())
		custom := booking.ReconstructTopic("Kubernetes costs")
		assert.True(t, custom.IsCustom())
		assert.Equal(t, "Kubernetes costs", custom.String())
	})
}

func TestClient(t *testing.T) {
	company := "  Analytical Engines Ltd "
	c, err := booking.NewClient(" Ada Lovelace ", "ada@example.com", &company, "CTO/Architect")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", c.Name.String())
	assert.Equal(t, "Analytical Engines Ltd", c.CompanyOr("Not specified"))
	assert.Equal(t, "CTO/Architect", c.ExperienceOr("Not specified"))

	blank := booking.Client{}
	assert.Equal(t, "Not specified", blank.CompanyOr("Not specified"))
	assert.Equal(t, "Not specified", blank.ExperienceOr("Not specified"))

	_, err = booking.NewClient("Ada", "not-an-email", nil, "")
	assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	_, err = booking.NewClient("Ada", "ada@example.com", nil, "Guru")
	assert.ErrorIs(t, err, booking.ErrInvalidExperience)
}

func TestMeetLink(t *testing.T) {
	link, err := booking.NewMeetLink("https://meet.google.com/abc-defg-hij")
	require.NoError(t, err)
	assert.False(t, link.IsFallback())

	for _, bad := range []string{"", "meet.google.com/abc", "ftp://x.y/z", "https://"} {
		_, err := booking.NewMeetLink(bad)
		assert.ErrorIs(t, err, booking.ErrInvalidMeetLink, bad)
	}

	for range 50 {
		fb := booking.FallbackMeetLink()
		assert.True(t, fb.IsFallback())
		assert.Regexp(t, fallbackPattern, fb.String())
	}
}

func TestWindowAndClassify(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	now := time.Date(2026, time.October, 14, 12, 0, 0, 0, loc)

	past := now.AddDate(0, 0, -3)
	earlierToday := now.Add(-2 * time.Hour)
	laterToday := now.Add(3 * time.Hour)
	future := now.AddDate(0, 0, 5)

	t.Run("classify", func(t *testing.T) {
		assert.Equal(t, booking.WindowPast, booking.Classify(past, now, loc))
		assert.Equal(t, booking.WindowToday, booking.Classify(earlierToday, now, loc))
		assert.Equal(t, booking.WindowToday, booking.Classify(laterToday, now, loc))
		assert.Equal(t, booking.WindowUpcoming, booking.Classify(future, now, loc))
	})

	t.Run("filter", func(t *testing.T) {
		assert.True(t, booking.WindowPast.Matches(past, now, loc))
		assert.True(t, booking.WindowPast.Matches(now, now, loc), "past includes now")
		assert.False(t, booking.WindowUpcoming.Matches(now, now, loc))
		assert.True(t, booking.WindowUpcoming.Matches(future, now, loc))
		assert.True(t, booking.WindowToday.Matches(laterToday, now, loc))
		assert.False(t, booking.WindowToday.Matches(future, now, loc))
		assert.True(t, booking.WindowAll.Matches(past, now, loc))
	})

	t.Run("parse", func(t *testing.T) {
		w, err := booking.NewWindow("")
		require.NoError(t, err)
		assert.Equal(t, booking.WindowAll, w)
		_, err = booking.NewWindow("tomorrow")
		assert.ErrorIs(t, err, booking.ErrInvalidWindow)
	})
}

func TestConfirmation_Finalize(t *testing.T) {
	testCases := []struct {
		name        string
		setup       func(c *booking.Confirmation)
		wantStatus  booking.ConfirmationStatus
		wantMessage string
	}{
		{
			name: "all steps succeeded",
			setup: func(c *booking.Confirmation) {
				c.Calendar, c.Persist, c.ClientEmail, c.AdminEmail = booking.Succeeded(), booking.Succeeded(), booking.Succeeded(), booking.Succeeded()
			},
			wantStatus:  booking.ConfirmationFull,
			wantMessage: booking.MessageFull,
		},
		{
			name: "calendar fallback alone keeps full confirmation",
			setup: func(c *booking.Confirmation) {
				c.Calendar = booking.FellBack(assert.AnError)
				c.Persist, c.ClientEmail, c.AdminEmail = booking.Succeeded(), booking.Succeeded(), booking.Succeeded()
			},
			wantStatus:  booking.ConfirmationFull,
			wantMessage: booking.MessageFull,
		},
		{
			name: "schema missing",
			setup: func(c *booking.Confirmation) {
				c.Persist = booking.Failed(assert.AnError)
				c.SchemaMissing = true
				c.ClientEmail, c.AdminEmail = booking.Succeeded(), booking.Succeeded()
			},
			wantStatus:  booking.ConfirmationDegraded,
			wantMessage: booking.MessageSchemaMissing,
		},
		{
			name: "persist failed",
			setup: func(c *booking.Confirmation) {
				c.Persist = booking.Failed(assert.AnError)
			},
			wantStatus:  booking.ConfirmationDegraded,
			wantMessage: booking.MessageNotSaved,
		},
		{
			name: "one email failed",
			setup: func(c *booking.Confirmation) {
				c.Persist, c.ClientEmail = booking.Succeeded(), booking.Succeeded()
				c.AdminEmail = booking.Failed(assert.AnError)
			},
			wantStatus:  booking.ConfirmationDegraded,
			wantMessage: booking.MessageEmailFailed,
		},
		{
			name: "unexpected error wins",
			setup: func(c *booking.Confirmation) {
				c.Persist, c.ClientEmail, c.AdminEmail = booking.Succeeded(), booking.Succeeded(), booking.Succeeded()
				c.Unexpected = true
			},
			wantStatus:  booking.ConfirmationDegraded,
			wantMessage: booking.MessageUnexpected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := booking.NewConfirmation()
			tc.setup(c)
			c.Finalize()
			assert.Equal(t, tc.wantStatus, c.Status)
			assert.Equal(t, tc.wantMessage, c.Message)
		})
	}
}
