//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/usecase/queries"
	"consultation-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_ExportCSV(t *testing.T) {
	f := newFixture(t)
	tricky := stored(time.Date(2026, time.October, 15, 10, 30, 0, 0, la), func(b *builder.BookingBuilder) {
		company := `Acme, "Rockets" Inc`
		b.Name, b.Email, b.Company = "Wile E. Coyote", "wile@acme.test", &company
		b.Topic, b.Experience = "Roadrunner, again", ""
	})
	past := stored(time.Date(2026, time.October, 1, 9, 0, 0, 0, la), func(b *builder.BookingBuilder) {
		b.Name, b.Email, b.Company = "Grace Hopper", "grace@navy.mil", nil
		b.Topic, b.Experience = "Career Advice", string(booking.ExperienceSenior)
	})
	f.store.EXPECT().ListAll(gomock.Any()).Return([]*booking.Booking{tricky, past}, nil)

	file, err := f.q.ExportCSV(context.Background(), queries.ListFilter{Window: booking.WindowAll})
	require.NoError(t, err)
	assert.Equal(t, "coffee-bookings-2026-10-14.csv", file.FileName)
	assert.Equal(t, queries.ContentTypeCSV, file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Date", "Time", "Client Name", "Email", "Company", "Topic", "Experience", "Status"},
		{"Thursday, October 15, 2026", "10:30 AM", "Wile E. Coyote", "wile@acme.test", `Acme, "Rockets" Inc`, "Roadrunner, again", "", "Upcoming"},
		{"Thursday, October 1, 2026", "9:00 AM", "Grace Hopper", "grace@navy.mil", "", "Career Advice", "Senior Developer (5+ years)", "Past"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingQueries_ExportCSV_AppliesFilter(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListAll(gomock.Any()).Return(sampleBookings(), nil)

	file, err := f.q.ExportCSV(context.Background(), queries.ListFilter{Window: booking.WindowUpcoming})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Ada Lovelace", records[1][2])
	assert.Equal(t, "Linus Torvalds", records[2][2])
}

func TestBookingQueries_ExportJSON(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().ListAll(gomock.Any()).Return(sampleBookings(), nil)

	file, err := f.q.ExportJSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "coffee-bookings-2026-10-14.json", file.FileName)

	var views []queries.BookingView
	require.NoError(t, json.Unmarshal(file.Data, &views))
	require.Len(t, views, 6)
	assert.Equal(t, "ada@example.com", views[0].ClientEmail)
}
