package queries

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"time"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/usecase/shared"
)

const (
	ExportDateLayout = "Monday, January 2, 2006"
	ExportTimeLayout = "3:04 PM"

	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
)

var csvHeader = []string{"Date", "Time", "Client Name", "Email", "Company", "Topic", "Experience", "Status"}

type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportCSV writes the filtered bookings; fields are quoted as needed.
func (q *bookingQueriesImpl) ExportCSV(ctx context.Context, filter ListFilter) (*ExportFile, error) {
	all, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	now := q.clock.Now()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, b := range Filter(all, filter, now, q.loc) {
		if err := w.Write(csvRecord(b, now, q.loc)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportFile{
		FileName:    exportName(now, "csv"),
		ContentType: ContentTypeCSV,
		Data:        buf.Bytes(),
	}, nil
}

func (q *bookingQueriesImpl) ExportJSON(ctx context.Context) (*ExportFile, error) {
	all, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, shared.TranslateBookingErr(err)
	}
	now := q.clock.Now()

	views := make([]BookingView, 0, len(all))
	for _, b := range all {
		views = append(views, ToView(b, now, q.loc))
	}
	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		FileName:    exportName(now, "json"),
		ContentType: ContentTypeJSON,
		Data:        data,
	}, nil
}

func csvRecord(b *booking.Booking, now time.Time, loc *time.Location) []string {
	local := b.DateTime().In(loc)
	c := b.Client()
	status := "Past"
	if b.DateTime().After(now) {
		status = "Upcoming"
	}
	return []string{
		local.Format(ExportDateLayout),
		local.Format(ExportTimeLayout),
		c.Name.String(),
		c.Email.String(),
		c.CompanyOr(""),
		b.Topic().String(),
		c.ExperienceOr(""),
		status,
	}
}

// exportName uses the UTC calendar date.
func exportName(now time.Time, ext string) string {
	return "coffee-bookings-" + now.UTC().Format("2006-01-02") + "." + ext
}
