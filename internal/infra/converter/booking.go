package converter

import (
	"consultation-booking/internal/domain/booking"
	sqlc "consultation-booking/internal/infra/sqlc/generated"
	"consultation-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	c := b.Client()
	return sqlc.CreateBookingParams{
		DateTime:         pgconv.TimeToPgtype(b.DateTime()),
		ClientName:       c.Name.String(),
		ClientEmail:      c.Email.String(),
		ClientCompany:    pgconv.StringPtrToPgtype(c.Company),
		ClientExperience: pgconv.OptionalTextToPgtype(c.Experience.String()),
		Topic:            b.Topic().String(),
		MeetLink:         b.MeetLink().String(),
		Status:           b.Status().String(),
	}
}

// ChangesToUpdateParams leaves a field untouched when its change is nil.
func ChangesToUpdateParams(id uuid.UUID, ch booking.Changes) sqlc.UpdateBookingParams {
	params := sqlc.UpdateBookingParams{ID: id}
	if ch.MeetLink != nil {
		params.MeetLink = pgconv.StringToPgtype(ch.MeetLink.String())
	}
	if ch.Company != nil {
		params.SetCompany = true
		params.ClientCompany = pgconv.OptionalTextToPgtype(*ch.Company)
	}
	if ch.Experience != nil {
		params.SetExperience = true
		params.ClientExperience = pgconv.OptionalTextToPgtype(ch.Experience.String())
	}
	return params
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	client := booking.ReconstructClient(
		row.ClientName,
		row.ClientEmail,
		pgconv.StringPtrFromPgtype(row.ClientCompany),
		pgconv.StringFromPgtype(row.ClientExperience),
	)
	return booking.ReconstructBooking(
		row.ID,
		pgconv.TimeFromPgtype(row.DateTime),
		client,
		booking.ReconstructTopic(row.Topic),
		booking.ReconstructMeetLink(row.MeetLink),
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookingsFromRows(rows []sqlc.Bookings) []*booking.Booking {
	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = BookingFromRow(row)
	}
	return result
}
