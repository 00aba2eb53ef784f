package request

import (
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListBookingsQuery struct {
	Search string `form:"search" binding:"max=200"`
	Window string `form:"window"`
}

func (q *ListBookingsQuery) ToFilter() (queries.ListFilter, error) {
	w, err := booking.NewWindow(q.Window)
	if err != nil {
		return queries.ListFilter{}, err
	}
	return queries.ListFilter{Search: q.Search, Window: w}, nil
}

type SlotQuery struct {
	Date string `form:"date" binding:"required"`
	Time string `form:"time" binding:"required"`
}

func (q *SlotQuery) ToDomain(loc *time.Location) (time.Time, error) {
	return availability.ParseDate(q.Date, loc)
}

// UpdateBookingRequest is a partial update: absent fields stay as stored,
// an empty string clears company or experience.
type UpdateBookingRequest struct {
	MeetLink   *string `json:"meetLink" binding:"omitempty,url"`
	Company    *string `json:"company" binding:"omitempty,max=200"`
	Experience *string `json:"experience"`
}

func (r *UpdateBookingRequest) ToInput() (commands.UpdateBookingInput, error) {
	var in commands.UpdateBookingInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.UpdateBookingInput{}, err
	}
	return in, nil
}
