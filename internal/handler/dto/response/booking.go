package response

import (
	"time"

	"consultation-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	DateTime         time.Time `json:"dateTime"`
	ClientName       string    `json:"clientName"`
	ClientEmail      string    `json:"clientEmail"`
	ClientCompany    *string   `json:"clientCompany,omitempty"`
	ClientExperience *string   `json:"clientExperience,omitempty"`
	Topic            string    `json:"topic"`
	MeetLink         string    `json:"meetLink"`
	Status           string    `json:"status"`
	Badge            string    `json:"badge"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type StatsResponse struct {
	Total     int `json:"total"`
	Upcoming  int `json:"upcoming"`
	Past      int `json:"past"`
	Today     int `json:"today"`
	ThisWeek  int `json:"thisWeek"`
	ThisMonth int `json:"thisMonth"`
	ThisYear  int `json:"thisYear"`
	Pending   int `json:"pending"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    StatsResponse     `json:"stats"`
}

type SlotStatusResponse struct {
	DateTime  time.Time `json:"dateTime"`
	Time      string    `json:"time"`
	Display   string    `json:"display"`
	InGrid    bool      `json:"inGrid"`
	Taken     bool      `json:"taken"`
	Available bool      `json:"available"`
}

type SetupResponse struct {
	Message string `json:"message"`
	SQL     string `json:"sql"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.Badge = string(v.Badge)
	return resp
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(views))
	for i := range views {
		out = append(out, FromBookingView(&views[i]))
	}
	return out
}

func FromBookingList(l *queries.BookingList) BookingListResponse {
	var stats StatsResponse
	_ = copier.Copy(&stats, &l.Stats)
	return BookingListResponse{
		Bookings: FromBookingViews(l.Bookings),
		Stats:    stats,
	}
}

func FromSlotStatus(s *queries.SlotStatus) SlotStatusResponse {
	var resp SlotStatusResponse
	_ = copier.Copy(&resp, s)
	resp.Available = s.InGrid && !s.Taken
	return resp
}
