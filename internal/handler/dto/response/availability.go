package response

import (
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/booking"

	"github.com/jinzhu/copier"
)

const dateDisplayLayout = "Monday, January 2"

type DateOption struct {
	Value   string `json:"value"`
	Display string `json:"display"`
	Weekday string `json:"weekday"`
}

type SlotResponse struct {
	Value     string `json:"value"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

type OptionsResponse struct {
	Topics           []string `json:"topics"`
	ExperienceLevels []string `json:"experienceLevels"`
	SessionMinutes   int      `json:"sessionMinutes"`
	TimeZone         string   `json:"timeZone"`
}

func FromDates(dates []time.Time) []DateOption {
	out := make([]DateOption, 0, len(dates))
	for _, d := range dates {
		out = append(out, DateOption{
			Value:   d.Format(availability.DateLayout),
			Display: d.Format(dateDisplayLayout),
			Weekday: d.Weekday().String(),
		})
	}
	return out
}

func FromSlots(slots []availability.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	_ = copier.Copy(&out, &slots)
	return out
}

func NewOptionsResponse(loc *time.Location) OptionsResponse {
	topics := booking.TopicOptions()
	levels := booking.ExperienceLevels()

	resp := OptionsResponse{
		Topics:           make([]string, 0, len(topics)),
		ExperienceLevels: make([]string, 0, len(levels)),
		SessionMinutes:   int(availability.SessionDuration / time.Minute),
		TimeZone:         loc.String(),
	}
	for _, t := range topics {
		resp.Topics = append(resp.Topics, string(t))
	}
	for _, l := range levels {
		resp.ExperienceLevels = append(resp.ExperienceLevels, l.String())
	}
	return resp
}
