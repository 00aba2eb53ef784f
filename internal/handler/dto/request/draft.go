package request

import (
	"time"

	"consultation-booking/internal/domain/availability"
	"consultation-booking/internal/domain/draft"

	"github.com/jinzhu/copier"
)

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

func (r *SelectDateRequest) ToDomain(loc *time.Location) (time.Time, error) {
	return availability.ParseDate(r.Date, loc)
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

// SubmitDetailsRequest carries no binding rules: the draft validates every
// field at once and answers with per-field messages.
type SubmitDetailsRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Topic       string `json:"topic"`
	CustomTopic string `json:"customTopic"`
}

func (r *SubmitDetailsRequest) ToDomain() (draft.Details, error) {
	var d draft.Details
	if err := copier.Copy(&d, r); err != nil {
		return draft.Details{}, err
	}
	return d, nil
}
