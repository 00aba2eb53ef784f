package draft

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"consultation-booking/internal/domain/booking"
)

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldTopic       = "topic"
	FieldCustomTopic = "customTopic"
	FieldExperience  = "experience"
)

const (
	MsgNameRequired      = "Name is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Please enter a valid email address"
	MsgTopicRequired     = "Please specify what you'd like to discuss"
	MsgTopicInvalid      = "Please select a valid topic"
	MsgCustomTopic       = "Please specify your consultation topic"
	MsgExperienceInvalid = "Please select a valid experience level"
)

// Details is the raw client form as submitted.
type Details struct {
	Name        string
	Email       string
	Company     string
	Experience  string
	Topic       string
	CustomTopic string
}

// FieldErrors maps form fields to the message shown next to them.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := slices.Sorted(maps.Keys(fe))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Validate reports every failing field at once.
func (d Details) Validate() (booking.Client, booking.Topic, error) {
	fe := FieldErrors{}

	name, err := booking.NewClientName(d.Name)
	if err != nil {
		fe[FieldName] = MsgNameRequired
	}

	email, err := booking.NewEmail(d.Email)
	switch {
	case errors.Is(err, booking.ErrEmptyEmail):
		fe[FieldEmail] = MsgEmailRequired
	case err != nil:
		fe[FieldEmail] = MsgEmailInvalid
	}

	topic, err := booking.NewTopic(d.Topic, d.CustomTopic)
	switch {
	case errors.Is(err, booking.ErrEmptyTopic):
		fe[FieldTopic] = MsgTopicRequired
	case errors.Is(err, booking.ErrInvalidTopic):
		fe[FieldTopic] = MsgTopicInvalid
	case errors.Is(err, booking.ErrEmptyCustomTopic):
		fe[FieldCustomTopic] = MsgCustomTopic
	}

	experience, err := booking.NewExperience(strings.TrimSpace(d.Experience))
	if err != nil {
		fe[FieldExperience] = MsgExperienceInvalid
	}

	if len(fe) > 0 {
		return booking.Client{}, booking.Topic{}, fe
	}

	company := d.Company
	client, err := booking.NewClient(name.String(), email.String(), &company, experience.String())
	if err != nil {
		return booking.Client{}, booking.Topic{}, err
	}
	return client, topic, nil
}
