package booking

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrEmptyName       = errors.New("client name is required")
	ErrEmptyEmail      = errors.New("client email is required")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidMeetLink = errors.New("invalid meeting link")
)

// local@domain.tld, nothing stricter.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Topic is either one of the fixed options or free text entered for "Other".
type Topic struct {
	option TopicOption
	custom string
}

func NewTopic(selection, custom string) (Topic, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return Topic{}, ErrEmptyTopic
	}
	opt, ok := lookupTopicOption(selection)
	if !ok {
		return Topic{}, ErrInvalidTopic
	}
	if opt != TopicOther {
		return Topic{option: opt}, nil
	}
	custom = strings.TrimSpace(custom)
	if custom == "" {
		return Topic{}, ErrEmptyCustomTopic
	}
	return Topic{option: TopicOther, custom: custom}, nil
}

// ReconstructTopic maps a stored topic back; anything that is not a fixed option was custom text.
func ReconstructTopic(stored string) Topic {
	if opt, ok := lookupTopicOption(stored); ok && opt != TopicOther {
		return Topic{option: opt}
	}
	return Topic{option: TopicOther, custom: stored}
}

func (t Topic) String() string {
	if t.option == TopicOther {
		return t.custom
	}
	return string(t.option)
}

func (t Topic) Option() TopicOption { return t.option }
func (t Topic) IsCustom() bool      { return t.option == TopicOther }

type ClientName struct {
	value string
}

func NewClientName(s string) (ClientName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ClientName{}, ErrEmptyName
	}
	return ClientName{value: s}, nil
}

func (n ClientName) String() string {
	return n.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Email{}, ErrEmptyEmail
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type Client struct {
	Name       ClientName
	Email      Email
	Company    *string
	Experience Experience
}

func NewClient(name, email string, company *string, experience string) (Client, error) {
	n, err := NewClientName(name)
	if err != nil {
		return Client{}, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return Client{}, err
	}
	exp, err := NewExperience(experience)
	if err != nil {
		return Client{}, err
	}
	return Client{Name: n, Email: e, Company: normalizeOptional(company), Experience: exp}, nil
}

// ReconstructClient restores a stored client without re-validating it.
func ReconstructClient(name, email string, company *string, experience string) Client {
	return Client{
		Name:       ClientName{value: name},
		Email:      Email{value: email},
		Company:    normalizeOptional(company),
		Experience: Experience(experience),
	}
}

func (c Client) CompanyOr(fallback string) string {
	if c.Company == nil {
		return fallback
	}
	return *c.Company
}

func (c Client) ExperienceOr(fallback string) string {
	if !c.Experience.IsSet() {
		return fallback
	}
	return c.Experience.String()
}

type MeetLink struct {
	value    string
	fallback bool
}

func NewMeetLink(s string) (MeetLink, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return MeetLink{}, ErrInvalidMeetLink
	}
	return MeetLink{value: u.String()}, nil
}

func ReconstructMeetLink(s string) MeetLink {
	return MeetLink{value: s}
}

const fallbackMeetBase = "https://meet.google.com/"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// FallbackMeetLink builds a placeholder room URL. Not a real room; not cryptographically random.
func FallbackMeetLink() MeetLink {
	seg := func() string {
		var b [3]byte
		for i := range b {
			b[i] = base36[rand.IntN(len(base36))]
		}
		return string(b[:])
	}
	return MeetLink{value: fmt.Sprintf("%s%s-%s-%s", fallbackMeetBase, seg(), seg(), seg()), fallback: true}
}

func (m MeetLink) String() string   { return m.value }
func (m MeetLink) IsFallback() bool { return m.fallback }

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
