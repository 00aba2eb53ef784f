package booking

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidExperience = errors.New("invalid experience level")
	ErrInvalidTopic      = errors.New("invalid topic")
	ErrEmptyTopic        = errors.New("topic is required")
	ErrEmptyCustomTopic  = errors.New("custom topic is required")
)

type Status string

const StatusConfirmed Status = "confirmed"

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusConfirmed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type Experience string

const (
	ExperienceNone         Experience = ""
	ExperienceStudent      Experience = "Student"
	ExperienceJunior       Experience = "Junior Developer (0-2 years)"
	ExperienceMidLevel     Experience = "Mid-level Developer (2-5 years)"
	ExperienceSenior       Experience = "Senior Developer (5+ years)"
	ExperienceEngManager   Experience = "Engineering Manager"
	ExperienceCTOArchitect Experience = "CTO/Architect"
	ExperienceNonTechnical Experience = "Non-technical"
)

var experienceLevels = []Experience{
	ExperienceStudent,
	ExperienceJunior,
	ExperienceMidLevel,
	ExperienceSenior,
	ExperienceEngManager,
	ExperienceCTOArchitect,
	ExperienceNonTechnical,
}

func ExperienceLevels() []Experience {
	out := make([]Experience, len(experienceLevels))
	copy(out, experienceLevels)
	return out
}

func (e Experience) String() string {
	return string(e)
}

func (e Experience) IsSet() bool {
	return e != ExperienceNone
}

// NewExperience accepts the empty string as "not specified".
func NewExperience(s string) (Experience, error) {
	if s == "" {
		return ExperienceNone, nil
	}
	for _, lvl := range experienceLevels {
		if string(lvl) == s {
			return lvl, nil
		}
	}
	return "", ErrInvalidExperience
}

type TopicOption string

const (
	TopicCodeReview         TopicOption = "Code Review"
	TopicSystemArchitecture TopicOption = "System Architecture"
	TopicCareerAdvice       TopicOption = "Career Advice"
	TopicInterviewPrep      TopicOption = "Technical Interview Prep"
	TopicProjectPlanning    TopicOption = "Project Planning"
	TopicStackDecision      TopicOption = "Technology Stack Decision"
	TopicPerformance        TopicOption = "Performance Optimization"
	TopicBestPractices      TopicOption = "Best Practices"
	TopicOther              TopicOption = "Other"
)

var topicOptions = []TopicOption{
	TopicCodeReview,
	TopicSystemArchitecture,
	TopicCareerAdvice,
	TopicInterviewPrep,
	TopicProjectPlanning,
	TopicStackDecision,
	TopicPerformance,
	TopicBestPractices,
	TopicOther,
}

func TopicOptions() []TopicOption {
	out := make([]TopicOption, len(topicOptions))
	copy(out, topicOptions)
	return out
}

func lookupTopicOption(s string) (TopicOption, bool) {
	for _, opt := range topicOptions {
		if string(opt) == s {
			return opt, true
		}
	}
	return "", false
}
