package booking

type StepResult string

const (
	StepSucceeded StepResult = "succeeded"
	StepFailed    StepResult = "failed"
	StepFallback  StepResult = "fallback"
	StepSkipped   StepResult = "skipped"
)

type StepOutcome struct {
	Result StepResult `json:"result"`
	Error  string     `json:"error,omitempty"`
}

func Succeeded() StepOutcome { return StepOutcome{Result: StepSucceeded} }
func Skipped() StepOutcome   { return StepOutcome{Result: StepSkipped} }

func Failed(err error) StepOutcome {
	return StepOutcome{Result: StepFailed, Error: errText(err)}
}

func FellBack(err error) StepOutcome {
	return StepOutcome{Result: StepFallback, Error: errText(err)}
}

func (s StepOutcome) OK() bool {
	return s.Result == StepSucceeded
}

type ConfirmationStatus string

const (
	ConfirmationFull     ConfirmationStatus = "confirmed"
	ConfirmationDegraded ConfirmationStatus = "confirmed_degraded"
)

const (
	MessageFull          = "Confirmation emails sent successfully!"
	MessageSchemaMissing = "Booking confirmed, but the booking database is not set up"
	MessageNotSaved      = "Booking confirmed, but it could not be saved"
	MessageEmailFailed   = "Booking confirmed, but email sending failed"
	MessageUnexpected    = "Booking confirmed, but some features unavailable"
)

// Confirmation is the record of one orchestration attempt. Status and Message are
// derived by Finalize from the step outcomes only.
type Confirmation struct {
	Calendar      StepOutcome
	Persist       StepOutcome
	ClientEmail   StepOutcome
	AdminEmail    StepOutcome
	SchemaMissing bool
	Unexpected    bool

	CalendarEventLink string

	Status  ConfirmationStatus
	Message string
}

func NewConfirmation() *Confirmation {
	return &Confirmation{
		Calendar:    Skipped(),
		Persist:     Skipped(),
		ClientEmail: Skipped(),
		AdminEmail:  Skipped(),
	}
}

func (c *Confirmation) Finalize() {
	c.Status = deriveStatus(c)
	c.Message = deriveMessage(c)
}

func deriveStatus(c *Confirmation) ConfirmationStatus {
	if !c.Unexpected && c.Persist.OK() && c.ClientEmail.OK() && c.AdminEmail.OK() {
		return ConfirmationFull
	}
	return ConfirmationDegraded
}

func deriveMessage(c *Confirmation) string {
	switch {
	case c.Unexpected:
		return MessageUnexpected
	case !c.Persist.OK() && c.SchemaMissing:
		return MessageSchemaMissing
	case !c.Persist.OK():
		return MessageNotSaved
	case !c.ClientEmail.OK() || !c.AdminEmail.OK():
		return MessageEmailFailed
	default:
		return MessageFull
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
