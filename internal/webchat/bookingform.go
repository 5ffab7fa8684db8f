package webchat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/automari/agency-ai-platform/internal/consultation"
)

// FormState is the booking form lifecycle.
type FormState int

const (
	FormHidden FormState = iota
	FormVisible
	FormSubmitting
)

var (
	ErrFormHidden      = errors.New("booking form is not visible")
	ErrFormIncomplete  = errors.New("please fill in all required fields")
	ErrNoSampleClient  = errors.New("no such sample client")
	ErrFormNoSubmitter = errors.New("booking form has no backend")
)

// Submitter is the slice of the API client the booking form needs.
type Submitter interface {
	SubmitConsultation(ctx context.Context, req consultation.Request) (BookingReply, error)
}

// SampleClient pre-fills the form for demo walkthroughs.
type SampleClient struct {
	Name       string
	Email      string
	Phone      string
	Type       string
	Background string
	LeadOffset time.Duration
}

// SampleClients are the fixed demo personas shown under the form.
var SampleClients = []SampleClient{
	{
		Name:       "Sarah Johnson",
		Email:      "sarah.johnson@techcorp.com",
		Phone:      "561-555-0142",
		Type:       "initial",
		Background: "Operations lead evaluating AI automation for client intake",
		LeadOffset: 24 * time.Hour,
	},
	{
		Name:       "Mike Rodriguez",
		Email:      "mike.rodriguez@gmail.com",
		Phone:      "561-555-0178",
		Type:       "career",
		Background: "Considering a career change into insurance adjusting",
		LeadOffset: 48 * time.Hour,
	},
	{
		Name:       "Lisa Chen",
		Email:      "lisa.chen@outlook.com",
		Phone:      "561-555-0193",
		Type:       "training",
		Background: "Looking for licensing and training program details",
		LeadOffset: 72 * time.Hour,
	},
}

// BookingForm models the consultation form state machine:
// Hidden -> Visible(intent) -> Submitting -> Hidden.
type BookingForm struct {
	mu        sync.Mutex
	state     FormState
	fields    consultation.Request
	submitter Submitter
	now       func() time.Time
}

// NewBookingForm creates a hidden booking form.
func NewBookingForm(submitter Submitter) *BookingForm {
	return &BookingForm{
		submitter: submitter,
		now:       time.Now,
	}
}

// Show opens the form for the given intent. Showing an already visible
// form switches the intent but keeps filled fields.
func (f *BookingForm) Show(intent string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return
	}
	f.state = FormVisible
	f.fields.Intent = intent
}

// Hide closes the form and clears every field.
func (f *BookingForm) Hide() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormSubmitting {
		return
	}
	f.reset()
}

// State returns the current lifecycle state.
func (f *BookingForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Steps returns the workflow stages the UI animates while the current
// intent is being submitted.
func (f *BookingForm) Steps() []consultation.Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return consultation.StepPlan(f.fields.Intent)
}

// Fields returns a snapshot of the current field values.
func (f *BookingForm) Fields() consultation.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the editable fields, keeping the current intent.
func (f *BookingForm) SetFields(fields consultation.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	intent := f.fields.Intent
	f.fields = fields
	f.fields.Intent = intent
}

// FillSample loads one of the demo personas into the form, showing it
// with the book intent if it was hidden.
func (f *BookingForm) FillSample(i int) error {
	if i < 0 || i >= len(SampleClients) {
		return ErrNoSampleClient
	}
	sample := SampleClients[i]

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == FormHidden {
		f.state = FormVisible
		f.fields.Intent = consultation.IntentBook
	}
	f.fields.ClientName = sample.Name
	f.fields.Email = sample.Email
	f.fields.Phone = sample.Phone
	f.fields.ConsultationType = sample.Type
	f.fields.Background = sample.Background
	f.fields.Datetime = f.now().Add(sample.LeadOffset).Format("2006-01-02T15:04")
	return nil
}

// Validate checks the fields the current intent requires. Bookings and
// reschedules need full contact details; cancellations only the
// reference of the booking to drop.
func (f *BookingForm) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validateFields(f.fields)
}

func validateFields(fields consultation.Request) error {
	switch fields.Intent {
	case consultation.IntentCancel:
		if strings.TrimSpace(fields.BookingRef) == "" {
			return ErrFormIncomplete
		}
	case consultation.IntentReschedule:
		if strings.TrimSpace(fields.BookingRef) == "" {
			return ErrFormIncomplete
		}
		fallthrough
	case consultation.IntentBook:
		if strings.TrimSpace(fields.ClientName) == "" ||
			strings.TrimSpace(fields.Email) == "" ||
			strings.TrimSpace(fields.Datetime) == "" ||
			strings.TrimSpace(fields.Background) == "" {
			return ErrFormIncomplete
		}
	default:
		return ErrFormIncomplete
	}
	return nil
}

// Submit validates and relays the form, always ending hidden with the
// fields cleared.
func (f *BookingForm) Submit(ctx context.Context) (BookingReply, error) {
	f.mu.Lock()
	if f.state != FormVisible {
		f.mu.Unlock()
		return BookingReply{}, ErrFormHidden
	}
	if err := validateFields(f.fields); err != nil {
		f.mu.Unlock()
		return BookingReply{}, err
	}
	if f.submitter == nil {
		f.mu.Unlock()
		return BookingReply{}, ErrFormNoSubmitter
	}
	f.state = FormSubmitting
	fields := f.fields
	f.mu.Unlock()

	reply, err := f.submitter.SubmitConsultation(ctx, fields)

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	return reply, err
}

func (f *BookingForm) reset() {
	f.state = FormHidden
	f.fields = consultation.Request{}
}
