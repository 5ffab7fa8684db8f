package consultation

import (
	"errors"
	"strings"
)

// Booking intents supported by the demo.
const (
	IntentBook       = "book"
	IntentReschedule = "reschedule"
	IntentCancel     = "cancel"
)

// Type describes an offered consultation slot.
type Type struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Duration int    `json:"durationMinutes"`
}

// Types lists the consultations a visitor can book.
var Types = []Type{
	{ID: "initial", Label: "Initial Consultation", Duration: 30},
	{ID: "career", Label: "Career Guidance", Duration: 45},
	{ID: "training", Label: "Training Information", Duration: 30},
	{ID: "followup", Label: "Follow-up", Duration: 30},
}

var (
	ErrUnknownIntent     = errors.New("intent must be book, reschedule or cancel")
	ErrMissingClientName = errors.New("client_name is required")
	ErrMissingEmail      = errors.New("email is required")
	ErrMissingDatetime   = errors.New("datetime is required")
	ErrMissingBookingRef = errors.New("bookingRef is required")
)

// Request is a consultation booking submission.
type Request struct {
	Intent           string `json:"intent"`
	ClientName       string `json:"client_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ConsultationType string `json:"consultation_type"`
	Datetime         string `json:"datetime"`
	Background       string `json:"background"`
	BookingRef       string `json:"bookingRef"`
}

// Validate checks the fields each intent needs. New bookings need contact
// details; reschedules and cancellations need the reference of the
// booking they change.
func (r Request) Validate() error {
	switch r.Intent {
	case IntentBook:
		if strings.TrimSpace(r.ClientName) == "" {
			return ErrMissingClientName
		}
		if strings.TrimSpace(r.Email) == "" {
			return ErrMissingEmail
		}
		if strings.TrimSpace(r.Datetime) == "" {
			return ErrMissingDatetime
		}
	case IntentReschedule:
		if strings.TrimSpace(r.BookingRef) == "" {
			return ErrMissingBookingRef
		}
		if strings.TrimSpace(r.Datetime) == "" {
			return ErrMissingDatetime
		}
	case IntentCancel:
		if strings.TrimSpace(r.BookingRef) == "" {
			return ErrMissingBookingRef
		}
	default:
		return ErrUnknownIntent
	}
	return nil
}
