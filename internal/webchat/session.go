package webchat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/automari/agency-ai-platform/internal/botrouter"
	"github.com/automari/agency-ai-platform/internal/consultation"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

// Sender identifies who wrote a transcript message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one transcript entry.
type Message struct {
	ID        int64
	Sender    Sender
	Text      string
	CreatedAt time.Time
	Category  string
}

// Executor is the slice of the API client a session needs.
type Executor interface {
	Execute(ctx context.Context, message string) (ExecuteReply, error)
}

// Session models the chat widget state: an append-only transcript, an
// awaiting-reply flag and the attached booking form.
type Session struct {
	mu        sync.Mutex
	api       Executor
	logger    *logging.Logger
	messages  []Message
	awaiting  bool
	lastReqID uint64
	lastMsgID int64

	contactPhone string
	contactEmail string

	form *BookingForm
}

// NewSession creates a chat session backed by the given API client.
// The contact details appear in the apology message shown when the
// backend is unreachable.
func NewSession(api Executor, form *BookingForm, contactPhone, contactEmail string, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default()
	}
	return &Session{
		api:          api,
		form:         form,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		logger:       logger,
	}
}

// Submit sends a user message and appends the assistant's reply to the
// transcript. Whitespace-only input is ignored. When several submissions
// overlap, every reply still lands in the transcript but only the newest
// submission controls the awaiting flag.
func (s *Session) Submit(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	s.append(SenderUser, text, "")
	s.awaiting = true
	s.lastReqID++
	reqID := s.lastReqID
	s.mu.Unlock()

	reply, err := s.api.Execute(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil:
		s.logger.Warn("chat request failed", "error", err)
		s.append(SenderAssistant, s.apology(), "")
	case reply.Error != "":
		s.append(SenderAssistant, reply.Error, "")
	default:
		s.append(SenderAssistant, reply.Response, reply.Category)
		s.maybeOpenForm(reply.Category)
	}

	if reqID == s.lastReqID {
		s.awaiting = false
	}
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Awaiting reports whether the newest submission is still unanswered.
func (s *Session) Awaiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Form returns the attached booking form, possibly nil.
func (s *Session) Form() *BookingForm {
	return s.form
}

func (s *Session) append(sender Sender, text, category string) {
	id := time.Now().UnixMilli()
	if id <= s.lastMsgID {
		id = s.lastMsgID + 1
	}
	s.lastMsgID = id
	s.messages = append(s.messages, Message{
		ID:        id,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now(),
		Category:  category,
	})
}

func (s *Session) maybeOpenForm(category string) {
	if s.form == nil {
		return
	}
	switch category {
	case botrouter.CategoryScheduling:
		s.form.Show(consultation.IntentBook)
	case botrouter.CategoryReschedule:
		s.form.Show(consultation.IntentReschedule)
	case botrouter.CategoryCancel:
		s.form.Show(consultation.IntentCancel)
	}
}

func (s *Session) apology() string {
	return fmt.Sprintf(
		"I apologize, but I'm having trouble connecting right now. Please call us at %s or email %s and we'll get right back to you.",
		s.contactPhone, s.contactEmail,
	)
}
