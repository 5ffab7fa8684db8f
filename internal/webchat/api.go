package webchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/automari/agency-ai-platform/internal/consultation"
)

// ExecuteReply is the bot router's answer to a chat message.
type ExecuteReply struct {
	Response string `json:"response"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

// BookingReply is the consultation endpoint's answer to a form submission.
type BookingReply struct {
	Success    bool   `json:"success"`
	BookingRef string `json:"bookingRef"`
	Message    string `json:"message"`
	NextSteps  string `json:"nextSteps"`
	Error      string `json:"error"`
}

// API is the HTTP client the chat widget uses against the demo backend.
type API struct {
	baseURL    string
	httpClient *http.Client
}

// APIOption configures the API client.
type APIOption func(*API)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) APIOption {
	return func(a *API) {
		if hc != nil {
			a.httpClient = hc
		}
	}
}

// NewAPI creates a client for the demo backend at baseURL.
func NewAPI(baseURL string, opts ...APIOption) *API {
	a := &API{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute sends a chat message to the bot router.
func (a *API) Execute(ctx context.Context, message string) (ExecuteReply, error) {
	var reply ExecuteReply
	err := a.post(ctx, "/api/execute", map[string]string{"message": message}, &reply)
	return reply, err
}

// SubmitConsultation sends a booking form submission.
func (a *API) SubmitConsultation(ctx context.Context, req consultation.Request) (BookingReply, error) {
	var reply BookingReply
	err := a.post(ctx, "/api/consultation", req, &reply)
	return reply, err
}

func (a *API) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("webchat: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webchat: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webchat: request failed: %w", err)
	}
	defer resp.Body.Close()

	// Error envelopes still carry a JSON body worth surfacing, so decode
	// regardless of status.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("webchat: failed to decode response: %w", err)
	}
	return nil
}
