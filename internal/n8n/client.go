package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/automari/agency-ai-platform/pkg/logging"
)

// ErrNotConfigured is returned when no workflow engine URL is set.
var ErrNotConfigured = errors.New("n8n: webhook URL not configured")

const defaultTimeout = 15 * time.Second

const defaultConsultationResult = "Consultation processed successfully"

// Client relays demo submissions to an n8n workflow engine.
type Client struct {
	baseURL    string
	webhookURL string
	secret     string
	httpClient *http.Client
	logger     *logging.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the relay timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithWebhookSecret sets a bearer token sent on every relay call.
func WithWebhookSecret(secret string) Option {
	return func(c *Client) {
		c.secret = secret
	}
}

// WithConsultationWebhook sets the full URL for consultation submissions.
// When unset, consultations go to {baseURL}/webhook/consultation-booking.
func WithConsultationWebhook(url string) Option {
	return func(c *Client) {
		c.webhookURL = url
	}
}

// NewClient creates a relay client for the given n8n base URL. An empty
// base URL yields an unconfigured client; callers should check Configured
// and fall back to local demo behavior.
func NewClient(baseURL string, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.webhookURL == "" && c.baseURL != "" {
		c.webhookURL = c.baseURL + "/webhook/consultation-booking"
	}
	return c
}

// Configured reports whether the client points at a workflow engine.
func (c *Client) Configured() bool {
	return c.baseURL != "" || c.webhookURL != ""
}

// LeadConfigured reports whether lead capture can be relayed. The lead
// webhook is derived from the base URL, so a consultation-only setup
// leaves leads in local demo mode.
func (c *Client) LeadConfigured() bool {
	return c.baseURL != ""
}

// SubmitLead relays a captured lead to the lead workflow and returns the
// engine's scoring verdict.
func (c *Client) SubmitLead(ctx context.Context, lead LeadPayload) (LeadResult, error) {
	if c.baseURL == "" {
		return LeadResult{}, ErrNotConfigured
	}

	url := c.baseURL + "/webhook/lead-capture"
	var result LeadResult
	if err := c.post(ctx, url, lead, &result); err != nil {
		return LeadResult{}, err
	}

	c.logger.Info("lead relayed",
		"lead_id", result.LeadID,
		"score", result.Score,
		"qualified", result.Qualified,
	)
	return result, nil
}

// SubmitConsultation relays a consultation booking wrapped in the tool
// call envelope and returns the workflow's result message.
func (c *Client) SubmitConsultation(ctx context.Context, args ConsultationArguments) (string, error) {
	if c.webhookURL == "" {
		return "", ErrNotConfigured
	}

	envelope := toolCallEnvelope{
		Body: toolCallBody{
			Message: toolCallMessage{
				ToolCalls: []toolCall{
					{
						ID:       fmt.Sprintf("call_%d", time.Now().UnixMilli()),
						Function: toolCallFunction{Arguments: args},
					},
				},
			},
		},
	}

	var resp toolCallResponse
	if err := c.post(ctx, c.webhookURL, envelope, &resp); err != nil {
		return "", err
	}

	result := defaultConsultationResult
	if len(resp.Results) > 0 && resp.Results[0].Result != "" {
		result = resp.Results[0].Result
	}

	c.logger.Info("consultation relayed",
		"consultation_type", args.ConsultationType,
		"preferred_date", args.PreferredDate,
	)
	return result, nil
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("n8n: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("n8n: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("n8n: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("n8n: workflow returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("n8n: failed to decode response: %w", err)
		}
	}
	return nil
}
