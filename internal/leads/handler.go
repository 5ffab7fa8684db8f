package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/automari/agency-ai-platform/internal/n8n"
	"github.com/automari/agency-ai-platform/internal/observability/metrics"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

const relayFailureMessage = "Failed to process lead through n8n workflow. Please try again."

// Relay is the slice of the workflow client the lead handler needs.
type Relay interface {
	LeadConfigured() bool
	SubmitLead(ctx context.Context, lead n8n.LeadPayload) (n8n.LeadResult, error)
}

// Handler serves the lead generation demo endpoint.
type Handler struct {
	relay       Relay
	logger      *logging.Logger
	metrics     *metrics.DemoMetrics
	exposeError bool
}

// NewHandler creates a lead handler. exposeError controls whether relay
// error details are echoed to the caller; keep it off in production.
func NewHandler(relay Relay, logger *logging.Logger, m *metrics.DemoMetrics, exposeError bool) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		relay:       relay,
		logger:      logger,
		metrics:     m,
		exposeError: exposeError,
	}
}

type leadResponse struct {
	Success   bool   `json:"success"`
	LeadID    string `json:"leadId"`
	Score     int    `json:"score"`
	Qualified bool   `json:"qualified"`
	Message   string `json:"message"`
	NextSteps string `json:"nextSteps"`
	Timestamp string `json:"timestamp"`
}

type leadErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Capture accepts a lead submission and relays it to the lead workflow,
// scoring locally when no workflow engine is configured.
func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	var lead Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if err := lead.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	lead.Normalize()

	if h.relay != nil && h.relay.LeadConfigured() {
		h.captureViaWorkflow(w, r, lead)
		return
	}

	// Demo mode: score locally the way the workflow would.
	score := Score(lead)
	qualified := Qualified(score)
	h.logger.Info("lead scored locally",
		"score", score,
		"qualified", qualified,
		"source", lead.Source,
	)

	h.metrics.ObserveRequest("/api/lead-generation", "200")
	writeJSON(w, http.StatusOK, leadResponse{
		Success:   true,
		LeadID:    "LEAD-" + uuid.NewString(),
		Score:     score,
		Qualified: qualified,
		Message:   "Thank you! Your information has been received.",
		NextSteps: nextSteps(qualified),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) captureViaWorkflow(w http.ResponseWriter, r *http.Request, lead Lead) {
	payload := n8n.LeadPayload{
		Name:      lead.Name,
		Email:     lead.Email,
		Company:   lead.Company,
		Phone:     lead.Phone,
		Message:   lead.Message,
		Source:    lead.Source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserAgent: r.UserAgent(),
		IP:        r.RemoteAddr,
	}

	start := time.Now()
	result, err := h.relay.SubmitLead(r.Context(), payload)
	h.metrics.ObserveRelayLatency("n8n", time.Since(start))
	if err != nil {
		h.logger.Error("lead relay failed", "error", err)
		details := ""
		if h.exposeError {
			details = err.Error()
		}
		h.writeError(w, http.StatusInternalServerError, relayFailureMessage, details)
		return
	}

	message := result.Message
	if message == "" {
		message = "Thank you! Your information has been received."
	}
	steps := result.NextSteps
	if steps == "" {
		steps = nextSteps(result.Qualified)
	}

	h.metrics.ObserveRequest("/api/lead-generation", "200")
	writeJSON(w, http.StatusOK, leadResponse{
		Success:   true,
		LeadID:    result.LeadID,
		Score:     result.Score,
		Qualified: result.Qualified,
		Message:   message,
		NextSteps: steps,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Status reports endpoint health for GET requests.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	configured := h.relay != nil && h.relay.LeadConfigured()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"service":    "lead-generation-api",
		"configured": configured,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func nextSteps(qualified bool) string {
	if qualified {
		return "Our team will contact you within 24 hours to schedule a consultation."
	}
	return "We'll review your inquiry and follow up with automation resources."
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, details string) {
	h.metrics.ObserveRequest("/api/lead-generation", strconv.Itoa(status))
	writeJSON(w, status, leadErrorResponse{
		Success:   false,
		Error:     msg,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
