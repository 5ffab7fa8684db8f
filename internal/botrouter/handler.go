package botrouter

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/automari/agency-ai-platform/internal/assistant"
	"github.com/automari/agency-ai-platform/internal/observability/metrics"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

// Mode selects how Execute answers messages.
const (
	ModeRules = "rules"
	ModeLLM   = "llm"
)

const llmSystemPrompt = "You are a helpful AI assistant. Be concise and friendly."

const llmMaxTokens = 500

// Handler serves the bot router demo endpoint.
type Handler struct {
	table   *Table
	llm     assistant.Client
	mode    string
	logger  *logging.Logger
	metrics *metrics.DemoMetrics

	// simulated thinking delay, disabled when min/max are zero
	thinkMin time.Duration
	thinkMax time.Duration
}

// HandlerOption configures optional Handler behavior.
type HandlerOption func(*Handler)

// WithLLM enables LLM relay mode using the given client.
func WithLLM(client assistant.Client) HandlerOption {
	return func(h *Handler) {
		h.llm = client
		h.mode = ModeLLM
	}
}

// WithThinkingDelay adds a randomized delay before rule-based replies so
// the demo feels like a live assistant.
func WithThinkingDelay(min, max time.Duration) HandlerOption {
	return func(h *Handler) {
		if min > 0 && max >= min {
			h.thinkMin = min
			h.thinkMax = max
		}
	}
}

// WithMetrics attaches demo metrics.
func WithMetrics(m *metrics.DemoMetrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

// NewHandler creates a bot router handler answering from the given rule table.
func NewHandler(table *Table, logger *logging.Logger, opts ...HandlerOption) *Handler {
	if table == nil {
		table = DefaultTable()
	}
	if logger == nil {
		logger = logging.Default()
	}
	h := &Handler{
		table:  table,
		mode:   ModeRules,
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type executeRequest struct {
	Message any `json:"message"`
}

type executeResponse struct {
	Response  string `json:"response"`
	Category  string `json:"category,omitempty"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Execute answers a demo chat message.
func (h *Handler) Execute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if req.Message == nil {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	message, ok := req.Message.(string)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "message must be a string")
		return
	}
	if message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	if h.mode == ModeLLM && h.llm != nil {
		h.executeLLM(w, r, message)
		return
	}

	category, template, matched := h.table.Match(message)
	if matched {
		h.metrics.ObserveRuleMatch(category)
	}
	h.logger.Info("bot router matched",
		"category", category,
		"matched", matched,
		"message_length", len(message),
	)

	h.simulateThinking(r)

	h.metrics.ObserveRequest("/api/execute", "200")
	writeJSON(w, http.StatusOK, executeResponse{
		Response:  template,
		Category:  category,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) executeLLM(w http.ResponseWriter, r *http.Request, message string) {
	start := time.Now()
	resp, err := h.llm.Complete(r.Context(), assistant.CompletionRequest{
		System: []string{llmSystemPrompt},
		Messages: []assistant.ChatMessage{
			{Role: assistant.ChatRoleUser, Content: message},
		},
		MaxTokens: llmMaxTokens,
	})
	h.metrics.ObserveRelayLatency("llm", time.Since(start))
	if err != nil {
		h.logger.Error("llm completion failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "AI service temporarily unavailable")
		return
	}

	h.metrics.ObserveRequest("/api/execute", "200")
	writeJSON(w, http.StatusOK, executeResponse{
		Response:  resp.Text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Info describes the endpoint for GET requests.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Bot router endpoint. POST a JSON body with a message field to get a response.",
		"method":  "POST",
	})
}

func (h *Handler) simulateThinking(r *http.Request) {
	if h.thinkMin <= 0 {
		return
	}
	delay := h.thinkMin
	if span := h.thinkMax - h.thinkMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	select {
	case <-time.After(delay):
	case <-r.Context().Done():
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.metrics.ObserveRequest("/api/execute", strconv.Itoa(status))
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
