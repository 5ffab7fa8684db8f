package consultation

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/automari/agency-ai-platform/internal/n8n"
	"github.com/automari/agency-ai-platform/internal/observability/metrics"
	"github.com/automari/agency-ai-platform/pkg/logging"
)

const relayFailureMessage = "Failed to process consultation booking. Please try again."

const defaultResultMessage = "Consultation processed successfully"

// Relay is the slice of the workflow client the booking handler needs.
type Relay interface {
	Configured() bool
	SubmitConsultation(ctx context.Context, args n8n.ConsultationArguments) (string, error)
}

// Handler serves the consultation booking demo endpoint.
type Handler struct {
	relay       Relay
	logger      *logging.Logger
	metrics     *metrics.DemoMetrics
	exposeError bool
	now         func() time.Time
}

// NewHandler creates a consultation handler. exposeError controls whether
// relay error details are echoed to the caller.
func NewHandler(relay Relay, logger *logging.Logger, m *metrics.DemoMetrics, exposeError bool) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		relay:       relay,
		logger:      logger,
		metrics:     m,
		exposeError: exposeError,
		now:         time.Now,
	}
}

type bookingResponse struct {
	Success    bool           `json:"success"`
	LeadID     string         `json:"leadId"`
	Qualified  bool           `json:"qualified"`
	Score      int            `json:"score"`
	BookingRef string         `json:"bookingRef,omitempty"`
	Message    string         `json:"message"`
	NextSteps  string         `json:"nextSteps"`
	Workflow   WorkflowStatus `json:"workflow"`
	Timestamp  string         `json:"timestamp"`
}

type bookingErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Book processes a booking, reschedule or cancellation submission.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if err := req.Validate(); err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	// New bookings get a reference stamped from the submission time;
	// reschedules and cancellations echo the reference they refer to.
	bookingRef := req.BookingRef
	if req.Intent == IntentBook {
		bookingRef = FormatBookingReference(h.now())
	}

	message := defaultResultMessage
	if h.relay != nil && h.relay.Configured() {
		start := h.now()
		result, err := h.relay.SubmitConsultation(r.Context(), n8n.ConsultationArguments{
			Name:             req.ClientName,
			Email:            req.Email,
			Phone:            req.Phone,
			ConsultationType: req.ConsultationType,
			PreferredDate:    req.Datetime,
			Message:          req.Background,
			Intent:           req.Intent,
		})
		h.metrics.ObserveRelayLatency("n8n", time.Since(start))
		if err != nil {
			h.logger.Error("consultation relay failed", "error", err, "intent", req.Intent)
			details := ""
			if h.exposeError {
				details = err.Error()
			}
			h.writeError(w, http.StatusInternalServerError, relayFailureMessage, details)
			return
		}
		if result != "" {
			message = result
		}
	}

	h.logger.Info("consultation processed",
		"intent", req.Intent,
		"consultation_type", req.ConsultationType,
		"booking_ref", bookingRef,
	)

	h.metrics.ObserveRequest("/api/consultation", "200")
	writeJSON(w, http.StatusOK, bookingResponse{
		Success:    true,
		LeadID:     "CONSULT-" + strconv.FormatInt(h.now().UnixMilli(), 10),
		Qualified:  true,
		Score:      70 + rand.Intn(31),
		BookingRef: bookingRef,
		Message:    message,
		NextSteps:  NextSteps(req.Intent),
		Workflow:   completedWorkflow(),
		Timestamp:  h.now().UTC().Format(time.RFC3339),
	})
}

// Preflight answers CORS preflight checks sent by browsers before the
// booking POST.
func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, details string) {
	h.metrics.ObserveRequest("/api/consultation", strconv.Itoa(status))
	writeJSON(w, status, bookingErrorResponse{
		Success:   false,
		Error:     msg,
		Details:   details,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
