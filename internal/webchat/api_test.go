package webchat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automari/agency-ai-platform/internal/consultation"
)

func TestAPIExecute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/execute", r.URL.Path)
		w.Write([]byte(`{"response":"We can help with that.","category":"support"}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	reply, err := api.Execute(context.Background(), "customer support?")

	require.NoError(t, err)
	assert.Equal(t, "We can help with that.", reply.Response)
	assert.Equal(t, "support", reply.Category)
}

func TestAPIExecuteDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"message is required"}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	reply, err := api.Execute(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "message is required", reply.Error)
}

func TestAPISubmitConsultation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/consultation", r.URL.Path)
		w.Write([]byte(`{"success":true,"bookingRef":"BKG-20250312-1430","message":"Consultation processed successfully"}`))
	}))
	defer srv.Close()

	api := NewAPI(srv.URL)
	reply, err := api.SubmitConsultation(context.Background(), consultation.Request{
		Intent:     consultation.IntentBook,
		ClientName: "Lisa Chen",
		Email:      "lisa.chen@outlook.com",
		Datetime:   "2025-03-12T14:30",
		Background: "training details",
	})

	require.NoError(t, err)
	assert.True(t, reply.Success)
	assert.Equal(t, "BKG-20250312-1430", reply.BookingRef)
}

func TestAPINetworkFailure(t *testing.T) {
	api := NewAPI("http://127.0.0.1:1")

	_, err := api.Execute(context.Background(), "hello")
	assert.Error(t, err)
}
