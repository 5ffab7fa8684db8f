package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/automari/agency-ai-platform/pkg/logging"
)

type stubClient struct {
	resp  CompletionResponse
	err   error
	calls int
}

func (s *stubClient) Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestFallbackUsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubClient{resp: CompletionResponse{Text: "primary answer"}}
	fallback := &stubClient{resp: CompletionResponse{Text: "fallback answer"}}
	client := NewFallbackClient(primary, fallback, logging.Default())

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if resp.Text != "primary answer" {
		t.Fatalf("expected primary response, got %q", resp.Text)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback should not be called, got %d calls", fallback.calls)
	}
}

func TestFallbackRetriesOnPrimaryFailure(t *testing.T) {
	primary := &stubClient{err: errors.New("rate limited")}
	fallback := &stubClient{resp: CompletionResponse{Text: "fallback answer"}}
	client := NewFallbackClient(primary, fallback, logging.Default())

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if resp.Text != "fallback answer" {
		t.Fatalf("expected fallback response, got %q", resp.Text)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected one call each, got primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestFallbackReturnsErrorWhenBothFail(t *testing.T) {
	primary := &stubClient{err: errors.New("rate limited")}
	fallback := &stubClient{err: errors.New("quota exceeded")}
	client := NewFallbackClient(primary, fallback, logging.Default())

	_, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected an error when both providers fail")
	}
	if err.Error() != "quota exceeded" {
		t.Fatalf("expected the fallback error to surface, got %v", err)
	}
}

func TestFallbackWithoutSecondaryPropagatesError(t *testing.T) {
	primary := &stubClient{err: errors.New("rate limited")}
	client := NewFallbackClient(primary, nil, logging.Default())

	_, err := client.Complete(context.Background(), CompletionRequest{
		Messages: []ChatMessage{{Role: ChatRoleUser, Content: "hello"}},
	})
	if err == nil || err.Error() != "rate limited" {
		t.Fatalf("expected primary error to propagate, got %v", err)
	}
}
