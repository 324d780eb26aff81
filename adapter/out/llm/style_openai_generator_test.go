package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK,
		`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Try a navy blazer."},"finish_reason":"stop"}]}`)

	g := NewOpenAIGenerator(Config{APIKey: "test", BaseURL: srv.URL, Timeout: time.Second})
	got, err := g.Generate(context.Background(), "What goes with grey trousers?")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "Try a navy blazer." {
		t.Errorf("Generate() = %q", got)
	}
	if g.Stats()["count"].(int64) != 1 {
		t.Errorf("latency not recorded: %v", g.Stats())
	}
}

func TestOpenAIGenerator_EmptyChoices(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[]}`)

	g := NewOpenAIGenerator(Config{APIKey: "test", BaseURL: srv.URL, Timeout: time.Second})
	_, err := g.Generate(context.Background(), "hi")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("Generate() error = %v, want ErrEmptyCompletion", err)
	}
}

func TestOpenAIGenerator_BreakerOpens(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusInternalServerError,
		`{"error":{"message":"boom","type":"server_error"}}`)

	g := NewOpenAIGenerator(Config{
		APIKey:           "test",
		BaseURL:          srv.URL,
		Timeout:          time.Second,
		FailureThreshold: 2,
		OpenFor:          time.Minute,
	})
	for i := 0; i < 2; i++ {
		if _, err := g.Generate(context.Background(), "hi"); err == nil {
			t.Fatal("expected provider error")
		}
	}
	if !g.IsOpen() {
		t.Fatal("breaker should be open after consecutive failures")
	}

	before := calls.Load()
	_, err := g.Generate(context.Background(), "hi")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Generate() error = %v, want ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("open breaker must not reach the provider")
	}
}
