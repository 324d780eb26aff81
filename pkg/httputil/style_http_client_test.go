package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	cfg := DefaultClientConfig()
	cfg.ResponseTimeout = 2 * time.Second
	client := NewClient(cfg)

	tr, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport = %T", client.Transport)
	}
	if tr.MaxConnsPerHost != 50 || tr.MaxIdleConns != 20 {
		t.Errorf("pool limits = %d/%d", tr.MaxConnsPerHost, tr.MaxIdleConns)
	}
	if client.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v", client.Timeout)
	}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
