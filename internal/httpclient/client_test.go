package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNextRequestIDIsUUIDv4(t *testing.T) {
	id := nextRequestID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("request_id must be a valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("request_id must be UUID v4, got version %d (%q)", parsed.Version(), id)
	}
	if parsed.Variant() != uuid.RFC4122 {
		t.Fatalf("request_id must use RFC4122 variant, got %v (%q)", parsed.Variant(), id)
	}
}

func TestIsRetryable(t *testing.T) {
	if isRetryable(nil) {
		t.Fatalf("nil error must not be retryable")
	}
	if isRetryable(errors.New("boom")) {
		t.Fatalf("plain non-network error must not be retryable")
	}
	if isRetryable(context.Canceled) {
		t.Fatalf("canceled context must not be retryable")
	}
	if !isRetryable(&HTTPStatusError{StatusCode: http.StatusInternalServerError}) {
		t.Fatalf("500 should be retryable")
	}
	if !isRetryable(&HTTPStatusError{StatusCode: http.StatusTooManyRequests}) {
		t.Fatalf("429 should be retryable")
	}
	if isRetryable(&HTTPStatusError{StatusCode: http.StatusBadRequest}) {
		t.Fatalf("400 must not be retryable")
	}
}

func TestDoJSONRetriesServerErrors(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			http.Error(w, "try later", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := New(ts.Client(), nil, 3, 5*time.Millisecond, nil, nil, false)

	var out struct {
		OK bool `json:"ok"`
	}
	_, _, err := c.DoJSON(context.Background(), http.MethodPost, ts.URL, map[string]any{"ping": 1}, &out)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if !out.OK {
		t.Fatalf("unexpected decoded response: %+v", out)
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestDoJSONDoesNotRetryClientErrors(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	c := New(ts.Client(), nil, 3, 5*time.Millisecond, nil, nil, false)

	_, _, err := c.DoJSON(context.Background(), http.MethodPost, ts.URL, map[string]any{"ping": 1}, nil)

	var hs *HTTPStatusError
	if !errors.As(err, &hs) || hs.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected HTTPStatusError 400, got %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected exactly one attempt for a 400, got %d", got)
	}
}

func TestDoJSONSetsDefaultHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type: %q", got)
		}
		if got := r.Header.Get("X-Custom"); got != "on" {
			t.Errorf("unexpected X-Custom header: %q", got)
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.Client(), nil, 1, time.Millisecond, map[string]string{"X-Custom": "on"}, nil, false)

	_, _, err := c.DoJSON(context.Background(), http.MethodPost, ts.URL, map[string]any{"ping": 1}, nil)
	if err != nil {
		t.Fatalf("do json: %v", err)
	}
}

func TestPrepareBodyPassesRawBytesThrough(t *testing.T) {
	raw := []byte(`{"already":"encoded"}`)
	got, err := prepareBody(raw)
	if err != nil {
		t.Fatalf("prepare body: %v", err)
	}
	if string(got) != string(raw) {
		t.Fatalf("raw bytes must pass through unchanged, got %q", got)
	}

	none, err := prepareBody(nil)
	if err != nil || none != nil {
		t.Fatalf("nil body must stay nil, got %q err=%v", none, err)
	}
}
