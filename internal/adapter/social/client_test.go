package social

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("not-a-url", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewHTTPClient("://bad", testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
}

func TestPendingAwardsParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/awards/pending" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("unexpected limit %s", r.URL.Query().Get("limit"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"award_id":"AW-1","customer_id":"CUST000000001001","post_id":"POST-9","points":25,"awarded_at":"2025-06-01T12:00:00Z"}
		]`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	awards, err := client.PendingAwards(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(awards) != 1 {
		t.Fatalf("expected 1 award, got %d", len(awards))
	}
	if awards[0].AwardID != "AW-1" || awards[0].CustomerID != "CUST000000001001" || awards[0].Points != 25 {
		t.Fatalf("unexpected award: %+v", awards[0])
	}
}

func TestPendingAwardsNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	awards, err := client.PendingAwards(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awards != nil {
		t.Fatalf("expected nil awards, got %+v", awards)
	}
}

func TestPendingAwardsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "12")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.PendingAwards(context.Background(), 5)
	var tooMany TooManyRequestsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}
	if tooMany.RetryAfter != 12*time.Second {
		t.Fatalf("expected retry after 12s, got %v", tooMany.RetryAfter)
	}
}

func TestPendingAwardsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.PendingAwards(context.Background(), 5); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestAcknowledgeOutcomes(t *testing.T) {
	var status int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/awards/AW-1/claim" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	status = http.StatusNoContent
	if err := client.Acknowledge(context.Background(), "AW-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status = http.StatusNotFound
	if err := client.Acknowledge(context.Background(), "AW-1"); !errors.Is(err, ErrUnknownAward) {
		t.Fatalf("expected ErrUnknownAward, got %v", err)
	}

	status = http.StatusBadGateway
	if err := client.Acknowledge(context.Background(), "AW-1"); err == nil {
		t.Fatal("expected error for gateway failure")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter(""); got != 5*time.Second {
		t.Fatalf("expected default 5s, got %v", got)
	}
	if got := parseRetryAfter("30"); got != 30*time.Second {
		t.Fatalf("expected 30s, got %v", got)
	}
	httpDate := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(httpDate); got <= 0 || got > time.Minute {
		t.Fatalf("expected positive duration up to a minute, got %v", got)
	}
	if got := parseRetryAfter("garbage"); got != 5*time.Second {
		t.Fatalf("expected default for garbage header, got %v", got)
	}
}
