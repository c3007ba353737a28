package social

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/loyaltyworks/rewards/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{SocialFeedAddress: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*HTTPClient); !ok {
		t.Fatalf("expected *HTTPClient, got %T", client)
	}
}

func TestNewClientDisabledWithoutAddress(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: &config.Config{}, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(disabledClient); !ok {
		t.Fatalf("expected disabledClient, got %T", client)
	}

	awards, err := client.PendingAwards(context.Background(), 10)
	if err != nil || awards != nil {
		t.Fatalf("expected empty no-op result, got %+v %v", awards, err)
	}
	if err := client.Acknowledge(context.Background(), "AW-1"); err != nil {
		t.Fatalf("expected no-op acknowledge, got %v", err)
	}
}
