package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/loyaltyworks/rewards/internal/domain/model"
)

// ErrUnknownAward indicates the feed no longer knows the award, typically
// because another instance already claimed it.
var ErrUnknownAward = errors.New("award not known to feed")

// TooManyRequestsError represents rate limiting signal from the feed service.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes operations against the social post scoring feed.
type Client interface {
	PendingAwards(ctx context.Context, limit int) ([]model.SocialAward, error)
	Acknowledge(ctx context.Context, awardID string) error
}

// HTTPClient implements Client via the feed's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// awardPayload mirrors the JSON document served by the feed.
type awardPayload struct {
	AwardID    string    `json:"award_id"`
	CustomerID string    `json:"customer_id"`
	PostID     string    `json:"post_id"`
	Points     int       `json:"points"`
	AwardedAt  time.Time `json:"awarded_at"`
}

// NewHTTPClient creates an HTTP feed client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("feed url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// PendingAwards fetches approved awards that have not been claimed yet.
func (c *HTTPClient) PendingAwards(ctx context.Context, limit int) ([]model.SocialAward, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/awards/pending")
	query := endpoint.Query()
	query.Set("limit", strconv.Itoa(limit))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var payload []awardPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		awards := make([]model.SocialAward, 0, len(payload))
		for _, a := range payload {
			awards = append(awards, model.SocialAward{
				AwardID:    a.AwardID,
				CustomerID: a.CustomerID,
				PostID:     a.PostID,
				Points:     a.Points,
				AwardedAt:  a.AwardedAt,
			})
		}
		return awards, nil
	case http.StatusNoContent:
		return nil, nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("award feed request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("award feed error: %s", resp.Status)
	}
}

// Acknowledge marks an award as claimed so it is not granted again.
func (c *HTTPClient) Acknowledge(ctx context.Context, awardID string) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/awards/", awardID, "/claim")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrUnknownAward
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("award claim failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("award feed error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
