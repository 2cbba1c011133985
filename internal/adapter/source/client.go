package source

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

	domainErrors "github.com/polkiloo/shopdash/internal/domain/errors"
	"github.com/polkiloo/shopdash/internal/domain/model"
)

// TooManyRequestsError represents rate limiting signal from the order source.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

const defaultMaxRetries = 2

// HTTPClient loads the order collection from a remote JSON endpoint.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	maxRetries int
}

type ownerPayload struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// orderPayload mirrors one element of the GET /orders response.
type orderPayload struct {
	ID      string       `json:"id"`
	User    ownerPayload `json:"user"`
	Project string       `json:"project"`
	Address string       `json:"address"`
	Date    time.Time    `json:"date"`
	Status  string       `json:"status"`
}

// NewHTTPClient creates order source client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order source url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order source url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		logger:     logger,
		maxRetries: defaultMaxRetries,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// List fetches the full order collection. Rate limited responses are retried
// after the advertised delay while ctx allows.
func (c *HTTPClient) List(ctx context.Context) ([]model.Order, error) {
	for attempt := 0; ; attempt++ {
		orders, err := c.fetch(ctx)
		var tm TooManyRequestsError
		if !errors.As(err, &tm) || attempt >= c.maxRetries {
			return orders, err
		}
		c.logger.Warn("order source rate limited", slog.Duration("retry_after", tm.RetryAfter))
		timer := time.NewTimer(tm.RetryAfter)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (c *HTTPClient) fetch(ctx context.Context) ([]model.Order, error) {
	resp, err := c.get(ctx, "/orders")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domainErrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domainErrors.ErrSourceUnavailable, err)
		}
		var data []orderPayload
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("%w: decode orders: %w", domainErrors.ErrSourceUnavailable, err)
		}
		return toOrders(data)
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("order source request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: %s", domainErrors.ErrSourceUnavailable, resp.Status)
	}
}

// HealthCheck probes GET /health of the source.
func (c *HTTPClient) HealthCheck(ctx context.Context) error {
	resp, err := c.get(ctx, "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("order source health: %s", resp.Status)
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, p string) (*http.Response, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, p)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

func toOrders(data []orderPayload) ([]model.Order, error) {
	seen := make(map[string]struct{}, len(data))
	orders := make([]model.Order, 0, len(data))
	for _, p := range data {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: order without id", domainErrors.ErrSourceUnavailable)
		}
		if p.ID == model.VisibleSelectionID {
			return nil, fmt.Errorf("%w: reserved order id %s", domainErrors.ErrSourceUnavailable, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate order id %s", domainErrors.ErrSourceUnavailable, p.ID)
		}
		seen[p.ID] = struct{}{}
		orders = append(orders, model.Order{
			ID:      p.ID,
			User:    model.OrderOwner{Name: p.User.Name, Avatar: p.User.Avatar},
			Project: p.Project,
			Address: p.Address,
			Date:    p.Date,
			Status:  model.OrderStatus(p.Status),
		})
	}
	return orders, nil
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
