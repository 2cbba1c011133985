package router

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopdash/internal/config"
	"github.com/polkiloo/shopdash/internal/domain/model"
	"github.com/polkiloo/shopdash/internal/metrics"
	"github.com/polkiloo/shopdash/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/shopdash/internal/test"
)

func newTestEngine(metricsEnabled bool) (*gin.Engine, *metrics.Metrics) {
	gin.SetMode(gin.TestMode)
	orders := make([]model.Order, 15)
	for i := range orders {
		orders[i] = model.Order{ID: fmt.Sprintf("ORD-%04d", i+1), Date: time.Unix(int64(i)*3600, 0), Status: model.OrderStatusComplete}
	}
	m := metrics.New()
	engine := Setup(Params{
		Facade:  testhelpers.DashboardFacadeStub{OrderFacadeStub: testhelpers.OrderFacadeStub{Orders: orders}},
		Config:  &config.Config{MetricsEnabled: metricsEnabled},
		Metrics: m,
		Logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	return engine, m
}

func TestSetupRoutes(t *testing.T) {
	engine, _ := newTestEngine(true)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/dashboard", "", http.StatusOK},
		{http.MethodGet, "/api/notifications", "", http.StatusOK},
		{http.MethodGet, "/api/activities", "", http.StatusOK},
		{http.MethodGet, "/api/contacts", "", http.StatusOK},
		{http.MethodGet, "/api/orders?page=2", "", http.StatusOK},
		{http.MethodPost, "/api/orders/views", "", http.StatusCreated},
		{http.MethodGet, "/api/orders/views/s", "", http.StatusOK},
		{http.MethodDelete, "/api/orders/views/s", "", http.StatusNoContent},
		{http.MethodPut, "/api/orders/views/s/search", `{"query":"ord"}`, http.StatusOK},
		{http.MethodPut, "/api/orders/views/s/sort", `{"key":"id","direction":"asc"}`, http.StatusOK},
		{http.MethodPost, "/api/orders/views/s/sort/toggle", "", http.StatusOK},
		{http.MethodPut, "/api/orders/views/s/page", `{"page":2}`, http.StatusOK},
		{http.MethodPost, "/api/orders/views/s/page/next", "", http.StatusOK},
		{http.MethodPost, "/api/orders/views/s/page/previous", "", http.StatusOK},
		{http.MethodPost, "/api/orders/views/s/selection/ORD-0001/toggle", "", http.StatusOK},
		{http.MethodPost, "/api/orders/views/s/selection/visible/toggle", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			resp := httptest.NewRecorder()
			engine.ServeHTTP(resp, req)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestSetupMetricsDisabled(t *testing.T) {
	engine, _ := newTestEngine(false)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when metrics disabled, got %d", resp.Code)
	}
}

func TestSetupRecordsRequestMetrics(t *testing.T) {
	engine, _ := newTestEngine(true)
	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/views/abc", nil))

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(resp.Body.String(), `shopdash_http_requests_total{method="GET",route="/api/orders/views/:id",status="200"} 1`) {
		t.Fatalf("expected request counter in exposition, got:\n%s", resp.Body.String())
	}
}

func TestSetupCompressesResponses(t *testing.T) {
	engine, _ := newTestEngine(false)
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	reader, err := gzip.NewReader(bytes.NewReader(resp.Body.Bytes()))
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read gzip body: %v", err)
	}
	if !strings.Contains(string(data), `"total_items":15`) {
		t.Fatalf("unexpected body %s", data)
	}
}

var _ handlers.DashboardFacade = testhelpers.DashboardFacadeStub{}
