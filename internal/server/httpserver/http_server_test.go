package httpserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/localsite/internal/config"
	smw "git.home.luguber.info/inful/localsite/internal/server/middleware"
)

const body = `{"name": "Gupta Electronics", "phone": "+91 98765 43210", "services": "AC Repair"}`

func TestRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	srv := httptest.NewServer(New(cfg, Options{Registry: prom.NewRegistry()}).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/sites", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	require.NotEmpty(t, resp.Header.Get(smw.RequestIDHeader))

	resp, err = http.Get(srv.URL + "/api/v1/sites")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(data), `localsite_generation_outcomes_total{outcome="warning"} 1`)
	require.Contains(t, string(data), "localsite_http_request_duration_seconds")
}

func TestMetricsDisabled(t *testing.T) {
	srv := httptest.NewServer(New(config.Default(), Options{}).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv := httptest.NewServer(New(config.Default(), Options{}).Handler())
	defer srv.Close()

	const id = "3f8c1a52-7d0e-4d8e-9a53-2f4b8f1b6c10"
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set(smw.RequestIDHeader, id)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, id, resp.Header.Get(smw.RequestIDHeader))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(config.Default(), Options{}).Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
