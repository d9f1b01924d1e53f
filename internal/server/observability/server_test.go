package observability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestHealthEndpoints(t *testing.T) {
	ready := true
	s := NewServer(":0", func(context.Context) error {
		if ready {
			return nil
		}
		return common.KindConnectionError.Wrap(errors.New("db down"))
	}, logging.Discard())
	h := s.Handler()

	code, body := get(t, h, "/healthz/liveness")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok\n", body)

	code, _ = get(t, h, "/healthz/readiness")
	assert.Equal(t, http.StatusOK, code)

	ready = false
	code, body = get(t, h, "/healthz/readiness")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not ready\n", body)
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(":0", nil, logging.Discard())
	s.Metrics().ObserveRPC("/gophauth.v1.AuthService/Ping", "OK", 3*time.Millisecond)
	RegisterSessionGauge(s.Registry(), func() int { return 5 })

	code, body := get(t, s.Handler(), "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `gophauth_rpc_requests_total{code="OK",method="/gophauth.v1.AuthService/Ping"} 1`)
	assert.Contains(t, body, "gophauth_sessions_active 5")
	assert.Contains(t, body, "go_goroutines")
}

func TestObserveRPC_Counts(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveRPC("/m", "OK", time.Millisecond)
	m.ObserveRPC("/m", "OK", time.Millisecond)
	m.ObserveRPC("/m", "Internal", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/m", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/m", "Internal")))
}

type stubHasher struct{ err error }

func (s stubHasher) Hash(p string) (string, error) { return "h:" + p, s.err }
func (s stubHasher) Verify(string, string) error   { return s.err }

func TestInstrumentHasher(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	h := InstrumentHasher(stubHasher{err: common.ErrHashMismatch}, m)

	_, err := h.Hash("pw")
	require.ErrorIs(t, err, common.ErrHashMismatch)
	require.ErrorIs(t, h.Verify("pw", "h"), common.ErrHashMismatch)

	assert.Equal(t, 2, testutil.CollectAndCount(m.HashDuration))
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", nil, logging.Discard())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_BadAddress(t *testing.T) {
	s := NewServer("127.0.0.1:99999", nil, logging.Discard())
	err := s.Run(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "99999"))
}
