package observability

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevel(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("nonsense")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestContextLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestMetricsRecord(t *testing.T) {
	m := NewMetrics()
	m.RecordInquiry("demo-request", "sent", 120*time.Millisecond)
	m.RecordInquiry("demo-request", "sent", 80*time.Millisecond)
	m.RecordInquiry("contact", "invalid", 0)
	m.RecordHeadSync(27, nil)
	m.RecordHeadSync(0, errors.New("boom"))
	m.RecordHTTPRequest(http.MethodGet, "/pricing", http.StatusOK, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.inquiriesTotal.WithLabelValues("demo-request", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inquiriesTotal.WithLabelValues("contact", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.headSyncsTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/pricing", "200")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordInquiry("contact", "sent", time.Second)
		m.RecordHeadSync(1, nil)
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
	})
}

func TestInquiryDurationOnlyForDeliveries(t *testing.T) {
	m := NewMetrics()
	m.RecordInquiry("contact", "invalid", 2*time.Millisecond)
	m.RecordInquiry("demo-request", "busy", 3*time.Millisecond)
	assert.Equal(t, 0, testutil.CollectAndCount(m.inquiryDuration))

	m.RecordInquiry("contact", "failed", 40*time.Millisecond)
	m.RecordInquiry("demo-request", "sent", 90*time.Millisecond)
	assert.Equal(t, 2, testutil.CollectAndCount(m.inquiryDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inquiriesTotal.WithLabelValues("demo-request", "busy")))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.RecordInquiry("contact", "sent", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `covera_web_inquiries_total{kind="contact",outcome="sent"} 1`)
}
