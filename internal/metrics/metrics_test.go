package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	m := New()

	m.Passes.WithLabelValues("completed").Inc()
	m.Resolutions.WithLabelValues("found").Add(2)
	m.StaleReleases.Inc()
	m.SkipSetSize.Set(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Passes.WithLabelValues("completed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StaleReleases))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SkipSetSize))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Submissions.WithLabelValues("success").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `seasonsync_submissions_total{result="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
