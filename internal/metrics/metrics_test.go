package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCategorization(t *testing.T) {
	okBefore := testutil.ToFloat64(categorizations.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(categorizations.WithLabelValues("error"))

	RecordCategorization(nil, 12, 5*time.Millisecond)
	RecordCategorization(errors.New("boom"), 0, time.Millisecond)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(categorizations.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(categorizations.WithLabelValues("error")))
}

func TestInstrumentUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/clients/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/clients/{id}", "418"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/42", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/clients/{id}", "418")))
}

func TestHandlerServesRegistry(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "insights_categorize_runs_total")
}
