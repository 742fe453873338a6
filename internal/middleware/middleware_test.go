package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenant(t *testing.T) {
	var got int
	h := Tenant(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = TenantFromContext(r.Context())
		require.NoError(t, err)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TenantHeader, "12")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, got)

	for _, v := range []string{"", "abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if v != "" {
			req.Header.Set(TenantHeader, v)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, v)
		assert.Contains(t, rec.Body.String(), `"missing_tenant"`, v)
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, id, seen)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5123"
	assert.Equal(t, "10.0.0.1", ClientIP(req))

	// forwarding headers from an untrusted peer are ignored
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("X-Real-IP", "203.0.113.10")
	assert.Equal(t, "10.0.0.1", ClientIP(req))
}

func TestTrustedProxiesClientIP(t *testing.T) {
	tp, err := ParseTrustedProxies([]string{"10.0.0.0/8", " 192.168.1.1 ", ""})
	require.NoError(t, err)
	require.Len(t, tp, 2)

	cases := []struct {
		name   string
		remote string
		xff    []string
		xri    string
		want   string
	}{
		{name: "untrusted peer", remote: "203.0.113.7:4000", xff: []string{"198.51.100.1"}, want: "203.0.113.7"},
		{name: "trusted peer", remote: "10.1.2.3:4000", xff: []string{"198.51.100.1"}, want: "198.51.100.1"},
		{name: "spoofed leftmost", remote: "10.1.2.3:4000", xff: []string{"1.2.3.4, 198.51.100.1"}, want: "198.51.100.1"},
		{name: "proxy chain", remote: "10.1.2.3:4000", xff: []string{"198.51.100.1, 192.168.1.1", "10.9.9.9"}, want: "198.51.100.1"},
		{name: "garbage hop", remote: "10.1.2.3:4000", xff: []string{"nonsense, 10.2.2.2"}, want: "10.2.2.2"},
		{name: "real ip header", remote: "192.168.1.1:80", xri: "198.51.100.5", want: "198.51.100.5"},
		{name: "no headers", remote: "192.168.1.1:80", want: "192.168.1.1"},
		{name: "no port", remote: "203.0.113.7", want: "203.0.113.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remote
			for _, v := range tc.xff {
				req.Header.Add("X-Forwarded-For", v)
			}
			if tc.xri != "" {
				req.Header.Set("X-Real-IP", tc.xri)
			}
			assert.Equal(t, tc.want, tp.ClientIP(req))
		})
	}
}

func TestParseTrustedProxiesRejectsGarbage(t *testing.T) {
	_, err := ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
	_, err = ParseTrustedProxies([]string{"proxy.local"})
	assert.Error(t, err)
}
