package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-insights/internal/apisrv/respond"
	"github.com/jekabolt/grbpwr-insights/internal/daterange"
	"github.com/jekabolt/grbpwr-insights/internal/dependency/mocks"
	"github.com/jekabolt/grbpwr-insights/internal/dto"
	"github.com/jekabolt/grbpwr-insights/internal/entity"
	gerr "github.com/jekabolt/grbpwr-insights/internal/errors"
	"github.com/jekabolt/grbpwr-insights/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tenantId = 7

type testServer struct {
	*Server
	reporter    *mocks.ClientReporter
	categorizer *mocks.ClientCategorizer
	clients     *mocks.Clients
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	ts := &testServer{
		reporter:    mocks.NewClientReporter(t),
		categorizer: mocks.NewClientCategorizer(t),
		clients:     mocks.NewClients(t),
	}
	resolver := daterange.New(daterange.WithNow(func() time.Time { return now }))
	ts.Server = New(resolver, ts.reporter, ts.categorizer, ts.clients)
	return ts
}

func (ts *testServer) get(t *testing.T, target string, tenant string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if tenant != "" {
		req.Header.Set(middleware.TenantHeader, tenant)
	}
	rec := httptest.NewRecorder()
	ts.Router().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) respond.ErrorPanel {
	t.Helper()
	var body respond.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestGetClientCategories(t *testing.T) {
	t.Run("preset with default comparison", func(t *testing.T) {
		ts := newTestServer(t)
		primary := ts.resolver.Preset(daterange.Last7Days)
		secondary := ts.resolver.Preset(daterange.Last30Days)

		ts.reporter.EXPECT().
			Report(mock.Anything, tenantId, entity.ComparisonRequest{Primary: primary, Secondary: &secondary}).
			Return(&entity.ClientCategoriesReport{
				Period:       primary,
				TotalClients: 2,
				Behavior: []entity.CategoryStatsWithComparison{{
					CategoryStats: entity.CategoryStats{
						Category:        string(entity.BehaviorActive),
						Count:           2,
						Percentage:      100,
						TotalSpent:      decimal.NewFromInt(300),
						AverageSpending: decimal.NewFromInt(150),
					},
				}},
				Spending: []entity.CategoryStatsWithComparison{},
			}, nil)

		rec := ts.get(t, "/clients/categories?preset=last-7-days&compare=true", "7")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp dto.ClientCategoriesReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.TotalClients)
		assert.Equal(t, "last-7-days", resp.Period.Preset)
		require.Len(t, resp.BehaviorStats, 1)
		assert.Equal(t, "300.00", resp.BehaviorStats[0].TotalSpent)
		assert.Equal(t, "150.00", resp.BehaviorStats[0].AverageSpending)
		assert.Empty(t, resp.SpendingStats)
	})

	t.Run("custom window without comparison", func(t *testing.T) {
		ts := newTestServer(t)
		w, err := ts.resolver.Custom("2024-01-01", "2024-01-31")
		require.NoError(t, err)

		ts.reporter.EXPECT().
			Report(mock.Anything, tenantId, entity.ComparisonRequest{Primary: w}).
			Return(&entity.ClientCategoriesReport{Period: w}, nil)

		rec := ts.get(t, "/clients/categories?from=2024-01-01&to=2024-01-31", "7")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("reversed bounds", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.get(t, "/clients/categories?from=2024-02-01&to=2024-01-01", "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_window", decodeError(t, rec).Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.get(t, "/clients/categories?from=yesterday-ish&to=2024-01-01", "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_request", decodeError(t, rec).Code)
	})

	t.Run("missing tenant", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.get(t, "/clients/categories", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "missing_tenant", decodeError(t, rec).Code)
	})

	t.Run("data access failure is shown inline", func(t *testing.T) {
		ts := newTestServer(t)
		ts.reporter.EXPECT().
			Report(mock.Anything, tenantId, mock.Anything).
			Return(nil, errors.New("connection refused"))

		rec := ts.get(t, "/clients/categories", "7")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		panel := decodeError(t, rec)
		assert.Equal(t, "internal", panel.Code)
		assert.Contains(t, panel.Message, "connection refused")
	})
}

func TestGetCategoryMembers(t *testing.T) {
	t.Run("behavior members", func(t *testing.T) {
		ts := newTestServer(t)
		w := ts.resolver.Preset(daterange.Last30Days)
		last := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

		ts.categorizer.EXPECT().
			Members(mock.Anything, tenantId, w, entity.MemberFilter{Behavior: entity.BehaviorActive}).
			Return([]entity.ClientCategorized{{
				Summary: entity.ClientOrderSummary{
					ClientId:       11,
					OrderCount:     4,
					TotalSpent:     decimal.RequireFromString("420.5"),
					FirstOrderDate: last.AddDate(0, 0, -20),
					LastOrderDate:  last,
				},
				Behavior: entity.BehaviorActive,
				Spending: entity.SpendingStandard,
				Identity: &entity.ClientIdentity{Id: 11, TenantId: tenantId, Name: "Ana"},
			}}, nil)

		rec := ts.get(t, "/clients/categories/behavior/active/members", "7")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp []dto.ClientMember
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 11, resp[0].ClientId)
		assert.Equal(t, "420.50", resp[0].TotalSpent)
		require.NotNil(t, resp[0].Identity)
		assert.Equal(t, "Ana", resp[0].Identity.Name)
	})

	t.Run("unknown category", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.get(t, "/clients/categories/spending/gold/members", "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.get(t, "/clients/categories/loyalty/active/members", "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetClientIdentity(t *testing.T) {
	ts := newTestServer(t)
	ts.clients.EXPECT().
		ClientIdentity(mock.Anything, tenantId, 3).
		Return(&entity.ClientIdentity{Id: 3, TenantId: tenantId, Name: "Bo"}, nil)
	ts.clients.EXPECT().
		ClientIdentity(mock.Anything, tenantId, 4).
		Return(nil, gerr.ErrClientNotFound)

	rec := ts.get(t, "/clients/3", "7")
	require.Equal(t, http.StatusOK, rec.Code)
	var c dto.ClientIdentity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Bo", c.Name)
	assert.Nil(t, c.Phone)

	rec = ts.get(t, "/clients/4", "7")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.get(t, "/clients/abc", "7")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec).Code)
}

func TestGetPresetWindows(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.get(t, "/windows/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.PresetWindow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, len(daterange.Presets))
	assert.Equal(t, "today", resp[0].Preset)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), resp[0].From.UTC())
}
