package action

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName_RequiresAdmin(t *testing.T) {
	tests := []struct {
		name Name
		want bool
	}{
		{AdminGetPantries, true},
		{AdminToggleAdminStatus, true},
		{UpdateAllViews, true},
		{UpdateRequestStatus, true},
		{GetDashboardStats, true},
		{CreateReservation, false},
		{GetRequests, false},
		{Test, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.name.RequiresAdmin())
		})
	}
}

func TestAll_Unique(t *testing.T) {
	seen := make(map[Name]bool)
	for _, name := range All() {
		assert.False(t, seen[name], "duplicate action %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 38)
}

type staticProvider Registry

func (p staticProvider) Actions() Registry { return Registry(p) }

func TestNewRegistry_PanicsOnDuplicate(t *testing.T) {
	handler := func(echo.Context, Params) (any, error) { return nil, nil }

	registry := NewRegistry(staticProvider{Test: handler}, staticProvider{GetPantries: handler})
	assert.Len(t, registry, 2)

	assert.Panics(t, func() {
		NewRegistry(staticProvider{Test: handler}, staticProvider{Test: handler})
	})
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		want        Params
	}{
		{
			name:   "query only",
			method: http.MethodGet,
			target: "/exec?action=getReservation&reservationId=250412001",
			want:   Params{"action": "getReservation", "reservationId": "250412001"},
		},
		{
			name:        "json scalars become text",
			method:      http.MethodPost,
			target:      "/exec?action=createReservation",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"household_adults": 2, "tweet": true, "notes": null, "name_kana": "ヤマダ"}`,
			want: Params{
				"action":           "createReservation",
				"household_adults": "2",
				"tweet":            "true",
				"name_kana":        "ヤマダ",
			},
		},
		{
			name:        "nested data wins",
			method:      http.MethodPost,
			target:      "/exec",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"action": "adminCreatePantry", "adminToken": "secret", "data": {"location": "ニコット", "capacity_total": 40}}`,
			want: Params{
				"action":         "adminCreatePantry",
				"adminToken":     "secret",
				"location":       "ニコット",
				"capacity_total": "40",
			},
		},
		{
			name:        "url encoded body",
			method:      http.MethodPost,
			target:      "/exec?action=createDonation",
			contentType: echo.MIMEApplicationForm,
			body:        url.Values{"donator": {"市川商店"}, "weight": {"3"}}.Encode(),
			want:        Params{"action": "createDonation", "donator": "市川商店", "weight": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			params, err := ParseParams(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestParseParams_RejectsNonObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(`[1,2]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	_, err := ParseParams(c)
	assert.Error(t, err)
}

func TestParams_Accessors(t *testing.T) {
	p := Params{"pantryId": "25.04.12.市役所本庁舎", "limit": "20", "bad": "x"}

	assert.Equal(t, "25.04.12.市役所本庁舎", p.Get("pantry_id", "pantryId"))
	assert.Equal(t, 20, p.Int(100, "limit"))
	assert.Equal(t, 100, p.Int(100, "bad"))
	assert.Equal(t, 100, p.Int(100, "missing"))
}
