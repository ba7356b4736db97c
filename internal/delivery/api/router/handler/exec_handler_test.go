package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodbank/config"
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/delivery/api/validator"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/session"
	"foodbank/internal/infra/auth"
	mockSvc "foodbank/internal/mocks/service"
	mockUsecase "foodbank/internal/mocks/usecase"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminToken = "pantry-admin-secret"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Kind    string          `json:"kind"`
	Code    string          `json:"code"`
	Meta    struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type execFixture struct {
	echo          *echo.Echo
	handler       *ExecHandler
	logs          *mockUsecase.MockLogUsecase
	metrics       *mockSvc.MockMetricsRecorder
	pantryUC      *mockUsecase.MockPantryUsecase
	reservationUC *mockUsecase.MockReservationUsecase
	requestUC     *mockUsecase.MockRequestUsecase
	viewUC        *mockUsecase.MockViewUsecase
}

func newExecFixture(t *testing.T, protected bool) *execFixture {
	t.Helper()

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	cfg := &config.Config{Admin: &config.AdminConfig{}}
	cfg.Env.ServiceName = "foodbank"
	cfg.Env.Timezone = "Asia/Tokyo"
	if protected {
		hash, err := hasher.Hash(testAdminToken)
		require.NoError(t, err)
		cfg.Admin.TokenHash = hash
	}

	f := &execFixture{
		logs:          mockUsecase.NewMockLogUsecase(t),
		metrics:       mockSvc.NewMockMetricsRecorder(t),
		pantryUC:      mockUsecase.NewMockPantryUsecase(t),
		reservationUC: mockUsecase.NewMockReservationUsecase(t),
		requestUC:     mockUsecase.NewMockRequestUsecase(t),
		viewUC:        mockUsecase.NewMockViewUsecase(t),
	}

	f.handler = NewExecHandler(ExecHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hasher:  hasher,
		Metrics: f.metrics,
		Logs:    f.logs,
		Providers: []action.Provider{
			NewSystemHandler(SystemHandlerParams{Config: cfg}),
			NewPantryHandler(PantryHandlerParams{PantryUC: f.pantryUC}),
			NewReservationHandler(ReservationHandlerParams{ReservationUC: f.reservationUC}),
			NewRequestHandler(RequestHandlerParams{RequestUC: f.requestUC}),
			NewReportHandler(ReportHandlerParams{ViewUC: f.viewUC}),
			NewDonationHandler(DonationHandlerParams{}),
			NewAdminHandler(AdminHandlerParams{LogUC: f.logs}),
		},
	})

	f.echo = echo.New()
	f.echo.Validator = validator.New()
	f.echo.GET("/exec", f.handler.Handle)
	f.echo.POST("/exec", f.handler.Handle)

	return f
}

func (f *execFixture) do(t *testing.T, req *http.Request) *envelope {
	t.Helper()

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return &body
}

func (f *execFixture) expectOutcome(name action.Name, outcome string) {
	f.metrics.EXPECT().ObserveAction(string(name), outcome, mock.AnythingOfType("time.Duration")).Return().Once()
}

func (f *execFixture) expectFailureLog() {
	f.logs.EXPECT().
		Record(mock.Anything, entity.LogLevelError, "API Request Error", mock.Anything).
		Return(nil).
		Once()
}

func postJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/exec", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestExecHandler_EveryActionRegistered(t *testing.T) {
	f := newExecFixture(t, false)

	for _, name := range action.All() {
		assert.True(t, f.handler.Registered(name), "action %s is not registered", name)
	}
	assert.Len(t, f.handler.registry, len(action.All()))
}

func TestExecHandler_Success(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.GetCurrentPantry, "ok")
	f.pantryUC.EXPECT().
		GetCurrentPantry(mock.Anything).
		Return(&entity.Pantry{PantryID: "25.04.12.市役所本庁舎", Status: entity.PantryStatusActive}, nil)

	body := f.do(t, httptest.NewRequest(http.MethodGet, "/exec?action=getCurrentPantry", nil))

	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Meta.RequestID)

	var pantry entity.Pantry
	require.NoError(t, json.Unmarshal(body.Data, &pantry))
	assert.Equal(t, "25.04.12.市役所本庁舎", pantry.PantryID)
}

func TestExecHandler_Failures(t *testing.T) {
	tests := []struct {
		name      string
		req       func() *http.Request
		setup     func(f *execFixture)
		metricKey action.Name
		wantKind  domainerrors.Kind
		wantCode  string
	}{
		{
			name:      "unknown action",
			req:       func() *http.Request { return httptest.NewRequest(http.MethodGet, "/exec?action=dropTables", nil) },
			metricKey: "unknown",
			wantKind:  domainerrors.KindValidation,
			wantCode:  "UNKNOWN_ACTION",
		},
		{
			name:      "missing action",
			req:       func() *http.Request { return httptest.NewRequest(http.MethodGet, "/exec", nil) },
			metricKey: "unknown",
			wantKind:  domainerrors.KindValidation,
			wantCode:  "VALIDATION_FAILED",
		},
		{
			name:      "missing reservation id",
			req:       func() *http.Request { return postJSON(`{"action":"getReservation"}`) },
			metricKey: action.GetReservation,
			wantKind:  domainerrors.KindValidation,
			wantCode:  "VALIDATION_FAILED",
		},
		{
			name: "not found from usecase",
			req:  func() *http.Request { return postJSON(`{"action":"getReservation","reservationId":"250412999"}`) },
			setup: func(f *execFixture) {
				f.reservationUC.EXPECT().
					GetReservation(mock.Anything, "250412999").
					Return(nil, domainerrors.ErrReservationNotFound)
			},
			metricKey: action.GetReservation,
			wantKind:  domainerrors.KindNotFound,
			wantCode:  "RESERVATION_NOT_FOUND",
		},
		{
			name: "transition rejected",
			req: func() *http.Request {
				return postJSON(`{"action":"updateRequestStatus","requestId":"R1","status":"pending"}`)
			},
			setup: func(f *execFixture) {
				f.requestUC.EXPECT().
					UpdateRequestStatus(mock.Anything, "R1", "pending").
					Return(nil, domainerrors.NewTransitionError("completed", "pending"))
			},
			metricKey: action.UpdateRequestStatus,
			wantKind:  domainerrors.KindTransition,
			wantCode:  "INVALID_TRANSITION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExecFixture(t, false)
			f.expectOutcome(tt.metricKey, "error")
			f.expectFailureLog()
			if tt.setup != nil {
				tt.setup(f)
			}

			body := f.do(t, tt.req())

			assert.False(t, body.Success)
			assert.Equal(t, string(tt.wantKind), body.Kind)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
			assert.Empty(t, body.Data)
		})
	}
}

func TestExecHandler_InternalErrorsAreNotLeaked(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.GetPantries, "error")
	f.pantryUC.EXPECT().
		ListPantries(mock.Anything).
		Return(nil, domainerrors.NewStorageError(errors.New("pq: password authentication failed"), "list pantries"))

	var recorded map[string]string
	f.logs.EXPECT().
		Record(mock.Anything, entity.LogLevelError, "API Request Error", mock.Anything).
		Run(func(_ context.Context, _ entity.LogLevel, _ string, details any) {
			recorded, _ = details.(map[string]string)
		}).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/exec?action=getPantries", nil)
	req.Header.Set("User-Agent", "pantry-front/1.0")
	body := f.do(t, req)

	assert.False(t, body.Success)
	assert.Equal(t, string(domainerrors.KindStorage), body.Kind)
	assert.NotContains(t, body.Error, "password")

	assert.Equal(t, "getPantries", recorded["action"])
	assert.Equal(t, "StorageError", recorded["kind"])
	assert.Equal(t, "pantry-front/1.0", recorded["user_agent"])
	assert.Contains(t, recorded["error"], "password authentication failed")
}

func TestExecHandler_AdminToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		inHeader bool
		wantOK   bool
		wantKind domainerrors.Kind
	}{
		{name: "missing token", wantKind: domainerrors.KindAuth},
		{name: "wrong token", token: "guess", inHeader: true, wantKind: domainerrors.KindAuth},
		{name: "token in header", token: testAdminToken, inHeader: true, wantOK: true},
		{name: "token in body", token: testAdminToken, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExecFixture(t, true)

			payload := map[string]string{"action": "adminGetPantries"}
			if tt.token != "" && !tt.inHeader {
				payload["adminToken"] = tt.token
			}
			raw, err := json.Marshal(payload)
			require.NoError(t, err)

			req := postJSON(string(raw))
			if tt.inHeader {
				req.Header.Set(HeaderAdminToken, tt.token)
			}

			if tt.wantOK {
				f.expectOutcome(action.AdminGetPantries, "ok")
				f.pantryUC.EXPECT().
					ListPantries(mock.MatchedBy(func(ctx context.Context) bool {
						return session.FromContext(ctx).IsAdmin
					})).
					Return([]*entity.Pantry{}, nil)
			} else {
				f.expectOutcome(action.AdminGetPantries, "error")
				f.expectFailureLog()
			}

			body := f.do(t, req)

			assert.Equal(t, tt.wantOK, body.Success)
			if !tt.wantOK {
				assert.Equal(t, string(tt.wantKind), body.Kind)
				assert.Equal(t, "UNAUTHORIZED", body.Code)
			}
		})
	}
}

func TestExecHandler_UnprotectedAdminActions(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.UpdateAllViews, "ok")
	f.viewUC.EXPECT().
		RebuildAll(mock.Anything).
		Return(&usecase.RebuildResult{PantryRows: 2, Duration: time.Millisecond}, nil)

	body := f.do(t, postJSON(`{"action":"updateAllViews"}`))

	assert.True(t, body.Success)
	assert.JSONEq(t, `2`, string(mustField(t, body.Data, "pantryRows")))
}

func TestExecHandler_SessionFromHeaders(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.CreateRequest, "ok")
	f.requestUC.EXPECT().
		CreateRequest(
			mock.MatchedBy(func(ctx context.Context) bool {
				sess := session.FromContext(ctx)

				return sess.UserID == "U100" && sess.DisplayName == "kodomo-shokudo" && !sess.IsAdmin
			}),
			mock.MatchedBy(func(in *usecase.CreateRequestInput) bool {
				return in.OrganizationName == "市川こども食堂" && in.BeneficiaryCount == "30" && in.PickupDate == "2025-04-20"
			}),
		).
		Return(&entity.Request{ID: "R250401001", Status: entity.RequestStatusPending}, nil)

	req := postJSON(`{"action":"createRequest","data":{"organizationName":"市川こども食堂","beneficiary_count":30,"pickupDate":"2025-04-20"}}`)
	req.Header.Set(HeaderUserID, "U100")
	req.Header.Set(HeaderDisplayName, "kodomo-shokudo")

	body := f.do(t, req)

	require.True(t, body.Success)
	assert.JSONEq(t, `"R250401001"`, string(mustField(t, body.Data, "request_id")))
}

func TestExecHandler_GetRequestsScope(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantAdmin bool
	}{
		{name: "plain user sees own requests"},
		{name: "admin token widens scope", token: testAdminToken, wantAdmin: true},
		{name: "isAdmin parameter is ignored", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newExecFixture(t, true)
			f.expectOutcome(action.GetRequests, "ok")
			f.requestUC.EXPECT().
				GetRequests(mock.Anything, "U2", tt.wantAdmin).
				Return([]*entity.Request{}, nil)

			req := httptest.NewRequest(http.MethodGet, "/exec?action=getRequests&userId=U2&isAdmin=true", nil)
			if tt.token != "" {
				req.Header.Set(HeaderAdminToken, tt.token)
			}

			body := f.do(t, req)
			assert.True(t, body.Success)
		})
	}
}

func TestExecHandler_GetReservationQR(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.GetReservationQR, "ok")

	png := []byte{0x89, 'P', 'N', 'G'}
	f.reservationUC.EXPECT().
		GetReservationQR(mock.Anything, "250412001").
		Return(&usecase.ReservationQR{ReservationID: "250412001", PNG: png}, nil)

	body := f.do(t, httptest.NewRequest(http.MethodGet, "/exec?action=getReservationQR&reservationId=250412001", nil))
	require.True(t, body.Success)

	var qr QRCodeResponse
	require.NoError(t, json.Unmarshal(body.Data, &qr))
	assert.Equal(t, "image/png", qr.ContentType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(png), qr.Image)
}

func TestExecHandler_TestAction(t *testing.T) {
	f := newExecFixture(t, false)
	f.expectOutcome(action.Test, "ok")

	body := f.do(t, httptest.NewRequest(http.MethodGet, "/exec?action=test", nil))

	require.True(t, body.Success)
	assert.JSONEq(t, `"API is working"`, string(mustField(t, body.Data, "message")))
}

func TestDecodePhoto(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	tests := []struct {
		name     string
		raw      string
		wantData []byte
		wantType string
		wantErr  bool
	}{
		{name: "empty"},
		{name: "raw base64", raw: encoded, wantData: []byte("jpeg-bytes"), wantType: "image/jpeg"},
		{name: "data url", raw: "data:image/png;base64," + encoded, wantData: []byte("jpeg-bytes"), wantType: "image/png"},
		{name: "malformed data url", raw: "data:image/png;base64", wantErr: true},
		{name: "not base64", raw: "!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, contentType, err := decodePhoto(tt.raw)
			if tt.wantErr {
				assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantData, data)
			assert.Equal(t, tt.wantType, contentType)
		})
	}
}

func mustField(t *testing.T, raw json.RawMessage, key string) json.RawMessage {
	t.Helper()

	var object map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &object))

	value, ok := object[key]
	require.True(t, ok, "field %s missing", key)

	return value
}
