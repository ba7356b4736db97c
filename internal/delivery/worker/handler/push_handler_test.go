package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodbank/config"
	"foodbank/internal/domain/constants"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/service"
	mockUsecase "foodbank/internal/mocks/usecase"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, env string) (*PushHandler, *mockUsecase.MockViewUsecase) {
	t.Helper()

	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle},
	}
	cfg.Env.Env = env

	viewUC := mockUsecase.NewMockViewUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ViewUC: viewUC,
	})

	return h, viewUC
}

func pushBody(t *testing.T, event service.RecordEvent, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/foodbank/subscriptions/record-events"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	_ = h.HandlePush(c)

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.RecordEvent{
		RequestID:  "req-from-event",
		EventID:    "evt-1",
		RecordKind: "reservation",
		RecordID:   "250412001",
		Operation:  "created",
		OccurredAt: "2025-04-12T10:00:00+09:00",
	}

	tests := []struct {
		name       string
		body       string
		rebuildErr error
		rebuild    bool
		wantStatus int
	}{
		{
			name:       "rebuilds views",
			body:       pushBody(t, event, nil),
			rebuild:    true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "storage failure is redelivered",
			body:       pushBody(t, event, nil),
			rebuild:    true,
			rebuildErr: domainerrors.NewStorageError(errors.New("connection reset"), "view rebuild"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "lock contention is redelivered",
			body:       pushBody(t, event, nil),
			rebuild:    true,
			rebuildErr: errors.Wrap(errors.New("lock held"), "failed to acquire view rebuild lock"),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "validation failure is acknowledged",
			body:       pushBody(t, event, nil),
			rebuild:    true,
			rebuildErr: domainerrors.NewValidationError("pantry_id"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed envelope",
			body:       `{"message":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       `{"message":{"data":"%%%"}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not an event",
			body:       `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, viewUC := newTestPushHandler(t, constants.EnvDevelop)
			if tt.rebuild {
				var result *usecase.RebuildResult
				if tt.rebuildErr == nil {
					result = &usecase.RebuildResult{PantryRows: 2, UserRows: 5, DashboardRows: 2}
				}
				viewUC.EXPECT().RebuildAll(mock.Anything).Return(result, tt.rebuildErr).Once()
			}

			rec := servePush(h, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequiresTokenOutsideDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")
	require.NotNil(t, h.verify)

	rec := servePush(h, pushBody(t, service.RecordEvent{EventID: "evt-2"}, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop)
	ctx := httptest.NewRequest(http.MethodPost, "/push", nil).Context()

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "req-from-attrs"}
	assert.Equal(t, "req-from-attrs", h.extractRequestID(ctx, &msg, &service.RecordEvent{RequestID: "req-from-event"}))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-from-event", h.extractRequestID(ctx, &msg, &service.RecordEvent{RequestID: "req-from-event"}))

	assert.NotEmpty(t, h.extractRequestID(ctx, &msg, &service.RecordEvent{}))
}
