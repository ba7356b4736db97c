package handler

import (
	"context"
	"log/slog"
	"time"

	"foodbank/config"
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/delivery/api/response"
	deliverycontext "foodbank/internal/delivery/context"
	"foodbank/internal/delivery/middleware"
	"foodbank/internal/domain/entity"
	domainerrors "foodbank/internal/domain/errors"
	"foodbank/internal/domain/service"
	"foodbank/internal/domain/session"
	"foodbank/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Session and admin token headers.
const (
	HeaderUserID      = "X-User-Id"
	HeaderDisplayName = "X-Display-Name"
	HeaderAdminToken  = "X-Admin-Token"
)

const (
	outcomeOK         = "ok"
	outcomeError      = "error"
	unknownActionName = "unknown"
)

// ExecHandlerParams holds dependencies for ExecHandler, injected by Fx.
type ExecHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Hasher    service.SecretHasher
	Metrics   service.MetricsRecorder
	Logs      usecase.LogUsecase
	Providers []action.Provider `group:"actions"`
}

// ExecHandler dispatches /exec calls to the registered actions and wraps
// every result in the response envelope.
type ExecHandler struct {
	registry  action.Registry
	tokenHash string
	hasher    service.SecretHasher
	metrics   service.MetricsRecorder
	logs      usecase.LogUsecase
	logger    *slog.Logger
}

// NewExecHandler is the constructor for ExecHandler
func NewExecHandler(params ExecHandlerParams) *ExecHandler {
	tokenHash := ""
	if params.Config.Admin != nil {
		tokenHash = params.Config.Admin.TokenHash
	}
	if tokenHash == "" {
		params.Logger.Warn("Admin token hash not configured, admin actions are not protected")
	}

	return &ExecHandler{
		registry:  action.NewRegistry(params.Providers...),
		tokenHash: tokenHash,
		hasher:    params.Hasher,
		metrics:   params.Metrics,
		logs:      params.Logs,
		logger:    params.Logger,
	}
}

// Registered reports whether name has a handler.
func (h *ExecHandler) Registered(name action.Name) bool {
	_, ok := h.registry[name]

	return ok
}

// Handle serves GET and POST /exec. The HTTP status is always 200.
func (h *ExecHandler) Handle(c echo.Context) error {
	start := time.Now()

	params, err := action.ParseParams(c)
	if err != nil {
		return h.fail(c, unknownActionName, start, err)
	}

	name := params.Action()
	c.Set(middleware.ActionKey, string(name))

	handle, ok := h.registry[name]
	if !ok {
		if name == "" {
			return h.fail(c, unknownActionName, start, domainerrors.NewValidationError("action"))
		}

		return h.fail(c, unknownActionName, start, domainerrors.ErrUnknownAction.WithDetails(string(name)))
	}

	token := params.Get("adminToken", "admin_token")
	if headerToken := c.Request().Header.Get(HeaderAdminToken); headerToken != "" {
		token = headerToken
	}

	authorized := h.verifyToken(token)
	if name.RequiresAdmin() && !authorized {
		return h.fail(c, string(name), start, domainerrors.ErrUnauthorized.WithDetails(string(name)))
	}

	req := c.Request()
	sess := &session.Session{
		UserID:      firstNonEmpty(req.Header.Get(HeaderUserID), params.Get("user_id", "userId", "inputUserId")),
		DisplayName: firstNonEmpty(req.Header.Get(HeaderDisplayName), params.Get("display_name", "displayName", "inputUser")),
		UserAgent:   firstNonEmpty(params.Get("user_agent", "userAgent"), req.UserAgent()),
		IsAdmin:     authorized && (token != "" || name.RequiresAdmin()),
	}
	c.SetRequest(req.WithContext(session.WithSession(req.Context(), sess)))

	data, err := handle(c, params)
	if err != nil {
		return h.fail(c, string(name), start, err)
	}

	h.metrics.ObserveAction(string(name), outcomeOK, time.Since(start))

	return response.Success(c, data)
}

// verifyToken checks token against the configured bcrypt hash. Without a
// hash every caller passes.
func (h *ExecHandler) verifyToken(token string) bool {
	if h.tokenHash == "" {
		return true
	}

	return token != "" && h.hasher.Check(token, h.tokenHash)
}

// fail records the failure in metrics and the persisted log, then writes
// the failed envelope.
func (h *ExecHandler) fail(c echo.Context, actionName string, start time.Time, err error) error {
	h.metrics.ObserveAction(actionName, outcomeError, time.Since(start))

	ctx := c.Request().Context()
	kind := domainerrors.KindOf(err)
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	level := slog.LevelWarn
	if kind == domainerrors.KindStorage || kind == domainerrors.KindInternal {
		level = slog.LevelError
	}
	logger.Log(ctx, level, "Action failed",
		slog.String("action", actionName),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)

	h.recordFailure(ctx, c, actionName, kind, err)

	return response.Failure(c, err)
}

func (h *ExecHandler) recordFailure(ctx context.Context, c echo.Context, actionName string, kind domainerrors.Kind, err error) {
	userAgent := session.FromContext(ctx).UserAgent
	if userAgent == "" {
		userAgent = c.Request().UserAgent()
	}

	details := map[string]string{
		"action":     actionName,
		"kind":       string(kind),
		"error":      err.Error(),
		"user_agent": userAgent,
	}
	if recordErr := h.logs.Record(ctx, entity.LogLevelError, "API Request Error", details); recordErr != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to persist action failure",
			slog.Any("error", recordErr),
		)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
