// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/connmgr"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/identity"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/store"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/ussd"
	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
	"github.com/oyaguma3/msc-ss-poc/pkg/httputil"
	"github.com/oyaguma3/msc-ss-poc/pkg/logging"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = httputil.TraceIDKey

// Dispatcher はSS/USSDメッセージ1件の処理を定義する。
type Dispatcher interface {
	Handle(ctx context.Context, cm connmgr.ConnectionManager, conn *connmgr.Conn, payload []byte) *ussd.Result
}

// IdentityManager は加入者識別子とSMSの操作を定義する。
type IdentityManager interface {
	LocationUpdate(ctx context.Context, imsi string, lac int, imei string) (*model.Subscriber, error)
	AssociateEquipment(ctx context.Context, sub *model.Subscriber, imei string) (*store.Association, error)
	StoreSMS(ctx context.Context, sms *model.SMS) (int64, error)
	MarkSMSSent(ctx context.Context, id int64) error
	FetchUnsentSMS(ctx context.Context, minID int64, limit int) ([]*model.SMS, error)
}

// HealthChecker は依存サービスの疎通確認を定義する。
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler はMSC SS/USSDサービスのHTTPハンドラー。
type Handler struct {
	dispatcher  Dispatcher
	identity    IdentityManager
	subscribers store.SubscriberStore
	health      HealthChecker
	fields      *logging.CommonFields
}

// NewHandler は新しいHandlerを生成する。
func NewHandler(
	dispatcher Dispatcher,
	idm IdentityManager,
	subscribers store.SubscriberStore,
	health HealthChecker,
	fields *logging.CommonFields,
) *Handler {
	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}
	return &Handler{
		dispatcher:  dispatcher,
		identity:    idm,
		subscribers: subscribers,
		health:      health,
		fields:      fields,
	}
}

// traceID はミドルウェアが設定したトレースIDを返す。
func traceID(c *gin.Context) string {
	return httputil.TraceID(c)
}

// handleError はエラーをRFC 7807レスポンスに変換する。
func (h *Handler) handleError(c *gin.Context, eventID, imsi string, err error) {
	problem, level := problemFor(err)

	slog.Log(c.Request.Context(), level, "request failed",
		"trace_id", traceID(c),
		"event_id", eventID,
		h.fields.WithIMSI(imsi),
		"http_status", problem.Status,
		"error", err.Error(),
	)
	httputil.WriteError(c, problem)
}

// problemFor はエラー種別に対応するProblemDetailとログレベルを返す。
func problemFor(err error) (*httputil.ProblemDetail, slog.Level) {
	var validationErr *apperr.ValidationError
	var conflictErr *apperr.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return httputil.BadRequest(validationErr.Message), slog.LevelWarn
	case errors.As(err, &conflictErr):
		return httputil.Conflict(fmt.Sprintf("%s %q is already assigned", conflictErr.Field, conflictErr.Value)), slog.LevelWarn
	case errors.Is(err, store.ErrNotFound):
		return httputil.NotFound("Resource not found"), slog.LevelInfo
	case errors.Is(err, identity.ErrIdentityAllocationExhausted):
		return httputil.ServiceUnavailable("TMSI allocation exhausted, retry later"), slog.LevelError
	case errors.Is(err, store.ErrValkeyUnavailable):
		return httputil.ServiceUnavailable("Subscriber store unavailable"), slog.LevelError
	default:
		return httputil.InternalServerError("An unexpected error occurred"), slog.LevelError
	}
}

// bindError はリクエストボディの解釈失敗を表すエラーを返す。
func bindError(err error) error {
	return fmt.Errorf("%w: %v", apperr.NewValidationError("body", "Invalid request body"), err)
}
