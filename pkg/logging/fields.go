package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID   = "trace_id"
	FieldEventID   = "event_id"
	FieldError     = "error"
	FieldConnID    = "conn_id"
	FieldLatencyMs = "latency_ms"
	FieldIMSI      = "imsi"
	FieldIMEI      = "imei"
	FieldTMSI      = "tmsi"
	FieldAttempt   = "attempt"
	FieldOutcome   = "outcome"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithConnID はシグナリングコネクションIDのslog.Attrを返す。
func WithConnID(connID string) slog.Attr {
	return slog.String(FieldConnID, connID)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithTMSI はTMSIのslog.Attrを返す。
func WithTMSI(tmsi string) slog.Attr {
	return slog.String(FieldTMSI, tmsi)
}

// WithAttempt は試行回数のslog.Attrを返す。
func WithAttempt(n int) slog.Attr {
	return slog.Int(FieldAttempt, n)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithIMSI はマスキングされたIMSIのslog.Attrを返す。
func (cf *CommonFields) WithIMSI(imsi string) slog.Attr {
	return slog.String(FieldIMSI, cf.masker.IMSI(imsi))
}

// WithIMEI はマスキングされたIMEIのslog.Attrを返す。
func (cf *CommonFields) WithIMEI(imei string) slog.Attr {
	return slog.String(FieldIMEI, cf.masker.IMEI(imei))
}

// SignalingLogFields はSS/USSD処理ログ用の共通フィールドを返す。
func (cf *CommonFields) SignalingLogFields(traceID, eventID, connID, imsi string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		WithConnID(connID),
		cf.WithIMSI(imsi),
	}
}
