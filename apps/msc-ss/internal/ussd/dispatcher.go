package ussd

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/connmgr"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/gateway"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/gsm0480"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/store"
	"github.com/oyaguma3/msc-ss-poc/pkg/logging"
)

// Outcome は1要求の処理結果を表す
type Outcome string

// 処理結果
const (
	OutcomeRespond         Outcome = "respond"
	OutcomeReject          Outcome = "reject"
	OutcomeReleaseComplete Outcome = "release_complete"
)

// 応答を生成したハンドラ種別
const (
	HandlerBuiltin = "builtin"
	HandlerGateway = "gateway"
)

// Result は1要求の処理結果
type Result struct {
	Outcome Outcome
	Handler string // 振り分け先（Dispatch時のみ）
	Err     error  // Reject・解放に至った原因
}

// releases は処理後にコネクションを解放すべきかどうかを返す
func (r *Result) releases() bool {
	return r.Outcome != OutcomeRespond || r.Err != nil
}

// Dispatcher は復号・分類・ハンドラ実行・応答送信・解放を1要求単位で行う
type Dispatcher struct {
	subscribers store.SubscriberStore
	relay       gateway.Relay
	builtins    BuiltinTable
	fields      *logging.CommonFields
}

// NewDispatcher は新しいDispatcherを生成する
func NewDispatcher(
	subs store.SubscriberStore,
	relay gateway.Relay,
	builtins BuiltinTable,
	fields *logging.CommonFields,
) *Dispatcher {
	if fields == nil {
		fields = logging.NewCommonFields(nil)
	}
	return &Dispatcher{
		subscribers: subs,
		relay:       relay,
		builtins:    builtins,
		fields:      fields,
	}
}

// Handle はL3ペイロード1件を処理する。
// Dispatch以外の結果やハンドラのpanic時はコネクションを必ず1回だけ解放する。
// Rejectを送る場合は解放より先に送信する。
func (d *Dispatcher) Handle(ctx context.Context, cm connmgr.ConnectionManager, conn *connmgr.Conn, payload []byte) *Result {
	start := time.Now()
	ctx = logging.ContextWithTraceID(ctx, conn.TraceID)

	release := sync.OnceFunc(func() {
		// 呼び出し元の取消やタイムアウト後でも解放は行う
		if err := cm.Release(context.WithoutCancel(ctx), conn); err != nil {
			slog.Error("connection release failed",
				append(d.logFields(conn, "SS_RELEASE_ERR"), "error", err)...,
			)
		}
	})

	slog.Debug("SS request received",
		append(d.logFields(conn, "SS_RECV"), "payload_len", len(payload))...,
	)

	// ハンドラがpanicしても解放だけは行う
	handled := false
	defer func() {
		if !handled {
			release()
		}
	}()

	res := d.process(ctx, cm, conn, payload)
	handled = true
	if res.releases() {
		release()
	}

	slog.Info("SS request completed",
		append(d.logFields(conn, "SS_RESPONSE"),
			logging.FieldOutcome, string(res.Outcome),
			"handler", res.Handler,
			"error", errString(res.Err),
			"latency_ms", time.Since(start).Milliseconds(),
		)...,
	)
	return res
}

func (d *Dispatcher) process(ctx context.Context, cm connmgr.ConnectionManager, conn *connmgr.Conn, payload []byte) *Result {
	req, err := gsm0480.DecodeSSRequest(payload)
	if err != nil {
		slog.Warn("SS request decode failed",
			append(d.logFields(conn, "SS_DECODE_ERR"), "error", err)...,
		)
		ti, _ := gsm0480.PeekTransactionID(payload)
		d.sendReject(ctx, cm, conn, gsm0480.EncodeReject(ti, nil, gsm0480.ProblemMistypedComponent))
		return &Result{Outcome: OutcomeReject, Err: err}
	}

	switch Classify(req) {
	case DecisionReleaseComplete:
		slog.Info("SS release complete",
			d.logFields(conn, "SS_RELEASE_COMPLETE")...,
		)
		return &Result{Outcome: OutcomeReleaseComplete}

	case DecisionReject:
		slog.Info("SS operation rejected",
			append(d.logFields(conn, "SS_REJECT"), "ss_code", req.SSCode, "opcode", req.Opcode)...,
		)
		d.reject(ctx, cm, conn, req, gsm0480.ProblemUnrecognizedOperation)
		return &Result{Outcome: OutcomeReject}
	}

	text, handler, err := d.dispatch(ctx, conn, req)
	if err != nil {
		slog.Warn("USSD handler failed",
			append(d.logFields(conn, "SS_REJECT"), "handler", handler, "error", err)...,
		)
		d.reject(ctx, cm, conn, req, gsm0480.ProblemUnrecognizedComponent)
		return &Result{Outcome: OutcomeReject, Handler: handler, Err: err}
	}

	msg, err := gsm0480.EncodeUSSDResponse(req, text)
	if err != nil {
		slog.Error("USSD response encode failed",
			append(d.logFields(conn, "SS_REJECT"), "error", err)...,
		)
		d.reject(ctx, cm, conn, req, gsm0480.ProblemUnrecognizedComponent)
		return &Result{Outcome: OutcomeReject, Handler: handler, Err: err}
	}

	if err := cm.SendFacility(ctx, conn, msg); err != nil {
		return &Result{Outcome: OutcomeRespond, Handler: handler, Err: fmt.Errorf("send facility: %w", err)}
	}
	return &Result{Outcome: OutcomeRespond, Handler: handler}
}

// dispatch は組込みハンドラ、該当しなければゲートウェイで応答テキストを得る
func (d *Dispatcher) dispatch(ctx context.Context, conn *connmgr.Conn, req *gsm0480.SSRequest) (string, string, error) {
	if fn, ok := d.builtins.Lookup(req.USSDText); ok {
		slog.Info("USSD built-in handler",
			append(d.logFields(conn, "SS_BUILTIN"), "ussd_text", req.USSDText)...,
		)
		sub, err := d.subscribers.Get(ctx, store.FieldIMSI, conn.IMSI)
		if err != nil {
			return "", HandlerBuiltin, fmt.Errorf("%w: %v", ErrSubscriberUnavailable, err)
		}
		text, err := fn(ctx, sub, req)
		return text, HandlerBuiltin, err
	}

	slog.Info("USSD gateway relay",
		append(d.logFields(conn, "SS_GATEWAY"), "ussd_text", req.USSDText)...,
	)
	text, err := d.relay.Relay(ctx, gateway.NewEnvelope(req.USSDText, conn.IMSI))
	return text, HandlerGateway, err
}

func (d *Dispatcher) reject(ctx context.Context, cm connmgr.ConnectionManager, conn *connmgr.Conn, req *gsm0480.SSRequest, problem gsm0480.Problem) {
	invokeID := req.InvokeID
	d.sendReject(ctx, cm, conn, gsm0480.EncodeReject(req.TransactionID, &invokeID, problem))
}

func (d *Dispatcher) sendReject(ctx context.Context, cm connmgr.ConnectionManager, conn *connmgr.Conn, msg []byte) {
	if err := cm.SendFacility(context.WithoutCancel(ctx), conn, msg); err != nil {
		slog.Error("reject send failed",
			append(d.logFields(conn, "SS_REJECT"), "error", err)...,
		)
	}
}

func (d *Dispatcher) logFields(conn *connmgr.Conn, eventID string) []any {
	return d.fields.SignalingLogFields(conn.TraceID, eventID, conn.ID, conn.IMSI)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
