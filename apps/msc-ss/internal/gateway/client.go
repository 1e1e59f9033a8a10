// Package gateway は外部USSDゲートウェイとのTCP交換を提供する。
package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
	"github.com/oyaguma3/msc-ss-poc/pkg/logging"
	"github.com/sony/gobreaker"
)

// Client はUSSDゲートウェイクライアントの実装
type Client struct {
	addr        string
	timeout     time.Duration
	maxReplyLen int
	dialer      *net.Dialer
	cb          *gobreaker.CircuitBreaker
}

// NewClient は新しいゲートウェイクライアントを生成する。
func NewClient(cfg *config.Config) *Client {
	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		// 呼び出し元の取消はゲートウェイ障害として数えない
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
					"from", from.String(),
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &Client{
		addr:        cfg.GatewayAddr,
		timeout:     cfg.GatewayTimeout,
		maxReplyLen: config.GatewayMaxReplyLen,
		dialer:      &net.Dialer{Timeout: config.GatewayDialTimeout},
		cb:          gobreaker.NewCircuitBreaker(cbSettings),
	}
}

// Relay はエンベロープを送信し、応答テキストを返す。
// 正常に読み取れた応答のみを返し、失敗時に部分的な応答を返すことはない。
func (c *Client) Relay(ctx context.Context, env *Envelope) (string, error) {
	payload, err := env.Marshal()
	if err != nil {
		return "", fmt.Errorf("%w: marshal: %v", ErrGatewaySendFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	// 空応答も失敗としてブレーカーに数える
	result, err := c.cb.Execute(func() (any, error) {
		raw, err := c.exchange(ctx, payload)
		if err != nil {
			return nil, err
		}
		text := replyText(raw)
		if text == "" {
			c.logFailure(ctx, "GW_RECV_ERR", ErrGatewayNoReply, start)
			return nil, fmt.Errorf("%w: empty reply", ErrGatewayNoReply)
		}
		return text, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", ErrCircuitOpen
		}
		return "", err
	}

	text, ok := result.(string)
	if !ok {
		return "", ErrGatewayNoReply
	}

	slog.Debug("gateway exchange completed",
		"trace_id", logging.TraceIDFromContext(ctx),
		"reply_len", len(text),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// exchange は接続・送信・受信を1回行う。接続はすべての経路で閉じる。
func (c *Client) exchange(ctx context.Context, payload []byte) ([]byte, error) {
	start := time.Now()

	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		if ctx.Err() != nil {
			c.logFailure(ctx, "GW_TIMEOUT", err, start)
			return nil, timeoutErr(ctx, "dial", err)
		}
		c.logFailure(ctx, "GW_CONN_ERR", err, start)
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}
	defer conn.Close()

	// ブロック中のI/Oはコンテキスト終了時に接続を閉じて解除する
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(payload); err != nil {
		if isTimeout(ctx, err) {
			c.logFailure(ctx, "GW_TIMEOUT", err, start)
			return nil, timeoutErr(ctx, "send", err)
		}
		c.logFailure(ctx, "GW_SEND_ERR", err, start)
		return nil, fmt.Errorf("%w: %v", ErrGatewaySendFailed, err)
	}

	reply, err := readReply(conn, c.maxReplyLen)
	if err != nil {
		if isTimeout(ctx, err) {
			c.logFailure(ctx, "GW_TIMEOUT", err, start)
			return nil, timeoutErr(ctx, "receive", err)
		}
		c.logFailure(ctx, "GW_RECV_ERR", err, start)
		return nil, fmt.Errorf("%w: %v", ErrGatewayNoReply, err)
	}
	if len(reply) == 0 {
		c.logFailure(ctx, "GW_RECV_ERR", io.EOF, start)
		return nil, fmt.Errorf("%w: connection closed without data", ErrGatewayNoReply)
	}
	return reply, nil
}

func (c *Client) logFailure(ctx context.Context, eventID string, err error, start time.Time) {
	slog.Warn("gateway exchange failed",
		logging.WithEventID(eventID),
		logging.WithTraceID(logging.TraceIDFromContext(ctx)),
		"gateway_addr", c.addr,
		logging.WithError(err),
		logging.WithLatency(time.Since(start).Milliseconds()),
	)
}

// readReply は相手の切断、改行、またはmaxLenオクテットのいずれかまで読み取る。
// 切断までに受信したデータは完全な応答として扱う。
func readReply(r io.Reader, maxLen int) ([]byte, error) {
	buf := make([]byte, maxLen)
	n := 0
	for n < maxLen {
		m, err := r.Read(buf[n:])
		if i := bytes.IndexByte(buf[n:n+m], '\n'); i >= 0 {
			return buf[:n+i], nil
		}
		n += m
		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf[:n], nil
			}
			return nil, err
		}
	}
	return buf[:n], nil
}

// replyText は応答からフレーミング（NUL以降、末尾のCR/LF）を除いたテキストを返す。
// 読み取り長がMaxResponseTextLen以下のため、文字数の上限も満たす。
func replyText(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(bytes.TrimRight(raw, "\r\n"))
}

// timeoutErr はタイムアウトのエラーを生成する。コンテキスト終了が原因ならその理由もラップする
func timeoutErr(ctx context.Context, stage string, err error) error {
	if cause := ctx.Err(); cause != nil {
		return fmt.Errorf("%w: %s: %w", ErrGatewayTimeout, stage, cause)
	}
	return fmt.Errorf("%w: %s: %v", ErrGatewayTimeout, stage, err)
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
