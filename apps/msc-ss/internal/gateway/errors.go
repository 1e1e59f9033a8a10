package gateway

import (
	"errors"
	"fmt"
)

// センチネルエラー
var (
	// ErrGatewayUnreachable はゲートウェイへの接続を確立できない場合のエラー
	ErrGatewayUnreachable = errors.New("gateway unreachable")

	// ErrGatewaySendFailed はリクエストを送信しきれなかった場合のエラー
	ErrGatewaySendFailed = errors.New("gateway send failed")

	// ErrGatewayNoReply は応答を受信できなかった場合のエラー
	ErrGatewayNoReply = errors.New("gateway no reply")

	// ErrGatewayTimeout は交換がタイムアウトした場合のエラー
	ErrGatewayTimeout = errors.New("gateway timeout")

	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー。接続不可として扱う
	ErrCircuitOpen = fmt.Errorf("circuit breaker is open: %w", ErrGatewayUnreachable)
)
