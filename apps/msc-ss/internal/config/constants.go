package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMinIdleConns   = 2
	ValkeyMaxRetries     = 3
	ValkeyMinRetryDelay  = 100 * time.Millisecond
	ValkeyMaxRetryDelay  = 1 * time.Second
)

// USSDゲートウェイ接続設定
const (
	GatewayDialTimeout = 1 * time.Second
	// GatewayMaxReplyLen はゲートウェイ応答の最大読み取り長（オクテット）
	GatewayMaxReplyLen = 130
)

// Circuit Breaker設定
const (
	CBName             = "ussd-gateway"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// SMS取得設定
const (
	SMSFetchDefaultLimit = 100
	SMSFetchMaxLimit     = 1000
)

// HTTPサーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)
