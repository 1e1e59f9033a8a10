// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/oyaguma3/msc-ss-poc/pkg/valkey"
)

// Config はMSC SS/USSDサービスの設定を保持する。
type Config struct {
	// Valkey設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// サーバー設定
	ListenAddr  string `envconfig:"LISTEN_ADDR" default:":8090"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskIMSI bool   `envconfig:"LOG_MASK_IMSI" default:"true"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`

	// USSDゲートウェイ設定
	GatewayAddr    string        `envconfig:"GATEWAY_ADDR" default:"127.0.0.1:8888"`
	GatewayTimeout time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"3s"`

	// USSD設定
	OwnNumberCode string `envconfig:"USSD_OWN_NUMBER_CODE" default:"*1000#"`

	// 加入者識別子設定
	TMSIMaxAttempts int `envconfig:"TMSI_MAX_ATTEMPTS" default:"64"`
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// RedisAddr はValkey接続文字列を返す。
func (c *Config) RedisAddr() string {
	return valkey.BuildAddr(c.RedisHost, c.RedisPort)
}

// ValkeyOptions はValkeyクライアントの接続オプションを返す。
func (c *Config) ValkeyOptions() *valkey.Options {
	return valkey.DefaultOptions().
		WithAddr(c.RedisAddr()).
		WithPassword(c.RedisPass).
		WithTimeouts(ValkeyConnectTimeout, ValkeyCommandTimeout, ValkeyCommandTimeout).
		WithPool(ValkeyPoolSize, ValkeyMinIdleConns).
		WithRetry(ValkeyMaxRetries, ValkeyMinRetryDelay, ValkeyMaxRetryDelay)
}

// validate は設定値のバリデーションを行う。
func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.GatewayAddr); err != nil {
		return fmt.Errorf("GATEWAY_ADDR must be host:port: %w", err)
	}
	if c.GatewayTimeout <= 0 {
		return fmt.Errorf("GATEWAY_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.OwnNumberCode) == "" {
		return fmt.Errorf("USSD_OWN_NUMBER_CODE must not be empty")
	}
	if c.TMSIMaxAttempts <= 0 {
		return fmt.Errorf("TMSI_MAX_ATTEMPTS must be positive")
	}
	return nil
}
