package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("REDIS_PASS", "testpass")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RedisHost != "localhost" {
		t.Errorf("RedisHost = %q, want %q", cfg.RedisHost, "localhost")
	}
	if cfg.RedisPort != "6379" {
		t.Errorf("RedisPort = %q, want %q", cfg.RedisPort, "6379")
	}
	if cfg.RedisPass != "testpass" {
		t.Errorf("RedisPass = %q, want %q", cfg.RedisPass, "testpass")
	}
	if cfg.RedisAddr() != "localhost:6379" {
		t.Errorf("RedisAddr() = %q, want %q", cfg.RedisAddr(), "localhost:6379")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// デフォルト値の確認
	if cfg.ListenAddr != ":8090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8090")
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
	if !cfg.LogMaskIMSI {
		t.Error("LogMaskIMSI = false, want true")
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want %q", cfg.GinMode, "release")
	}
	if cfg.GatewayAddr != "127.0.0.1:8888" {
		t.Errorf("GatewayAddr = %q, want %q", cfg.GatewayAddr, "127.0.0.1:8888")
	}
	if cfg.GatewayTimeout != 3*time.Second {
		t.Errorf("GatewayTimeout = %v, want %v", cfg.GatewayTimeout, 3*time.Second)
	}
	if cfg.OwnNumberCode != "*1000#" {
		t.Errorf("OwnNumberCode = %q, want %q", cfg.OwnNumberCode, "*1000#")
	}
	if cfg.TMSIMaxAttempts != 64 {
		t.Errorf("TMSIMaxAttempts = %d, want %d", cfg.TMSIMaxAttempts, 64)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GATEWAY_ADDR", "10.0.0.7:9000")
	t.Setenv("GATEWAY_TIMEOUT", "750ms")
	t.Setenv("USSD_OWN_NUMBER_CODE", "*#100#")
	t.Setenv("TMSI_MAX_ATTEMPTS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.GatewayAddr != "10.0.0.7:9000" {
		t.Errorf("GatewayAddr = %q, want %q", cfg.GatewayAddr, "10.0.0.7:9000")
	}
	if cfg.GatewayTimeout != 750*time.Millisecond {
		t.Errorf("GatewayTimeout = %v, want %v", cfg.GatewayTimeout, 750*time.Millisecond)
	}
	if cfg.OwnNumberCode != "*#100#" {
		t.Errorf("OwnNumberCode = %q, want %q", cfg.OwnNumberCode, "*#100#")
	}
	if cfg.TMSIMaxAttempts != 8 {
		t.Errorf("TMSIMaxAttempts = %d, want %d", cfg.TMSIMaxAttempts, 8)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	// 必須環境変数をクリア（終了時に元へ戻す）
	for _, key := range []string{"REDIS_HOST", "REDIS_PORT", "REDIS_PASS"} {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		}
		os.Unsetenv(key)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for missing required env vars")
	}
}

func TestLoadInvalidGatewayAddr(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GATEWAY_ADDR", "localhost")

	if _, err := Load(); err == nil {
		t.Error("Load() expected validation error for GATEWAY_ADDR without port")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			GatewayAddr:     "127.0.0.1:8888",
			GatewayTimeout:  3 * time.Second,
			OwnNumberCode:   "*1000#",
			TMSIMaxAttempts: 64,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"gateway without port", func(c *Config) { c.GatewayAddr = "127.0.0.1" }, "GATEWAY_ADDR"},
		{"zero timeout", func(c *Config) { c.GatewayTimeout = 0 }, "GATEWAY_TIMEOUT"},
		{"blank own number code", func(c *Config) { c.OwnNumberCode = "  " }, "USSD_OWN_NUMBER_CODE"},
		{"zero attempts", func(c *Config) { c.TMSIMaxAttempts = 0 }, "TMSI_MAX_ATTEMPTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValkeyOptions(t *testing.T) {
	cfg := &Config{RedisHost: "valkey", RedisPort: "6380", RedisPass: "pw"}
	opts := cfg.ValkeyOptions()

	if opts.Addr != "valkey:6380" {
		t.Errorf("Addr = %q, want %q", opts.Addr, "valkey:6380")
	}
	if opts.Password != "pw" {
		t.Errorf("Password = %q, want %q", opts.Password, "pw")
	}
	if opts.PoolSize != ValkeyPoolSize {
		t.Errorf("PoolSize = %d, want %d", opts.PoolSize, ValkeyPoolSize)
	}
	if opts.MaxRetries != ValkeyMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", opts.MaxRetries, ValkeyMaxRetries)
	}
}
