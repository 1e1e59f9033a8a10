// Package store はValkeyへの加入者・端末・SMSデータアクセスを提供する。
package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
	"github.com/oyaguma3/msc-ss-poc/pkg/valkey"
	"github.com/redis/go-redis/v9"
)

// ValkeyClient はValkeyクライアントをラップする。
type ValkeyClient struct {
	client *redis.Client
}

// NewValkeyClient は新しいValkeyClientを生成する。
func NewValkeyClient(cfg *config.Config) (*ValkeyClient, error) {
	client, err := valkey.NewClient(cfg.ValkeyOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}
	return &ValkeyClient{client: client}, nil
}

// Close は接続を閉じる。
func (v *ValkeyClient) Close() error {
	return v.client.Close()
}

// Client は内部のredis.Clientを返す。
func (v *ValkeyClient) Client() *redis.Client {
	return v.client
}

// Ping はValkeyの疎通を確認する。
func (v *ValkeyClient) Ping(ctx context.Context) error {
	if err := v.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}
