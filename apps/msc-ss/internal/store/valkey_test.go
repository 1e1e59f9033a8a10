package store

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
)

var fixedNow = time.Unix(1700000000, 0)

func fixedClock() time.Time {
	return fixedNow
}

func newTestConfig(t *testing.T, addr string) *config.Config {
	t.Helper()
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("SplitHostPort(%q) failed: %v", addr, err)
	}
	return &config.Config{
		RedisHost: host,
		RedisPort: port,
		RedisPass: "",
	}
}

func newTestClient(t *testing.T) (*miniredis.Miniredis, *ValkeyClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	vc, err := NewValkeyClient(newTestConfig(t, mr.Addr()))
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { _ = vc.Close() })
	return mr, vc
}

func TestNewValkeyClient(t *testing.T) {
	_, vc := newTestClient(t)
	if vc.Client() == nil {
		t.Fatal("Client() returned nil")
	}
	if err := vc.Ping(context.Background()); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func TestNewValkeyClientConnectionError(t *testing.T) {
	cfg := newTestConfig(t, "127.0.0.1:59999")
	_, err := NewValkeyClient(cfg)
	if err == nil {
		t.Fatal("expected error for invalid address, got nil")
	}
}

func TestPingValkeyDown(t *testing.T) {
	mr, vc := newTestClient(t)
	mr.Close()

	err := vc.Ping(context.Background())
	if !errors.Is(err, ErrValkeyUnavailable) {
		t.Errorf("expected ErrValkeyUnavailable, got: %v", err)
	}
}
