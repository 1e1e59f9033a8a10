// Package main はMSC SS/USSDサービスのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/gateway"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/handler"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/identity"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/server"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/store"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/ussd"
	"github.com/oyaguma3/msc-ss-poc/pkg/logging"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("msc-ss起動開始",
		"listen_addr", cfg.ListenAddr,
		"gateway_addr", cfg.GatewayAddr,
		"gateway_timeout", cfg.GatewayTimeout.String(),
		"own_number_code", cfg.OwnNumberCode,
	)

	// 3. Valkeyクライアント初期化
	valkeyClient, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("Valkey接続失敗",
			"event_id", "VALKEY_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("Valkey接続完了", "addr", cfg.RedisAddr())

	// 4. Store層生成
	subscriberStore := store.NewSubscriberStore(valkeyClient)
	equipmentStore := store.NewEquipmentStore(valkeyClient)
	smsStore := store.NewSMSStore(valkeyClient)

	// 5. USSDゲートウェイクライアント初期化
	gatewayClient := gateway.NewClient(cfg)

	// 6. 加入者識別子管理
	fields := logging.NewCommonFields(logging.NewMasker(cfg.LogMaskIMSI))
	identityManager := identity.NewManager(subscriberStore, equipmentStore, smsStore, cfg.TMSIMaxAttempts, fields)

	// 7. SS/USSDディスパッチャ
	dispatcher := ussd.NewDispatcher(subscriberStore, gatewayClient, ussd.NewBuiltinTable(cfg.OwnNumberCode), fields)

	// 8. HTTPハンドラ
	h := handler.NewHandler(dispatcher, identityManager, subscriberStore, valkeyClient, fields)

	// 9. サーバー起動（goroutine）
	srv := server.New(cfg, h)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("サーバーエラー", "error", err)
			os.Exit(1)
		}
	}()

	// 10. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("シグナル受信、シャットダウン開始", "signal", sig)

	if err := srv.Shutdown(context.Background()); err != nil {
		slog.Warn("シャットダウンエラー", "error", err)
	}

	slog.Info("msc-ss停止完了")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("app", "msc-ss")
	slog.SetDefault(logger)
}
