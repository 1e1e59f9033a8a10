// Package server はHTTPサーバーの管理を提供する。
package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/handler"
)

// Server はHTTPサーバーを管理する。
type Server struct {
	engine *gin.Engine
	server *http.Server
	cfg    *config.Config
}

// New は新しいServerを生成する。
func New(cfg *config.Config, h *handler.Handler) *Server {
	// Ginモード設定
	gin.SetMode(cfg.GinMode)

	engine := gin.New()

	// ミドルウェア登録
	engine.Use(TraceIDMiddleware())
	engine.Use(LoggingMiddleware())
	engine.Use(RecoveryMiddleware())

	// ルーティング
	SetupRouter(engine, h)

	return &Server{
		engine: engine,
		server: &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           engine,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
		cfg: cfg,
	}
}

// Handler はルーティング済みのhttp.Handlerを返す。
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run はListenAddrで待ち受けを開始する。Shutdown後はhttp.ErrServerClosedを返す。
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		slog.Error("HTTPサーバー起動失敗",
			"event_id", "HTTP_START_ERR",
			"addr", s.cfg.ListenAddr,
			"error", err,
		)
		return err
	}
	return s.Serve(ln)
}

// Serve は指定リスナーで要求を受け付ける。
func (s *Server) Serve(ln net.Listener) error {
	slog.Info("HTTPサーバー起動",
		"event_id", "HTTP_START",
		"addr", ln.Addr().String(),
	)
	return s.server.Serve(ln)
}

// Shutdown は新規接続の受付を止め、処理中の要求の完了を待つ。
// 待機はctxの期限とShutdownTimeoutの早い方まで。
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.ShutdownTimeout)
	defer cancel()

	slog.Info("HTTPサーバー停止開始", "event_id", "HTTP_STOP")
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Warn("HTTPサーバー停止タイムアウト",
			"event_id", "HTTP_STOP_ERR",
			"error", err,
		)
		return err
	}
	slog.Info("HTTPサーバー停止完了", "event_id", "HTTP_STOP")
	return nil
}
