package server

import (
	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/handler"
	"github.com/oyaguma3/msc-ss-poc/pkg/httputil"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.Handler) {
	engine.NoRoute(httputil.NoRoute)

	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		// SS/USSDシグナリング
		v1.POST("/connections/:conn_id/ss", h.HandleSS)

		// 加入者
		v1.GET("/subscribers", h.HandleGetSubscriber)
		v1.PUT("/subscribers/:imsi", h.HandleUpdateSubscriber)
		v1.POST("/subscribers/:imsi/location-update", h.HandleLocationUpdate)
		v1.POST("/subscribers/:imsi/equipment", h.HandleAssociateEquipment)

		// SMS
		v1.POST("/sms", h.HandleStoreSMS)
		v1.GET("/sms/unsent", h.HandleFetchUnsentSMS)
		v1.POST("/sms/:id/sent", h.HandleMarkSMSSent)
	}
}
