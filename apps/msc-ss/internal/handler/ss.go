package handler

import (
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/connmgr"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/dto"
)

// HandleSS はPOST /api/v1/connections/:conn_id/ss のハンドラー。
// 処理中に要求された送信と解放を記録し、呼び出し元のコネクション管理へ返す。
func (h *Handler) HandleSS(c *gin.Context) {
	// 1. リクエストバインド
	var req dto.SSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, "SS_DECODE_ERR", "", bindError(err))
		return
	}

	// 2. 入力検証
	if err := validateIMSI(req.IMSI); err != nil {
		h.handleError(c, "SS_DECODE_ERR", req.IMSI, err)
		return
	}
	payload, err := decodeHex("l3", req.L3)
	if err != nil {
		h.handleError(c, "SS_DECODE_ERR", req.IMSI, err)
		return
	}

	// 3. 処理
	conn := &connmgr.Conn{
		ID:      c.Param("conn_id"),
		IMSI:    req.IMSI,
		TraceID: traceID(c),
	}
	session := connmgr.NewSession()
	res := h.dispatcher.Handle(c.Request.Context(), session, conn, payload)

	// 4. 応答
	messages := session.Messages()
	facility := make([]string, 0, len(messages))
	for _, msg := range messages {
		facility = append(facility, hex.EncodeToString(msg))
	}
	resp := dto.SSResponse{
		TraceID:  conn.TraceID,
		Outcome:  string(res.Outcome),
		Handler:  res.Handler,
		Facility: facility,
		Released: session.Released(),
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
