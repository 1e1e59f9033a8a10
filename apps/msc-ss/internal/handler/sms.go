package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/config"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/dto"
	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
	"github.com/oyaguma3/msc-ss-poc/pkg/model"
)

// HandleStoreSMS はPOST /api/v1/sms のハンドラー。
func (h *Handler) HandleStoreSMS(c *gin.Context) {
	var req dto.SMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, "SMS_STORE_ERR", "", bindError(err))
		return
	}
	if req.Header != "" {
		if _, err := decodeHex("header", req.Header); err != nil {
			h.handleError(c, "SMS_STORE_ERR", "", err)
			return
		}
	}

	id, err := h.identity.StoreSMS(c.Request.Context(),
		model.NewSMS(req.SenderID, req.ReceiverID, req.Header, req.Text))
	if err != nil {
		h.handleError(c, "SMS_STORE_ERR", "", err)
		return
	}
	c.JSON(http.StatusCreated, dto.SMSCreatedResponse{ID: id})
}

// HandleMarkSMSSent はPOST /api/v1/sms/:id/sent のハンドラー。
func (h *Handler) HandleMarkSMSSent(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.handleError(c, "SMS_SENT_ERR", "", apperr.NewValidationError("id", "id must be a positive integer"))
		return
	}

	if err := h.identity.MarkSMSSent(c.Request.Context(), id); err != nil {
		h.handleError(c, "SMS_SENT_ERR", "", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleFetchUnsentSMS はGET /api/v1/sms/unsent のハンドラー。
func (h *Handler) HandleFetchUnsentSMS(c *gin.Context) {
	minID, err := queryInt(c, "min_id", 0)
	if err != nil || minID < 0 {
		h.handleError(c, "SMS_FETCH_ERR", "", apperr.NewValidationError("min_id", "min_id must be a non-negative integer"))
		return
	}
	limit, err := queryInt(c, "limit", config.SMSFetchDefaultLimit)
	if err != nil || limit <= 0 {
		h.handleError(c, "SMS_FETCH_ERR", "", apperr.NewValidationError("limit", "limit must be a positive integer"))
		return
	}
	limit = min(limit, config.SMSFetchMaxLimit)

	messages, err := h.identity.FetchUnsentSMS(c.Request.Context(), int64(minID), limit)
	if err != nil {
		h.handleError(c, "SMS_FETCH_ERR", "", err)
		return
	}
	c.JSON(http.StatusOK, dto.SMSListResponse{Messages: messages})
}

// queryInt はクエリパラメータを整数として取り出す。未指定ならdefを返す。
func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
