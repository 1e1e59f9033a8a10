package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/dto"
	"github.com/oyaguma3/msc-ss-poc/apps/msc-ss/internal/store"
	"github.com/oyaguma3/msc-ss-poc/pkg/apperr"
)

// HandleLocationUpdate はPOST /api/v1/subscribers/:imsi/location-update のハンドラー。
func (h *Handler) HandleLocationUpdate(c *gin.Context) {
	imsi := c.Param("imsi")
	if err := validateIMSI(imsi); err != nil {
		h.handleError(c, "LU_ERR", imsi, err)
		return
	}

	var req dto.LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, "LU_ERR", imsi, bindError(err))
		return
	}
	if err := validateLAC(req.LAC); err != nil {
		h.handleError(c, "LU_ERR", imsi, err)
		return
	}
	if req.IMEI != "" {
		if err := validateIMEI(req.IMEI); err != nil {
			h.handleError(c, "LU_ERR", imsi, err)
			return
		}
	}

	sub, err := h.identity.LocationUpdate(c.Request.Context(), imsi, req.LAC, req.IMEI)
	if err != nil {
		h.handleError(c, "LU_ERR", imsi, err)
		return
	}

	slog.Info("location updated",
		"trace_id", traceID(c),
		"event_id", "LU_OK",
		h.fields.WithIMSI(imsi),
		"lac", sub.LAC,
	)
	c.JSON(http.StatusOK, sub)
}

// HandleGetSubscriber はGET /api/v1/subscribers のハンドラー。
// imsi, tmsi, extension のいずれか1つで検索する。
func (h *Handler) HandleGetSubscriber(c *gin.Context) {
	field, value, err := lookupQuery(c)
	if err != nil {
		h.handleError(c, "SUB_LOOKUP_ERR", "", err)
		return
	}

	sub, err := h.subscribers.Get(c.Request.Context(), field, value)
	if err != nil {
		h.handleError(c, "SUB_LOOKUP_ERR", "", err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// HandleUpdateSubscriber はPUT /api/v1/subscribers/:imsi のハンドラー。
func (h *Handler) HandleUpdateSubscriber(c *gin.Context) {
	imsi := c.Param("imsi")
	if err := validateIMSI(imsi); err != nil {
		h.handleError(c, "SUB_UPDATE_ERR", imsi, err)
		return
	}

	var req dto.SubscriberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, "SUB_UPDATE_ERR", imsi, bindError(err))
		return
	}
	if req.Extension != nil && *req.Extension != "" && !isDigits(*req.Extension) {
		h.handleError(c, "SUB_UPDATE_ERR", imsi,
			apperr.NewValidationError("extension", "extension must contain only digits"))
		return
	}

	ctx := c.Request.Context()
	sub, err := h.subscribers.Get(ctx, store.FieldIMSI, imsi)
	if err != nil {
		h.handleError(c, "SUB_UPDATE_ERR", imsi, err)
		return
	}

	if req.Extension != nil {
		sub.Extension = *req.Extension
	}
	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Authorized != nil {
		sub.Authorized = *req.Authorized
	}

	if err := h.subscribers.Sync(ctx, sub); err != nil {
		h.handleError(c, "SUB_UPDATE_ERR", imsi, err)
		return
	}

	slog.Info("subscriber updated",
		"trace_id", traceID(c),
		"event_id", "SUB_UPDATE",
		h.fields.WithIMSI(imsi),
	)
	c.JSON(http.StatusOK, sub)
}

// HandleAssociateEquipment はPOST /api/v1/subscribers/:imsi/equipment のハンドラー。
func (h *Handler) HandleAssociateEquipment(c *gin.Context) {
	imsi := c.Param("imsi")
	if err := validateIMSI(imsi); err != nil {
		h.handleError(c, "EQUIP_ERR", imsi, err)
		return
	}

	var req dto.EquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, "EQUIP_ERR", imsi, bindError(err))
		return
	}
	if err := validateIMEI(req.IMEI); err != nil {
		h.handleError(c, "EQUIP_ERR", imsi, err)
		return
	}

	ctx := c.Request.Context()
	sub, err := h.subscribers.Get(ctx, store.FieldIMSI, imsi)
	if err != nil {
		h.handleError(c, "EQUIP_ERR", imsi, err)
		return
	}

	assoc, err := h.identity.AssociateEquipment(ctx, sub, req.IMEI)
	if err != nil {
		h.handleError(c, "EQUIP_ERR", imsi, err)
		return
	}
	c.JSON(http.StatusOK, dto.EquipmentResponse{
		EquipmentID:  assoc.EquipmentID,
		NewEquipment: assoc.NewEquipment,
		NewWatch:     assoc.NewWatch,
	})
}

// lookupQuery は検索条件のクエリパラメータを1つだけ取り出す。
func lookupQuery(c *gin.Context) (store.LookupField, string, error) {
	var (
		field store.LookupField
		value string
		n     int
	)
	for _, f := range []store.LookupField{store.FieldIMSI, store.FieldTMSI, store.FieldExtension} {
		if v := c.Query(string(f)); v != "" {
			field, value = f, v
			n++
		}
	}
	if n != 1 {
		return "", "", apperr.NewValidationError("query", "exactly one of imsi, tmsi or extension is required")
	}
	if field == store.FieldIMSI {
		if err := validateIMSI(value); err != nil {
			return "", "", err
		}
	}
	return field, value, nil
}
