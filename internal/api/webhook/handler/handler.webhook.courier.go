// Package webhookhdl - handler webhook trạng thái vận chuyển.
package webhookhdl

import (
	"context"
	"fmt"
	"time"

	basehdl "mango_commerce/internal/api/base/handler"
	webhookdto "mango_commerce/internal/api/webhook/dto"
	webhookmodels "mango_commerce/internal/api/webhook/models"
	webhooksvc "mango_commerce/internal/api/webhook/service"
	"mango_commerce/internal/common"
	"mango_commerce/internal/global"
	"mango_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// CourierWebhookHandler nhận webhook trạng thái từ đối tác vận chuyển
type CourierWebhookHandler struct {
	courierService    *webhooksvc.CourierWebhookService
	webhookLogService *webhooksvc.WebhookLogService
}

// NewCourierWebhookHandler tạo mới CourierWebhookHandler
func NewCourierWebhookHandler() (*CourierWebhookHandler, error) {
	courierService, err := webhooksvc.NewCourierWebhookService()
	if err != nil {
		return nil, fmt.Errorf("failed to create courier webhook service: %v", err)
	}
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &CourierWebhookHandler{
		courierService:    courierService,
		webhookLogService: webhookLogService,
	}, nil
}

// ackOK trả về 200 cho đối tác. Webhook luôn được ack kể cả khi xử lý thất bại,
// nếu không đối tác sẽ retry dồn dập cùng một payload.
func ackOK(c fiber.Ctx, message string) {
	basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": message,
		"status":  "success",
	})
}

// HandleCourierStatus nhận và xử lý webhook trạng thái vận đơn.
// Xác thực bằng shared secret trong header X-Webhook-Token; nếu server
// không cấu hình token thì bỏ qua bước xác thực (môi trường dev).
func (h *CourierWebhookHandler) HandleCourierStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetAppLogger()

		expectedToken := global.MongoDB_ServerConfig.WebhookToken
		if expectedToken != "" && c.Get("X-Webhook-Token") != expectedToken {
			log.WithField("ip", c.IP()).Warn("🚚 [WEBHOOK] Token webhook không hợp lệ")
			basehdl.WriteResponse(c, nil, common.ErrWebhookTokenBad)
			return nil
		}

		rawBody := string(c.Body())
		ctx := c.Context()
		var req webhookdto.CourierStatusRequest
		parseErr := c.Bind().Body(&req)

		webhookLog, logErr := h.saveWebhookLog(ctx, c, req, rawBody, parseErr)
		if logErr != nil {
			log.WithError(logErr).Warn("🚚 [WEBHOOK] Không thể lưu webhook log")
		}

		if parseErr != nil {
			ackOK(c, "Webhook đã được nhận và lưu log")
			return nil
		}

		_, processErr := h.courierService.Process(ctx, &req)
		if webhookLog != nil {
			errorMsg := ""
			if processErr != nil {
				errorMsg = processErr.Error()
			}
			_ = h.webhookLogService.UpdateProcessedStatus(ctx, webhookLog.ID, processErr == nil, errorMsg)
		}
		if processErr != nil {
			log.WithError(processErr).WithField("tracking_code", req.AWB).Error("🚚 [WEBHOOK] Lỗi khi xử lý webhook")
		}

		ackOK(c, "Webhook đã được nhận và xử lý")
		return nil
	})
}

func (h *CourierWebhookHandler) saveWebhookLog(ctx context.Context, c fiber.Ctx, req webhookdto.CourierStatusRequest, rawBody string, parseErr error) (*webhookmodels.WebhookLog, error) {
	now := time.Now().UnixMilli()
	requestHeaders := make(map[string]string)
	c.Request().Header.VisitAll(func(key, value []byte) {
		requestHeaders[string(key)] = string(value)
	})

	requestBody := make(map[string]interface{})
	if parseErr == nil {
		requestBody = map[string]interface{}{
			"awb":            req.AWB,
			"order_id":       req.PartnerOrderID,
			"current_status": req.CurrentStatus,
		}
	} else {
		requestBody = map[string]interface{}{"raw": rawBody, "parseError": parseErr.Error()}
	}

	webhookLog := webhookmodels.WebhookLog{
		Source:         "courier",
		TrackingCode:   req.AWB,
		StatusKeyword:  req.CurrentStatus,
		RequestHeaders: requestHeaders,
		RequestBody:    requestBody,
		RawBody:        rawBody,
		Processed:      false,
		ProcessError: func() string {
			if parseErr != nil {
				return fmt.Sprintf("Parse error: %v", parseErr)
			}
			return ""
		}(),
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
		ReceivedAt: now,
	}
	return h.webhookLogService.CreateWebhookLog(ctx, webhookLog)
}
