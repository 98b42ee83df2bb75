package webhookhdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	webhookmodels "mango_commerce/internal/api/webhook/models"
	webhooksvc "mango_commerce/internal/api/webhook/service"
)

// WebhookLogHandler cho admin tra cứu log webhook (chỉ đọc)
type WebhookLogHandler struct {
	*basehdl.BaseHandler[webhookmodels.WebhookLog, webhookmodels.WebhookLog, webhookmodels.WebhookLog]
}

// NewWebhookLogHandler tạo mới WebhookLogHandler
func NewWebhookLogHandler() (*WebhookLogHandler, error) {
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[webhookmodels.WebhookLog, webhookmodels.WebhookLog, webhookmodels.WebhookLog](webhookLogService)
	return &WebhookLogHandler{BaseHandler: baseHandler}, nil
}
