package worker

import (
	"context"
	"time"

	webhooksvc "mango_commerce/internal/api/webhook/service"
	"mango_commerce/internal/logger"
)

// WebhookLogCleanupWorker dọn các webhook log cũ theo định kỳ.
// Log webhook chỉ phục vụ đối soát, giữ quá lâu làm phình collection.
type WebhookLogCleanupWorker struct {
	webhookLogService *webhooksvc.WebhookLogService
	interval          time.Duration // Khoảng thời gian giữa các lần chạy
	maxAgeDays        int           // Số ngày giữ lại log
}

// NewWebhookLogCleanupWorker tạo mới WebhookLogCleanupWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 6 giờ)
//   - maxAgeDays: Số ngày giữ lại log trước khi xóa (mặc định: 30 ngày)
//
// Trả về:
//   - *WebhookLogCleanupWorker: Instance mới của WebhookLogCleanupWorker
//   - error: Lỗi nếu có trong quá trình khởi tạo
func NewWebhookLogCleanupWorker(interval time.Duration, maxAgeDays int) (*WebhookLogCleanupWorker, error) {
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, err
	}

	// Set defaults
	if interval < time.Minute {
		interval = 6 * time.Hour
	}
	if maxAgeDays <= 0 {
		maxAgeDays = 30
	}

	return &WebhookLogCleanupWorker{
		webhookLogService: webhookLogService,
		interval:          interval,
		maxAgeDays:        maxAgeDays,
	}, nil
}

// Start chạy worker dọn webhook log theo interval cho đến khi context bị hủy.
func (w *WebhookLogCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":   w.interval.String(),
		"maxAgeDays": w.maxAgeDays,
	}).Info("🧹 [WEBHOOK_CLEANUP] Starting Webhook Log Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [WEBHOOK_CLEANUP] Webhook Log Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [WEBHOOK_CLEANUP] Panic khi dọn webhook log, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				before := time.Now().AddDate(0, 0, -w.maxAgeDays)
				deleted, err := w.webhookLogService.DeleteOlderThan(ctx, before)
				if err != nil {
					log.WithError(err).Error("🧹 [WEBHOOK_CLEANUP] Failed to delete old webhook logs")
					return
				}

				if deleted > 0 {
					log.WithFields(map[string]interface{}{
						"deleted": deleted,
						"before":  before.Format(time.RFC3339),
					}).Info("🧹 [WEBHOOK_CLEANUP] Đã dọn webhook log cũ")
				}
			}()
		}
	}
}
