// Package channels chứa các kênh gửi thông báo ra ngoài hệ thống.
package channels

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	ordermodels "mango_commerce/internal/api/order/models"
	"mango_commerce/config"
	"mango_commerce/internal/logger"
)

// SendOrderConfirmation gửi email xác nhận đơn hàng cho khách.
// Gửi best-effort: lỗi chỉ được log, không chặn luồng tạo đơn.
func SendOrderConfirmation(cfg *config.Configuration, order *ordermodels.Order) error {
	if order.Email == "" {
		return nil
	}
	if cfg.SMTPHost == "" {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"order_id": order.ID.Hex(),
		}).Debug("📧 [EMAIL] SMTP chưa cấu hình, bỏ qua email xác nhận")
		return nil
	}

	var lines []string
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("- %s x%d: %.0f", item.Name, item.Quantity, item.Price*float64(item.Quantity)))
	}

	body := fmt.Sprintf(
		"Chào %s,\n\nĐơn hàng của bạn đã được xác nhận.\n\n%s\n\nTổng tiền: %.0f\nThanh toán: %s\nGiao đến: %s\n\nTheo dõi đơn hàng tại %s",
		order.CustomerName,
		strings.Join(lines, "\n"),
		order.TotalAmount,
		order.PaymentMode,
		order.Address,
		cfg.FrontendURL,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", cfg.SMTPFrom)
	msg.SetHeader("To", order.Email)
	msg.SetHeader("Subject", "Xác nhận đơn hàng "+order.ID.Hex())
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"order_id": order.ID.Hex(),
			"to":       order.Email,
		}).Error("📧 [EMAIL] Gửi email xác nhận thất bại")
		return err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id": order.ID.Hex(),
		"to":       order.Email,
	}).Info("📧 [EMAIL] Đã gửi email xác nhận đơn hàng")
	return nil
}
