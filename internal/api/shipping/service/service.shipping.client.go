// Package shippingsvc - client gọi API đối tác vận chuyển.
package shippingsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	shippingdto "mango_commerce/internal/api/shipping/dto"
	"mango_commerce/config"
	"mango_commerce/internal/common"
	"mango_commerce/internal/logger"
	"mango_commerce/internal/utility"
)

const tokenCacheKey = "shipping_partner_token"

// Client gọi API của đối tác vận chuyển.
// Token đăng nhập được giữ trong cache tiêm từ ngoài (không dùng biến toàn cục),
// hết hạn thì tự đăng nhập lại trong lần gọi kế tiếp.
type Client struct {
	baseURL    string
	email      string
	password   string
	tokenTTL   time.Duration
	tokenCache *utility.Cache
	httpClient *http.Client
}

// NewClient tạo client vận chuyển với cache token tiêm từ ngoài
func NewClient(cfg *config.Configuration, tokenCache *utility.Cache) *Client {
	return &Client{
		baseURL:    cfg.ShippingBaseURL,
		email:      cfg.ShippingEmail,
		password:   cfg.ShippingPassword,
		tokenTTL:   time.Duration(cfg.ShippingTokenTTL) * time.Hour,
		tokenCache: tokenCache,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// login đăng nhập đối tác để lấy bearer token mới
func (c *Client) login(ctx context.Context) (string, error) {
	payload := shippingdto.LoginRequest{
		Email:    c.email,
		Password: c.password,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/auth/login", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).Error("🚚 [SHIPPING] Lỗi khi đăng nhập đối tác vận chuyển")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("shipping partner login returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var loginResp shippingdto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return "", err
	}
	if loginResp.Token == "" {
		return "", fmt.Errorf("shipping partner login returned empty token")
	}

	logger.GetAppLogger().Info("🚚 [SHIPPING] Đăng nhập đối tác vận chuyển thành công")
	return loginResp.Token, nil
}

// token trả về bearer token còn hiệu lực, ưu tiên cache trước khi đăng nhập lại
func (c *Client) token(ctx context.Context) (string, error) {
	if cached, found := c.tokenCache.Get(tokenCacheKey); found {
		return cached.(string), nil
	}

	token, err := c.login(ctx)
	if err != nil {
		return "", err
	}
	c.tokenCache.SetWithTTL(tokenCacheKey, token, c.tokenTTL)
	return token, nil
}

// CreateShipment tạo vận đơn cho một đơn hàng.
// Gặp 401 thì token trong cache đã bị đối tác thu hồi sớm, đăng nhập lại và thử thêm một lần.
func (c *Client) CreateShipment(ctx context.Context, request *shippingdto.ShipmentRequest) (*shippingdto.ShipmentResult, error) {
	result, statusCode, err := c.postShipment(ctx, request)
	if statusCode == http.StatusUnauthorized {
		c.tokenCache.Delete(tokenCacheKey)
		result, _, err = c.postShipment(ctx, request)
	}
	if err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(logrus.Fields{
		"order_id":         request.OrderID,
		"partner_order_id": result.PartnerOrderID,
		"tracking_code":    result.TrackingCode,
	}).Info("🚚 [SHIPPING] Tạo vận đơn thành công")

	return result, nil
}

func (c *Client) postShipment(ctx context.Context, request *shippingdto.ShipmentRequest) (*shippingdto.ShipmentResult, int, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, 0, err
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/orders/create", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetAppLogger().WithError(err).WithFields(logrus.Fields{
			"order_id": request.OrderID,
		}).Error("🚚 [SHIPPING] Lỗi khi gọi API tạo vận đơn")
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, resp.StatusCode, fmt.Errorf("shipping partner returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var result shippingdto.ShipmentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, resp.StatusCode, err
	}
	if result.TrackingCode == "" && result.PartnerOrderID == "" {
		return nil, resp.StatusCode, common.NewError(common.ErrCodeBusinessOperation, "Đối tác vận chuyển không trả về mã vận đơn", common.StatusBadGateway, nil)
	}

	return &result, resp.StatusCode, nil
}
