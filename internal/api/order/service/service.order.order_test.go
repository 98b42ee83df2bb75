// Package ordersvc - Test dựng document đơn hàng từ dữ liệu checkout.
package ordersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdto "mango_commerce/internal/api/order/dto"
	models "mango_commerce/internal/api/order/models"
)

func checkoutFixture(paymentMode string) *orderdto.CheckoutInput {
	return &orderdto.CheckoutInput{
		CustomerName: "Nguyễn Văn A",
		Phone:        "0912345678",
		Address:      "12 Lê Lợi, Cao Lãnh",
		PaymentMode:  paymentMode,
		Items: []orderdto.CheckoutItemInput{
			{ProductID: "656f1e8f2a3b4c5d6e7f8091", Name: "Xoài Cát 5kg", Quantity: 2, Price: 250000},
			{ProductID: "656f1e8f2a3b4c5d6e7f8092", Name: "Xoài Keo", Quantity: 1, Price: 90000},
		},
	}
}

func TestBuildOrder_COD(t *testing.T) {
	order, err := buildOrder(checkoutFixture(models.PaymentModeCOD), "")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentModeCOD, order.PaymentMode)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus, "đơn COD chưa thu tiền")
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, float64(590000), order.TotalAmount)
	assert.Len(t, order.Items, 2)
	// 5kg x 2 + mặc định 3kg x 1
	assert.Equal(t, float64(13), order.ParcelWeight)
}

func TestBuildOrder_OnlineDefaults(t *testing.T) {
	// Không truyền paymentMode thì mặc định là online, đã thanh toán
	order, err := buildOrder(checkoutFixture(""), "pay_123")
	require.NoError(t, err)

	assert.Equal(t, models.PaymentModeOnline, order.PaymentMode)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	assert.Equal(t, "pay_123", order.PaymentID)
}

func TestBuildOrder_BadProductID(t *testing.T) {
	input := checkoutFixture(models.PaymentModeCOD)
	input.Items[0].ProductID = "khong-phai-objectid"

	_, err := buildOrder(input, "")
	require.Error(t, err, "productId sai định dạng phải bị từ chối")
}
