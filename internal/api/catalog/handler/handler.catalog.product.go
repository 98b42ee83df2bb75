// Package cataloghdl - handler sản phẩm cho storefront và admin.
package cataloghdl

import (
	"fmt"

	basehdl "mango_commerce/internal/api/base/handler"
	catalogdto "mango_commerce/internal/api/catalog/dto"
	models "mango_commerce/internal/api/catalog/models"
	catalogsvc "mango_commerce/internal/api/catalog/service"
	"mango_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// pathProductID lấy ObjectID từ path param :id
func (h *ProductHandler) pathProductID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID sản phẩm không đúng định dạng", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleStorefrontList trả về danh sách sản phẩm đang bán (route công khai)
func (h *ProductHandler) HandleStorefrontList(c fiber.Ctx) error {
	products, err := h.productService.StorefrontList(c.Context())
	h.HandleResponse(c, products, err)
	return nil
}

// HandleCreateProduct tạo sản phẩm mới (route admin).
// Dùng riêng thay vì CRUD InsertOne để khởi tạo lịch sử giá cùng lúc.
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	var input catalogdto.ProductCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.Create(c.Context(), &input)
	h.HandleResponse(c, product, err)
	return nil
}

// HandleUpdateProduct cập nhật sản phẩm (route admin).
// Dùng riêng thay vì CRUD UpdateById để thay đổi giá được ghi vào lịch sử giá.
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	objID, err := h.pathProductID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input catalogdto.ProductUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.Update(c.Context(), objID, &input)
	h.HandleResponse(c, product, err)
	return nil
}

// HandleDeleteProduct xóa mềm sản phẩm (route admin)
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	objID, err := h.pathProductID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.productService.SoftDelete(c.Context(), objID)
	h.HandleResponse(c, nil, err)
	return nil
}
