package producthdl

import (
	"fmt"

	basehdl "liberty_commerce/internal/api/base/handler"
	productdto "liberty_commerce/internal/api/product/dto"
	models "liberty_commerce/internal/api/product/models"
	productsvc "liberty_commerce/internal/api/product/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput]
	productService *productsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, productdto.ProductCreateInput, productdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// InsertOne ghi đè base handler để tính giá trị tồn kho khi tạo sản phẩm
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	var input productdto.ProductCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.CreateProduct(c.Context(), &input)
	h.HandleResponse(c, product, err)
	return nil
}

// UpdateById ghi đè base handler để tính lại giá trị tồn kho khi cập nhật
func (h *ProductHandler) UpdateById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input productdto.ProductUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.UpdateProduct(c.Context(), id, &input)
	h.HandleResponse(c, product, err)
	return nil
}

// HandleSearch tìm kiếm sản phẩm theo từ khóa (?q=...)
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	keyword := c.Query("q")
	page, limit := h.ParsePagination(c)
	result, err := h.productService.Search(c.Context(), keyword, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleCategories trả về danh sách category
func (h *ProductHandler) HandleCategories(c fiber.Ctx) error {
	categories, err := h.productService.Categories(c.Context())
	h.HandleResponse(c, categories, err)
	return nil
}

// HandleLowStock trả về danh sách sản phẩm sắp hết hàng
func (h *ProductHandler) HandleLowStock(c fiber.Ctx) error {
	_, limit := h.ParsePagination(c)
	products, err := h.productService.LowStock(c.Context(), limit)
	h.HandleResponse(c, products, err)
	return nil
}

// HandleAdjustStock tăng / giảm tồn kho của sản phẩm
func (h *ProductHandler) HandleAdjustStock(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input productdto.AdjustStockInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	product, err := h.productService.AdjustStock(c.Context(), id, input.Delta)
	h.HandleResponse(c, product, err)
	return nil
}
