package carthdl

import (
	"fmt"

	basehdl "liberty_commerce/internal/api/base/handler"
	cartdto "liberty_commerce/internal/api/cart/dto"
	models "liberty_commerce/internal/api/cart/models"
	cartsvc "liberty_commerce/internal/api/cart/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartHandler xử lý các request liên quan đến giỏ hàng
type CartHandler struct {
	*basehdl.BaseHandler[models.Cart, cartdto.CartAddItemInput, cartdto.CartStatusInput]
	cartService *cartsvc.CartService
}

// NewCartHandler tạo instance mới của CartHandler
func NewCartHandler() (*CartHandler, error) {
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Cart, cartdto.CartAddItemInput, cartdto.CartStatusInput](cartService)
	return &CartHandler{
		BaseHandler: baseHandler,
		cartService: cartService,
	}, nil
}

// currentUserID lấy ObjectID của người dùng đã xác thực từ context
func (h *CartHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleGetMyCart trả về giỏ pending của người dùng hiện tại (tạo mới nếu chưa có)
func (h *CartHandler) HandleGetMyCart(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.GetOrCreateActiveCart(c.Context(), userID)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleAddItem thêm sản phẩm vào giỏ
func (h *CartHandler) HandleAddItem(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input cartdto.CartAddItemInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.AddItem(c.Context(), userID, &input)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleUpdateItem đổi số lượng một dòng hàng
func (h *CartHandler) HandleUpdateItem(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input cartdto.CartUpdateItemInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.UpdateItem(c.Context(), userID, &input)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleRemoveItem gỡ một dòng hàng khỏi giỏ
func (h *CartHandler) HandleRemoveItem(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid product ID", common.StatusBadRequest, err))
		return nil
	}
	cart, err := h.cartService.RemoveItem(c.Context(), userID, productID)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleCheckout chuyển giỏ pending sang paid
func (h *CartHandler) HandleCheckout(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input cartdto.CartCheckoutInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.Checkout(c.Context(), userID, &input)
	h.HandleResponse(c, cart, err)
	return nil
}

// HandleSetStatus chuyển trạng thái giỏ hàng (quản trị)
func (h *CartHandler) HandleSetStatus(c fiber.Ctx) error {
	cartID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input cartdto.CartStatusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	cart, err := h.cartService.SetStatus(c.Context(), cartID, input.Status)
	h.HandleResponse(c, cart, err)
	return nil
}
