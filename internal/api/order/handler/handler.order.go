package orderhdl

import (
	"fmt"

	basehdl "liberty_commerce/internal/api/base/handler"
	orderdto "liberty_commerce/internal/api/order/dto"
	models "liberty_commerce/internal/api/order/models"
	ordersvc "liberty_commerce/internal/api/order/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// currentUserID lấy ObjectID của người dùng đã xác thực từ context
func (h *OrderHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleCreateFromCart tạo đơn hàng từ giỏ đã thanh toán của người dùng hiện tại
func (h *OrderHandler) HandleCreateFromCart(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input orderdto.OrderCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.CreateFromCart(c.Context(), userID, &input)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleMyOrders trả về đơn hàng của người dùng hiện tại
func (h *OrderHandler) HandleMyOrders(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	page, limit := h.ParsePagination(c)
	result, err := h.orderService.MyOrders(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleSetStatus chuyển trạng thái đơn hàng (quản trị)
func (h *OrderHandler) HandleSetStatus(c fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input orderdto.OrderStatusInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	order, err := h.orderService.SetStatus(c.Context(), orderID, input.Status)
	h.HandleResponse(c, order, err)
	return nil
}

// HandleAddPaymentProof gắn ảnh chứng từ thanh toán vào đơn của chính người dùng
func (h *OrderHandler) HandleAddPaymentProof(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	orderID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input orderdto.OrderPaymentProofInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	order, err := h.orderService.FindOneById(c.Context(), orderID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if order.UserID != userID {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthRole, "Đơn hàng không thuộc về người dùng này", common.StatusForbidden, nil))
		return nil
	}

	updated, err := h.orderService.AddPaymentProof(c.Context(), orderID, input.ImageURL)
	h.HandleResponse(c, updated, err)
	return nil
}
