package messagehdl

import (
	"fmt"
	"strings"

	basehdl "liberty_commerce/internal/api/base/handler"
	messagedto "liberty_commerce/internal/api/message/dto"
	models "liberty_commerce/internal/api/message/models"
	messagesvc "liberty_commerce/internal/api/message/service"
	authmodels "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MessageHandler xử lý các request liên quan đến tin nhắn
type MessageHandler struct {
	*basehdl.BaseHandler[models.Message, messagedto.MessageSendInput, messagedto.MessageSendInput]
	messageService *messagesvc.MessageService
}

// NewMessageHandler tạo instance mới của MessageHandler
func NewMessageHandler() (*MessageHandler, error) {
	messageService, err := messagesvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Message, messagedto.MessageSendInput, messagedto.MessageSendInput](messageService)
	return &MessageHandler{
		BaseHandler:    baseHandler,
		messageService: messageService,
	}, nil
}

// currentUser lấy ObjectID và vai trò của người dùng đã xác thực
func (h *MessageHandler) currentUser(c fiber.Ctx) (primitive.ObjectID, string, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, "", common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, "", common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	role, _ := c.Locals("role").(string)
	return objID, role, nil
}

// isStaff kiểm tra vai trò có thuộc phía cửa hàng không
func isStaff(role string) bool {
	return role == authmodels.RoleAdmin || role == authmodels.RoleEmployee
}

// HandleSend gửi tin nhắn; phía gửi xác định theo vai trò của người đăng nhập
func (h *MessageHandler) HandleSend(c fiber.Ctx) error {
	objID, role, err := h.currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input messagedto.MessageSendInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	isFromUser := !isStaff(role)
	// Nhân viên trả lời hội thoại của khách: giữ nguyên userId chủ hội thoại
	targetUserID := objID
	if !isFromUser && input.ConversationID != "" {
		if ownerHex, _, ok := strings.Cut(input.ConversationID, ":"); ok {
			if ownerID, err := primitive.ObjectIDFromHex(ownerHex); err == nil {
				targetUserID = ownerID
			}
		}
	}

	message, err := h.messageService.Send(c.Context(), targetUserID, isFromUser, &input)
	h.HandleResponse(c, message, err)
	return nil
}

// HandleListByConversation trả về tin nhắn của một hội thoại
func (h *MessageHandler) HandleListByConversation(c fiber.Ctx) error {
	objID, role, err := h.currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	conversationID := c.Params("conversationId")

	// Khách chỉ xem được hội thoại của chính mình
	if !isStaff(role) && !strings.HasPrefix(conversationID, objID.Hex()+":") {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthRole, "Không có quyền xem hội thoại này", common.StatusForbidden, nil))
		return nil
	}

	_, limit := h.ParsePagination(c)
	messages, err := h.messageService.ListByConversation(c.Context(), conversationID, limit)
	h.HandleResponse(c, messages, err)
	return nil
}

// HandleConversations trả về danh sách hội thoại; khách thấy của mình, nhân viên thấy tất cả
func (h *MessageHandler) HandleConversations(c fiber.Ctx) error {
	objID, role, err := h.currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	staff := isStaff(role)
	filter := bson.M{}
	if !staff {
		filter["userId"] = objID
	}
	summaries, err := h.messageService.Conversations(c.Context(), filter, !staff)
	h.HandleResponse(c, summaries, err)
	return nil
}

// HandleMarkRead đánh dấu đã đọc cả hội thoại
func (h *MessageHandler) HandleMarkRead(c fiber.Ctx) error {
	objID, role, err := h.currentUser(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input messagedto.MessageMarkReadInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	staff := isStaff(role)
	if !staff && !strings.HasPrefix(input.ConversationID, objID.Hex()+":") {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuthRole, "Không có quyền với hội thoại này", common.StatusForbidden, nil))
		return nil
	}

	count, err := h.messageService.MarkRead(c.Context(), input.ConversationID, !staff)
	h.HandleResponse(c, fiber.Map{"markedCount": count}, err)
	return nil
}
