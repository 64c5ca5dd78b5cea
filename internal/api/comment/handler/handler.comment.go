package commenthdl

import (
	"fmt"

	authmodels "liberty_commerce/internal/api/auth/models"
	basehdl "liberty_commerce/internal/api/base/handler"
	basesvc "liberty_commerce/internal/api/base/service"
	commentdto "liberty_commerce/internal/api/comment/dto"
	models "liberty_commerce/internal/api/comment/models"
	commentsvc "liberty_commerce/internal/api/comment/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler xử lý các request liên quan đến bình luận sản phẩm
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	commentService *commentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](commentService)
	return &CommentHandler{
		BaseHandler:    baseHandler,
		commentService: commentService,
	}, nil
}

// HandleCreate tạo bình luận dưới danh nghĩa người dùng hiện tại
func (h *CommentHandler) HandleCreate(c fiber.Ctx) error {
	userIDVal := c.Locals("user_id")
	if userIDVal == nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(userIDVal.(string))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err))
		return nil
	}
	userName := ""
	if user, ok := c.Locals("user").(authmodels.User); ok {
		userName = user.Name
	}

	var input commentdto.CommentCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	comment, err := h.commentService.CreateComment(c.Context(), userID, userName, &input)
	h.HandleResponse(c, comment, err)
	return nil
}

// HandleListByProduct trả về bình luận của một sản phẩm (công khai)
func (h *CommentHandler) HandleListByProduct(c fiber.Ctx) error {
	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	_, limit := h.ParsePagination(c)
	comments, err := h.commentService.ListByProduct(c.Context(), productID, limit)
	h.HandleResponse(c, comments, err)
	return nil
}

// HandleStats trả về thống kê bình luận của một sản phẩm (công khai)
func (h *CommentHandler) HandleStats(c fiber.Ctx) error {
	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	stats, err := h.commentService.Stats(c.Context(), productID)
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleUpdateOwn sửa bình luận của chính mình (admin sửa được mọi bình luận)
func (h *CommentHandler) HandleUpdateOwn(c fiber.Ctx) error {
	commentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	comment, err := h.commentService.FindOneById(c.Context(), commentID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.requireOwnerOrAdmin(c, comment.UserID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input commentdto.CommentUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	set := map[string]interface{}{}
	if input.Content != "" {
		set["content"] = input.Content
	}
	if input.Rating != 0 {
		set["rating"] = input.Rating
	}
	if len(set) == 0 {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil))
		return nil
	}
	updated, err := h.commentService.UpdateById(c.Context(), commentID, &basesvc.UpdateData{Set: set})
	h.HandleResponse(c, updated, err)
	return nil
}

// HandleDeleteOwn xóa bình luận của chính mình (admin xóa được mọi bình luận)
func (h *CommentHandler) HandleDeleteOwn(c fiber.Ctx) error {
	commentID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	comment, err := h.commentService.FindOneById(c.Context(), commentID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.requireOwnerOrAdmin(c, comment.UserID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.commentService.DeleteById(c.Context(), commentID)
	h.HandleResponse(c, nil, err)
	return nil
}

// requireOwnerOrAdmin kiểm tra người dùng hiện tại là chủ bình luận hoặc admin
func (h *CommentHandler) requireOwnerOrAdmin(c fiber.Ctx, ownerID primitive.ObjectID) error {
	userIDVal := c.Locals("user_id")
	if userIDVal == nil {
		return common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	role, _ := c.Locals("role").(string)
	if role == authmodels.RoleAdmin {
		return nil
	}
	if userIDVal.(string) != ownerID.Hex() {
		return common.NewError(common.ErrCodeAuthRole, "Bình luận không thuộc về người dùng này", common.StatusForbidden, nil)
	}
	return nil
}
