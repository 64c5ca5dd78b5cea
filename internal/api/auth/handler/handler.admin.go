package authhdl

import (
	"fmt"

	authdto "liberty_commerce/internal/api/auth/dto"
	authsvc "liberty_commerce/internal/api/auth/service"
	basehdl "liberty_commerce/internal/api/base/handler"
	"liberty_commerce/internal/api/middleware"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// AdminHandler xử lý các request quản trị người dùng (khóa, mở khóa, gán vai trò)
type AdminHandler struct {
	userService *authsvc.UserService
}

// NewAdminHandler tạo instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &AdminHandler{userService: userService}, nil
}

// HandleBlockUser khóa tài khoản người dùng theo email
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	user, err := h.userService.SetBlockStatus(c.Context(), input.Email, true, input.Note)
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	middleware.InvalidateUserCache(user.ID.Hex())
	basehdl.HandleSuccess(c, sanitize(user))
	return nil
}

// HandleUnBlockUser mở khóa tài khoản người dùng theo email
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	user, err := h.userService.SetBlockStatus(c.Context(), input.Email, false, "")
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	middleware.InvalidateUserCache(user.ID.Hex())
	basehdl.HandleSuccess(c, sanitize(user))
	return nil
}

// HandleSetRole gán vai trò cho người dùng theo email
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input authdto.SetRoleInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleErrorResponse(c, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		))
		return nil
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	user, err := h.userService.SetRole(c.Context(), input.Email, input.Role)
	if err != nil {
		basehdl.HandleErrorResponse(c, err)
		return nil
	}
	middleware.InvalidateUserCache(user.ID.Hex())
	basehdl.HandleSuccess(c, sanitize(user))
	return nil
}
