package authhdl

import (
	"fmt"

	authdto "liberty_commerce/internal/api/auth/dto"
	models "liberty_commerce/internal/api/auth/models"
	authsvc "liberty_commerce/internal/api/auth/service"
	basehdl "liberty_commerce/internal/api/base/handler"
	"liberty_commerce/internal/api/middleware"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// currentUserID lấy ObjectID của người dùng đã xác thực từ context
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// sanitize xóa các trường nhạy cảm trước khi trả về client
func sanitize(user *models.User) *models.User {
	user.Password = ""
	user.Salt = ""
	return user
}

// HandleRegister xử lý đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.UserRegisterInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Register(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, sanitize(user), nil)
	return nil
}

// HandleLogin xử lý đăng nhập, trả về user kèm token
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.UserLoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.Login(c.Context(), &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	// Token mới đã được cấp, cache cũ (nếu có) không còn hợp lệ
	middleware.InvalidateUserCache(user.ID.Hex())
	h.HandleResponse(c, sanitize(user), nil)
	return nil
}

// HandleLogout xử lý đăng xuất người dùng
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.Logout(c.Context(), objID)
	middleware.InvalidateUserCache(objID.Hex())
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleGetProfile lấy thông tin profile của người dùng
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Token = ""
	h.HandleResponse(c, sanitize(&user), nil)
	return nil
}

// HandleUpdateProfile cập nhật thông tin profile
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.UpdateProfile(c.Context(), objID, &input)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user.Token = ""
	h.HandleResponse(c, sanitize(user), nil)
	return nil
}

// HandleChangePassword đổi mật khẩu cho người dùng hiện tại
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.UserChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.userService.ChangePassword(c.Context(), objID, &input)
	// Token bị thu hồi, xóa cache để chặn request tiếp theo dùng token cũ
	middleware.InvalidateUserCache(objID.Hex())
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleAddToWishlist thêm sản phẩm vào wishlist của người dùng hiện tại
func (h *UserHandler) HandleAddToWishlist(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input authdto.WishlistInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid product ID", common.StatusBadRequest, err))
		return nil
	}
	user, err := h.userService.AddToWishlist(c.Context(), objID, productID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, user.Wishlist, nil)
	return nil
}

// HandleRemoveFromWishlist gỡ sản phẩm khỏi wishlist của người dùng hiện tại
func (h *UserHandler) HandleRemoveFromWishlist(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	productID, err := primitive.ObjectIDFromHex(c.Params("productId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "Invalid product ID", common.StatusBadRequest, err))
		return nil
	}
	user, err := h.userService.RemoveFromWishlist(c.Context(), objID, productID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, user.Wishlist, nil)
	return nil
}

// HandleGetWishlist trả về danh sách id sản phẩm trong wishlist
func (h *UserHandler) HandleGetWishlist(c fiber.Ctx) error {
	objID, err := h.currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	user, err := h.userService.FindOneById(c.Context(), objID)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	wishlist := user.Wishlist
	if wishlist == nil {
		wishlist = []primitive.ObjectID{}
	}
	h.HandleResponse(c, wishlist, nil)
	return nil
}
