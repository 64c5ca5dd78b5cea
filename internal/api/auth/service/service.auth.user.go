// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	authdto "liberty_commerce/internal/api/auth/dto"
	models "liberty_commerce/internal/api/auth/models"
	basesvc "liberty_commerce/internal/api/base/service"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới với vai trò customer
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa để trả về lỗi rõ ràng (unique index vẫn là chốt chặn cuối)
	_, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err == nil {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Email đã được sử dụng", common.StatusConflict, nil)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo salt cho mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: utility.HashPassword(input.Password, salt),
		Salt:     salt,
		Phone:    input.Phone,
		Role:     models.RoleCustomer,
	}
	if input.Address != nil {
		user.Address = models.Address{
			Street:  input.Address.Street,
			City:    input.Address.City,
			County:  input.Address.County,
			Country: input.Address.Country,
		}
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": created.ID.Hex(), "email": created.Email}).Info("Register: Đăng ký tài khoản thành công")
	return &created, nil
}

// Login đăng nhập bằng email và mật khẩu, trả về user kèm token mới
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utility.VerifyPassword(input.Password, user.Salt, user.Password) {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex())
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token xác thực", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	}
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "email": updatedUser.Email}).Info("Login: Đăng nhập thành công")
	return &updatedUser, nil
}

// Logout đăng xuất người dùng (thu hồi token hiện tại)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"token": ""},
	}
	_, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu, thu hồi token hiện tại để bắt buộc đăng nhập lại
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.BaseServiceMongoImpl.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.VerifyPassword(input.OldPassword, user.Salt, user.Password) {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}

	salt, err := utility.GenerateSalt()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể tạo salt cho mật khẩu", common.StatusInternalServerError, err)
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": utility.HashPassword(input.NewPassword, salt),
			"salt":     salt,
			"token":    "",
		},
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, userID, updateData)
	return err
}

// UpdateProfile cập nhật thông tin cá nhân của người dùng
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserUpdateInput) (*models.User, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.Address != nil {
		set["address"] = models.Address{
			Street:  input.Address.Street,
			City:    input.Address.City,
			County:  input.Address.County,
			Country: input.Address.Country,
		}
	}
	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// SetBlockStatus khóa / mở khóa tài khoản theo email, thu hồi token khi khóa
func (s *UserService) SetBlockStatus(ctx context.Context, email string, isBlock bool, note string) (*models.User, error) {
	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	set := map[string]interface{}{
		"isBlock":   isBlock,
		"blockNote": note,
	}
	if isBlock {
		set["token"] = ""
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": updatedUser.ID.Hex(), "is_block": isBlock}).Info("SetBlockStatus: Cập nhật trạng thái khóa tài khoản")
	return &updatedUser, nil
}

// SetRole gán vai trò cho người dùng theo email
func (s *UserService) SetRole(ctx context.Context, email string, role string) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleEmployee && role != models.RoleCustomer {
		return nil, common.NewError(common.ErrCodeValidationInput, "Vai trò không hợp lệ: "+role, common.StatusBadRequest, nil)
	}

	user, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// AddToWishlist thêm sản phẩm vào wishlist ($addToSet nên không bị trùng)
func (s *UserService) AddToWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (*models.User, error) {
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"wishlist": productID},
	})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// RemoveFromWishlist gỡ sản phẩm khỏi wishlist
func (s *UserService) RemoveFromWishlist(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (*models.User, error) {
	updatedUser, err := s.BaseServiceMongoImpl.UpdateById(ctx, userID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"wishlist": productID},
	})
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}
