package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "liberty_commerce/internal/api/auth/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/logger"
	"liberty_commerce/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	Cache *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			// Cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
			Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// parseToken xác thực chữ ký JWT và trả về userId trong claims
func (am *AuthManager) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", common.ErrTokenInvalid
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", common.ErrTokenInvalid
	}
	return userID, nil
}

// findUserByID lấy user từ cache hoặc database
func (am *AuthManager) findUserByID(userID string) (models.User, error) {
	var user models.User

	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(models.User), nil
	}

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return user, common.ErrTokenInvalid
	}

	collection, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return user, common.ErrMongoConnection
	}

	if err := collection.FindOne(context.Background(), bson.M{"_id": objectID}).Decode(&user); err != nil {
		return user, common.ConvertMongoError(err)
	}

	// Lưu vào cache để sử dụng cho các lần sau
	am.Cache.Set(cacheKey, user)
	return user, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// requiredRoles là danh sách vai trò được phép truy cập route; rỗng nghĩa là chỉ cần đăng nhập.
// Admin luôn được phép truy cập mọi route đã xác thực.
func AuthMiddleware(requiredRoles ...string) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		tokenString := parts[1]

		// Xác thực chữ ký và lấy userId từ claims
		userID, err := authManager.parseToken(tokenString)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Lấy thông tin user
		user, err := authManager.findUserByID(userID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] User not found for token")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Token phải trùng với token mới nhất của user (bị thu hồi khi logout / login lại)
		if user.Token != tokenString {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("role", user.Role)
		c.Locals("user", user)

		// Không yêu cầu vai trò cụ thể thì chỉ cần xác thực
		if len(requiredRoles) == 0 {
			return c.Next()
		}

		// Admin được phép truy cập mọi route
		if user.Role == models.RoleAdmin {
			return c.Next()
		}

		for _, role := range requiredRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id":        user.ID.Hex(),
			"user_role":      user.Role,
			"required_roles": requiredRoles,
			"path":           c.Path(),
		}).Warn("❌ [AUTH] Insufficient role, denying access")
		HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuthRole,
			"Bạn không có quyền truy cập chức năng này",
			common.StatusForbidden,
			nil,
		))
		return nil
	}
}

// InvalidateUserCache xóa cache của user (gọi khi user bị block, đổi role hoặc logout)
func InvalidateUserCache(userID string) {
	GetAuthManager().Cache.Delete("auth_user:" + userID)
}
