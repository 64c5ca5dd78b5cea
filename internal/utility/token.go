package utility

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Thời gian sống của token xác thực
const tokenLifetime = 72 * time.Hour

// CreateToken tạo JWT token (HMAC SHA256) chứa userId, hết hạn sau 72 giờ
func CreateToken(secret string, userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
