package utility

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Tham số KDF cho mật khẩu người dùng.
// Salt 16 byte ngẫu nhiên, PBKDF2-SHA512 với 10000 vòng lặp, khóa 64 byte,
// lưu dưới dạng hex để tương thích với dữ liệu người dùng hiện có.
const (
	passwordSaltBytes = 16
	passwordIterCount = 10000
	passwordKeyLength = 64
)

// GenerateSalt tạo salt ngẫu nhiên dạng hex
func GenerateSalt() (string, error) {
	salt := make([]byte, passwordSaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword băm mật khẩu với salt cho trước bằng PBKDF2-SHA512
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), passwordIterCount, passwordKeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// VerifyPassword kiểm tra mật khẩu với hash đã lưu (so sánh constant-time)
func VerifyPassword(password, salt, hash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
