// Package router đăng ký các route thuộc domain transaction.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "liberty_commerce/internal/api/auth/models"
	apirouter "liberty_commerce/internal/api/router"
	transactionhdl "liberty_commerce/internal/api/transaction/handler"
)

// Register đăng ký tất cả route transaction lên v1.
// Toàn bộ dành cho admin / employee: giao dịch là dữ liệu kế toán.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	transactionHandler, err := transactionhdl.NewTransactionHandler()
	if err != nil {
		return fmt.Errorf("failed to create transaction handler: %w", err)
	}
	staffRoles := []string{authmodels.RoleEmployee}
	r.RegisterCRUDRoutes(v1, "/transaction", transactionHandler, apirouter.ReadWriteConfig, staffRoles, staffRoles)
	return nil
}
