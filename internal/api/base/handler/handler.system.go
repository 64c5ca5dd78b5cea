package basehdl

import (
	"context"
	"time"

	"liberty_commerce/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SystemHandler xử lý các request hệ thống (health check)
type SystemHandler struct{}

// NewSystemHandler tạo instance mới của SystemHandler
func NewSystemHandler() (*SystemHandler, error) {
	return &SystemHandler{}, nil
}

// HandleHealth kiểm tra tình trạng hệ thống và kết nối MongoDB
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	dbStatus := "ok"
	if global.MongoDB_Session != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := global.MongoDB_Session.Ping(ctx, readpref.Primary()); err != nil {
			dbStatus = "unavailable"
		}
	} else {
		dbStatus = "uninitialized"
	}

	return HandleSuccess(c, fiber.Map{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
