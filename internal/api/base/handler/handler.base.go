// Package basehdl - base CRUD handlers.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.
package basehdl

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "liberty_commerce/internal/api/base/service"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
)

// FilterOptions cấu hình cho việc validate filter từ query string
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"salt",
				"token",
				"secret",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
				"$regex",
			},
			MaxFields: 10,
		},
	}
}

// ParseRequestBody parse dữ liệu từ request body vào struct input.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body rỗng")
	}

	decoder := json.NewDecoder(strings.NewReader(string(body)))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}
	return nil
}

// ParseRequestBody parse dữ liệu từ request body vào struct input
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	return ParseRequestBody(c, input)
}

// ValidateInput validate input với validator toàn cục (struct tag validate)
func ValidateInput(input interface{}) error {
	if global.Validate == nil {
		return nil
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateInput validate input với validator toàn cục
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	return ValidateInput(input)
}

// TransformInputToModel chuyển DTO sang Model qua vòng marshal/unmarshal bson.
// DTO và Model phải dùng bson tag khớp nhau cho các field chung.
func TransformInputToModel[M any](input interface{}) (*M, error) {
	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, err
	}
	var model M
	if err := bson.Unmarshal(raw, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// ParsePagination đọc page/limit từ query string, áp dụng giá trị mặc định và giới hạn
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (page int64, limit int64) {
	page = 1
	limit = 10
	if s := c.Query("page"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n >= 1 {
			page = n
		}
	}
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
			limit = n
			if limit > 200 {
				limit = 200
			}
		}
	}
	return page, limit
}

// ParseFilterFromQuery đọc filter JSON từ query param "filter" và validate theo filterOptions.
// Trả về bson.M rỗng nếu không có filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseFilterFromQuery(c fiber.Ctx) (map[string]interface{}, error) {
	filterStr := c.Query("filter")
	if filterStr == "" {
		return map[string]interface{}{}, nil
	}

	var filter map[string]interface{}
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Filter không phải JSON hợp lệ", common.StatusBadRequest, err.Error())
	}

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// validateFilter kiểm tra filter không chứa field cấm và operator lạ
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter có quá nhiều field (tối đa %d)", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if field == denied {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không được phép filter theo trường %s", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Kiểm tra operator trong giá trị lồng nhau
		if nested, ok := value.(map[string]interface{}); ok {
			for op := range nested {
				if !strings.HasPrefix(op, "$") {
					continue
				}
				allowed := false
				for _, a := range h.filterOptions.AllowedOperators {
					if op == a {
						allowed = true
						break
					}
				}
				if !allowed {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator %s không được phép", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}
