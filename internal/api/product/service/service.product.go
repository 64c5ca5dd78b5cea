// Package productsvc - service sản phẩm (Product).
package productsvc

import (
	"context"
	"fmt"

	basemodels "liberty_commerce/internal/api/base/models"
	basesvc "liberty_commerce/internal/api/base/service"
	productdto "liberty_commerce/internal/api/product/dto"
	models "liberty_commerce/internal/api/product/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// CreateProduct tạo sản phẩm mới, tự tính giá trị tồn kho
func (s *ProductService) CreateProduct(ctx context.Context, input *productdto.ProductCreateInput) (*models.Product, error) {
	product := models.Product{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		PriceUSD:        input.PriceUSD,
		PriceLRD:        input.PriceLRD,
		QuantityInStock: input.QuantityInStock,
		Images:          input.Images,
		IsActive:        true,
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.RecalcTotals()

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct cập nhật sản phẩm, tính lại giá trị tồn kho khi giá hoặc số lượng thay đổi
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, input *productdto.ProductUpdateInput) (*models.Product, error) {
	product, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	if input.Name != nil {
		product.Name = *input.Name
		set["name"] = product.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
		set["description"] = product.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
		set["category"] = product.Category
	}
	if input.PriceUSD != nil {
		product.PriceUSD = *input.PriceUSD
		set["priceUSD"] = product.PriceUSD
	}
	if input.PriceLRD != nil {
		product.PriceLRD = *input.PriceLRD
		set["priceLRD"] = product.PriceLRD
	}
	if input.QuantityInStock != nil {
		product.QuantityInStock = *input.QuantityInStock
		set["quantityInStock"] = product.QuantityInStock
	}
	if input.Images != nil {
		set["images"] = input.Images
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}
	if len(set) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có thông tin nào để cập nhật", common.StatusBadRequest, nil)
	}

	// Giá trị tồn kho luôn được tính lại từ giá và số lượng hiện tại
	product.RecalcTotals()
	set["totalValueUSD"] = product.TotalValueUSD
	set["totalValueLRD"] = product.TotalValueLRD

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Search tìm kiếm sản phẩm theo tên (text index) kèm phân trang
func (s *ProductService) Search(ctx context.Context, keyword string, page, limit int64) (*basemodels.PaginateResult[models.Product], error) {
	if keyword == "" {
		return nil, common.NewError(common.ErrCodeValidationInput, "Từ khóa tìm kiếm không được rỗng", common.StatusBadRequest, nil)
	}
	filter := bson.M{"$text": bson.M{"$search": keyword}}
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, nil)
}

// Categories trả về danh sách category đang có sản phẩm
func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	values, err := s.BaseServiceMongoImpl.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if str, ok := v.(string); ok && str != "" {
			categories = append(categories, str)
		}
	}
	return categories, nil
}

// LowStock trả về các sản phẩm có tồn kho không vượt quá ngưỡng
func (s *ProductService) LowStock(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"quantityInStock": bson.M{"$lte": models.LowStockThreshold}}, opts)
}

// AdjustStock tăng / giảm tồn kho (delta âm là xuất kho), tính lại giá trị tồn kho
func (s *ProductService) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int64) (*models.Product, error) {
	product, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	newQuantity := product.QuantityInStock + delta
	if newQuantity < 0 {
		return nil, common.ErrInsufficientStock
	}

	product.QuantityInStock = newQuantity
	product.RecalcTotals()

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"quantityInStock": product.QuantityInStock,
			"totalValueUSD":   product.TotalValueUSD,
			"totalValueLRD":   product.TotalValueLRD,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
