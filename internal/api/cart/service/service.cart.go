// Package cartsvc - service giỏ hàng (Cart).
package cartsvc

import (
	"context"
	"errors"
	"fmt"

	cartdto "liberty_commerce/internal/api/cart/dto"
	models "liberty_commerce/internal/api/cart/models"
	basesvc "liberty_commerce/internal/api/base/service"
	productsvc "liberty_commerce/internal/api/product/service"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService là cấu trúc chứa các phương thức liên quan đến giỏ hàng
type CartService struct {
	*basesvc.BaseServiceMongoImpl[models.Cart]
	productService *productsvc.ProductService
}

// NewCartService tạo mới CartService
func NewCartService() (*CartService, error) {
	cartCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Carts)
	if !exist {
		return nil, fmt.Errorf("failed to get carts collection: %v", common.ErrNotFound)
	}
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	return &CartService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Cart](cartCollection),
		productService:       productService,
	}, nil
}

// GetOrCreateActiveCart trả về giỏ pending của user, tạo mới nếu chưa có
func (s *CartService) GetOrCreateActiveCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	cart, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{
		"userId": userID,
		"status": models.CartStatusPending,
	}, nil)
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	newCart := models.Cart{
		UserID:        userID,
		Items:         []models.CartItem{},
		Status:        models.CartStatusPending,
		PaymentStatus: models.PaymentStatusUnpaid,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, newCart)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddItem thêm sản phẩm vào giỏ pending của user; nếu dòng hàng đã tồn tại thì cộng dồn số lượng.
// Giá được chốt từ sản phẩm tại thời điểm thêm vào giỏ.
func (s *CartService) AddItem(ctx context.Context, userID primitive.ObjectID, input *cartdto.CartAddItemInput) (*models.Cart, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err)
	}

	product, err := s.productService.FindOneById(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, common.NewError(common.ErrCodeBusinessState, "Sản phẩm không còn được bán", common.StatusBadRequest, nil)
	}
	if product.QuantityInStock < input.Quantity {
		return nil, common.ErrInsufficientStock
	}

	cart, err := s.GetOrCreateActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += input.Quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:   productID,
			ProductName: product.Name,
			Quantity:    input.Quantity,
			PriceUSD:    product.PriceUSD,
			PriceLRD:    product.PriceLRD,
		})
	}

	return s.saveItems(ctx, cart)
}

// UpdateItem đổi số lượng một dòng hàng; quantity = 0 là xóa dòng
func (s *CartService) UpdateItem(ctx context.Context, userID primitive.ObjectID, input *cartdto.CartUpdateItemInput) (*models.Cart, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err)
	}

	cart, err := s.GetOrCreateActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	newItems := make([]models.CartItem, 0, len(cart.Items))
	found := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			found = true
			if input.Quantity == 0 {
				continue
			}
			item.Quantity = input.Quantity
		}
		newItems = append(newItems, item)
	}
	if !found {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Sản phẩm không có trong giỏ hàng", common.StatusNotFound, nil)
	}
	cart.Items = newItems

	return s.saveItems(ctx, cart)
}

// RemoveItem gỡ một dòng hàng khỏi giỏ
func (s *CartService) RemoveItem(ctx context.Context, userID primitive.ObjectID, productID primitive.ObjectID) (*models.Cart, error) {
	return s.UpdateItem(ctx, userID, &cartdto.CartUpdateItemInput{
		ProductID: productID.Hex(),
		Quantity:  0,
	})
}

// saveItems tính lại tổng tiền và lưu danh sách dòng hàng
func (s *CartService) saveItems(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.RecalcTotals()
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, cart.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"items":    cart.Items,
			"totalUSD": cart.TotalUSD,
			"totalLRD": cart.TotalLRD,
		},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Checkout chuyển giỏ pending sang paid, ghi nhận phương thức thanh toán.
// Việc tạo order và giao dịch doanh thu do domain order đảm nhiệm.
func (s *CartService) Checkout(ctx context.Context, userID primitive.ObjectID, input *cartdto.CartCheckoutInput) (*models.Cart, error) {
	cart, err := s.GetOrCreateActiveCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, common.NewError(common.ErrCodeBusinessState, "Giỏ hàng rỗng, không thể checkout", common.StatusBadRequest, nil)
	}

	updated, err := s.transition(ctx, cart, models.CartStatusPaid, checkoutSet(input.PaymentMethod))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"cart_id":   updated.ID.Hex(),
		"user_id":   userID.Hex(),
		"total_usd": updated.TotalUSD,
	}).Info("Checkout: Giỏ hàng đã thanh toán")
	return updated, nil
}

// checkoutSet các trường thanh toán được ghi khi giỏ chuyển sang paid.
// Phương thức thanh toán và trạng thái thanh toán là hai trường riêng biệt.
func checkoutSet(paymentMethod string) map[string]interface{} {
	return map[string]interface{}{
		"paymentMethod": paymentMethod,
		"paymentStatus": models.PaymentStatusPaid,
	}
}

// SetStatus chuyển trạng thái giỏ hàng (quản trị), có kiểm tra trạng thái kế tiếp hợp lệ
func (s *CartService) SetStatus(ctx context.Context, cartID primitive.ObjectID, newStatus string) (*models.Cart, error) {
	cart, err := s.BaseServiceMongoImpl.FindOneById(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, &cart, newStatus, nil)
}

// transition kiểm tra và thực hiện chuyển trạng thái
func (s *CartService) transition(ctx context.Context, cart *models.Cart, newStatus string, extraSet map[string]interface{}) (*models.Cart, error) {
	if !models.CanTransition(cart.Status, newStatus) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái từ %s sang %s", cart.Status, newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	set := map[string]interface{}{"status": newStatus}
	for k, v := range extraSet {
		set[k] = v
	}
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, cart.ID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
