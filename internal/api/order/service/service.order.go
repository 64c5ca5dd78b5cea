// Package ordersvc - service đơn hàng (Order).
package ordersvc

import (
	"context"
	"fmt"

	basemodels "liberty_commerce/internal/api/base/models"
	basesvc "liberty_commerce/internal/api/base/service"
	cartmodels "liberty_commerce/internal/api/cart/models"
	cartsvc "liberty_commerce/internal/api/cart/service"
	orderdto "liberty_commerce/internal/api/order/dto"
	models "liberty_commerce/internal/api/order/models"
	transactionmodels "liberty_commerce/internal/api/transaction/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	cartService        *cartsvc.CartService
	transactionService *basesvc.BaseServiceMongoImpl[transactionmodels.Transaction]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	transactionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("failed to get transactions collection: %v", common.ErrNotFound)
	}
	cartService, err := cartsvc.NewCartService()
	if err != nil {
		return nil, fmt.Errorf("failed to create cart service: %v", err)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		cartService:          cartService,
		transactionService:   basesvc.NewBaseServiceMongo[transactionmodels.Transaction](transactionCollection),
	}, nil
}

// CreateFromCart tạo đơn hàng từ giỏ đã thanh toán của chính người dùng
func (s *OrderService) CreateFromCart(ctx context.Context, userID primitive.ObjectID, input *orderdto.OrderCreateInput) (*models.Order, error) {
	cartID, err := primitive.ObjectIDFromHex(input.CartID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Cart ID không đúng định dạng", common.StatusBadRequest, err)
	}

	cart, err := s.cartService.FindOneById(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.UserID != userID {
		return nil, common.NewError(common.ErrCodeAuthRole, "Giỏ hàng không thuộc về người dùng này", common.StatusForbidden, nil)
	}
	if cart.Status != cartmodels.CartStatusPaid {
		return nil, common.NewError(common.ErrCodeBusinessState, "Chỉ tạo được đơn hàng từ giỏ đã thanh toán", common.StatusBadRequest, nil)
	}
	if len(cart.Items) == 0 {
		return nil, common.NewError(common.ErrCodeBusinessState, "Giỏ hàng rỗng", common.StatusBadRequest, nil)
	}

	// Mỗi giỏ chỉ tạo được một đơn
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"cartId": cartID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeBusinessOperation, "Giỏ hàng này đã có đơn hàng", common.StatusConflict, nil)
	}

	order := models.Order{
		UserID:        userID,
		CartID:        cartID,
		Items:         cart.Items,
		TotalUSD:      cart.TotalUSD,
		TotalLRD:      cart.TotalLRD,
		Status:        models.OrderStatusPending,
		PaymentMethod: cart.PaymentMethod,
		Notes:         input.Notes,
	}
	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"order_id": created.ID.Hex(),
		"user_id":  userID.Hex(),
		"items":    len(created.Items),
	}).Info("CreateFromCart: Tạo đơn hàng thành công")
	return &created, nil
}

// SetStatus chuyển trạng thái đơn hàng có kiểm tra trạng thái kế tiếp hợp lệ.
// Khi đơn chuyển sang completed, mỗi dòng hàng sinh một giao dịch completed
// để dashboard ghi nhận doanh thu.
func (s *OrderService) SetStatus(ctx context.Context, orderID primitive.ObjectID, newStatus string) (*models.Order, error) {
	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái từ %s sang %s", order.Status, newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, orderID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	})
	if err != nil {
		return nil, err
	}

	if newStatus == models.OrderStatusCompleted {
		if err := s.recordTransactions(ctx, &updated); err != nil {
			// Đơn đã chuyển trạng thái; lỗi ghi giao dịch chỉ log, refresh kế tiếp
			// sẽ thiếu doanh thu của đơn này cho đến khi được xử lý thủ công
			logrus.WithFields(logrus.Fields{
				"order_id": updated.ID.Hex(),
				"error":    err.Error(),
			}).Error("SetStatus: Lỗi ghi giao dịch doanh thu cho đơn hàng hoàn tất")
		}
	}
	return &updated, nil
}

// recordTransactions sinh giao dịch completed cho từng dòng hàng của đơn
func (s *OrderService) recordTransactions(ctx context.Context, order *models.Order) error {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	now := utility.CurrentTimeInMilli()
	for _, item := range order.Items {
		category := ""
		var productDoc struct {
			Category string `bson:"category"`
		}
		if err := productCollection.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&productDoc); err == nil {
			category = productDoc.Category
		}

		transaction := transactionmodels.Transaction{
			OrderID:           order.ID,
			UserID:            order.UserID,
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			Category:          category,
			QuantityBought:    item.Quantity,
			TotalBoughtUSD:    item.PriceUSD * float64(item.Quantity),
			TotalBoughtLRD:    item.PriceLRD * float64(item.Quantity),
			PaymentMethod:     order.PaymentMethod,
			TransactionStatus: transactionmodels.TransactionStatusCompleted,
			TransactionDate:   now,
		}
		if _, err := s.transactionService.InsertOne(ctx, transaction); err != nil {
			return err
		}
	}
	return nil
}

// AddPaymentProof gắn ảnh chứng từ thanh toán vào đơn hàng
func (s *OrderService) AddPaymentProof(ctx context.Context, orderID primitive.ObjectID, imageURL string) (*models.Order, error) {
	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, orderID, &basesvc.UpdateData{
		Push: map[string]interface{}{"paymentProofs": imageURL},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// MyOrders trả về đơn hàng của một người dùng, mới nhất trước, kèm phân trang
func (s *OrderService) MyOrders(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}
