// Package transactionsvc - service giao dịch bán hàng (Transaction).
package transactionsvc

import (
	"context"
	"fmt"

	basesvc "liberty_commerce/internal/api/base/service"
	productsvc "liberty_commerce/internal/api/product/service"
	transactiondto "liberty_commerce/internal/api/transaction/dto"
	models "liberty_commerce/internal/api/transaction/models"
	"liberty_commerce/internal/common"
	"liberty_commerce/internal/global"
	"liberty_commerce/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionService là cấu trúc chứa các phương thức liên quan đến giao dịch bán hàng
type TransactionService struct {
	*basesvc.BaseServiceMongoImpl[models.Transaction]
	productService *productsvc.ProductService
}

// NewTransactionService tạo mới TransactionService
func NewTransactionService() (*TransactionService, error) {
	transactionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Transactions)
	if !exist {
		return nil, fmt.Errorf("failed to get transactions collection: %v", common.ErrNotFound)
	}
	productService, err := productsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	return &TransactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Transaction](transactionCollection),
		productService:       productService,
	}, nil
}

// CreateTransaction tạo giao dịch thủ công (bán tại quầy). Giá và tên sản phẩm
// được denormalize từ sản phẩm tại thời điểm bán; tồn kho bị trừ tương ứng.
func (s *TransactionService) CreateTransaction(ctx context.Context, input *transactiondto.TransactionCreateInput) (*models.Transaction, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "Product ID không đúng định dạng", common.StatusBadRequest, err)
	}

	product, err := s.productService.FindOneById(ctx, productID)
	if err != nil {
		return nil, err
	}

	status := input.TransactionStatus
	if status == "" {
		status = models.TransactionStatusCompleted
	}

	// Chỉ trừ kho khi giao dịch đã hoàn tất
	if status == models.TransactionStatusCompleted {
		if _, err := s.productService.AdjustStock(ctx, productID, -input.Quantity); err != nil {
			return nil, err
		}
	}

	transactionDate := input.TransactionDate
	if transactionDate == 0 {
		transactionDate = utility.CurrentTimeInMilli()
	}

	transaction := models.Transaction{
		ProductID:         productID,
		ProductName:       product.Name,
		Category:          product.Category,
		QuantityBought:    input.Quantity,
		TotalBoughtUSD:    product.PriceUSD * float64(input.Quantity),
		TotalBoughtLRD:    product.PriceLRD * float64(input.Quantity),
		PaymentMethod:     input.PaymentMethod,
		TransactionStatus: status,
		TransactionDate:   transactionDate,
	}
	if input.UserID != "" {
		userID, err := primitive.ObjectIDFromHex(input.UserID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "User ID không đúng định dạng", common.StatusBadRequest, err)
		}
		transaction.UserID = userID
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, transaction)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"transaction_id": created.ID.Hex(),
		"product_id":     created.ProductID.Hex(),
		"quantity":       created.QuantityBought,
		"status":         created.TransactionStatus,
	}).Info("CreateTransaction: Tạo giao dịch thành công")
	return &created, nil
}

// UpdateStatus cập nhật trạng thái giao dịch. Khi chuyển sang completed thì trừ kho,
// khi rời khỏi completed (hủy / hoàn tiền) thì trả lại kho.
func (s *TransactionService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (*models.Transaction, error) {
	transaction, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction.TransactionStatus == newStatus {
		return &transaction, nil
	}

	wasCompleted := transaction.TransactionStatus == models.TransactionStatusCompleted
	willComplete := newStatus == models.TransactionStatusCompleted
	if !wasCompleted && willComplete {
		if _, err := s.productService.AdjustStock(ctx, transaction.ProductID, -transaction.QuantityBought); err != nil {
			return nil, err
		}
	}
	if wasCompleted && !willComplete {
		if _, err := s.productService.AdjustStock(ctx, transaction.ProductID, transaction.QuantityBought); err != nil {
			return nil, err
		}
	}

	updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"transactionStatus": newStatus},
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
