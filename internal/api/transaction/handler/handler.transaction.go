package transactionhdl

import (
	"fmt"

	basehdl "liberty_commerce/internal/api/base/handler"
	transactiondto "liberty_commerce/internal/api/transaction/dto"
	models "liberty_commerce/internal/api/transaction/models"
	transactionsvc "liberty_commerce/internal/api/transaction/service"
	"liberty_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionHandler xử lý các request liên quan đến giao dịch bán hàng
type TransactionHandler struct {
	*basehdl.BaseHandler[models.Transaction, transactiondto.TransactionCreateInput, transactiondto.TransactionUpdateInput]
	transactionService *transactionsvc.TransactionService
}

// NewTransactionHandler tạo instance mới của TransactionHandler
func NewTransactionHandler() (*TransactionHandler, error) {
	transactionService, err := transactionsvc.NewTransactionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Transaction, transactiondto.TransactionCreateInput, transactiondto.TransactionUpdateInput](transactionService)
	return &TransactionHandler{
		BaseHandler:        baseHandler,
		transactionService: transactionService,
	}, nil
}

// InsertOne ghi đè base handler: denormalize sản phẩm và trừ kho khi tạo giao dịch
func (h *TransactionHandler) InsertOne(c fiber.Ctx) error {
	var input transactiondto.TransactionCreateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	transaction, err := h.transactionService.CreateTransaction(c.Context(), &input)
	h.HandleResponse(c, transaction, err)
	return nil
}

// UpdateById ghi đè base handler: chỉ cho phép đổi trạng thái, kèm xử lý tồn kho
func (h *TransactionHandler) UpdateById(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var input transactiondto.TransactionUpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	transaction, err := h.transactionService.UpdateStatus(c.Context(), id, input.TransactionStatus)
	h.HandleResponse(c, transaction, err)
	return nil
}
