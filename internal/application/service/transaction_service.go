package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/internal/domain/repository"
	"github.com/rzkir/pos-mini-konter/pkg/apperror"
	"github.com/rzkir/pos-mini-konter/pkg/pagination"
	"github.com/rzkir/pos-mini-konter/pkg/utils"
)

// TransactionService handles the sale-completion workflow. It assembles
// finalized Transaction records (with product snapshots captured at sale
// time); rendering them is the receipt engine's job.
type TransactionService struct {
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) *TransactionService {
	return &TransactionService{
		txRepo:      txRepo,
		productRepo: productRepo,
	}
}

// TransactionItemInput represents one cart line in a sale
type TransactionItemInput struct {
	ProductID uint
	Quantity  int
	Discount  int64
}

// CreateTransactionInput represents a completed sale submission
type CreateTransactionInput struct {
	CustomerName    string
	ReferenceNumber string // meter number for electricity tokens, phone number otherwise
	PaymentMethod   enum.PaymentMethod
	PaymentCardID   *uint
	Discount        int64
	Tax             int64
	CreatedBy       string
	Items           []TransactionItemInput
}

// CreateTransaction records a completed sale with its items.
// Amounts are whole rupiah; the totals invariant total = subtotal - discount
// + tax is established here and verified again by the receipt engine.
func (s *TransactionService) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Transaction must have at least one item")
	}
	if input.Discount < 0 || input.Tax < 0 {
		return nil, apperror.NewBadRequestError("Discount and tax must not be negative")
	}
	if input.PaymentMethod.RequiresCard() && input.PaymentCardID == nil {
		return nil, apperror.NewBadRequestError("Card payments require a payment card")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uint, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal int64
	items := make([]entity.TransactionItem, 0, len(input.Items))

	for i, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %d", item.ProductID))
		}
		if item.Quantity < 1 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: quantity must be at least 1", i+1))
		}
		if item.Discount < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: discount must not be negative", i+1))
		}

		lineTotal := product.Price*int64(item.Quantity) - item.Discount
		if lineTotal < 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d: discount exceeds line total", i+1))
		}
		subtotal += lineTotal

		items = append(items, entity.TransactionItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Discount:  item.Discount,
			Subtotal:  lineTotal,
			Product:   product.Snapshot(),
		})
	}

	if input.Discount > subtotal {
		return nil, apperror.NewBadRequestError("Transaction discount exceeds subtotal")
	}
	total := subtotal - input.Discount + input.Tax

	number, err := s.nextTransactionNumber(ctx)
	if err != nil {
		return nil, err
	}

	tx := &entity.Transaction{
		TransactionNumber: number,
		CustomerName:      input.CustomerName,
		ReferenceNumber:   input.ReferenceNumber,
		Subtotal:          subtotal,
		Discount:          input.Discount,
		Tax:               input.Tax,
		Total:             total,
		PaymentMethod:     input.PaymentMethod,
		PaymentCardID:     input.PaymentCardID,
		PaymentStatus:     enum.PaymentStatusPaid,
		Status:            enum.TransactionStatusCompleted,
		CreatedBy:         input.CreatedBy,
		Items:             items,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// GetTransaction returns a transaction with its items
func (s *TransactionService) GetTransaction(ctx context.Context, id uint) (*entity.Transaction, error) {
	tx, err := s.txRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactionsInput holds list filters
type ListTransactionsInput struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.TransactionStatus
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListTransactions returns a paginated transaction list
func (s *TransactionService) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*pagination.Result[entity.Transaction], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultParams()
	}
	input.Pagination.Validate()

	txs, total, err := s.txRepo.List(ctx, &repository.TransactionFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(txs, pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}

// CancelTransaction marks a transaction as cancelled. The record itself is
// kept; receipts for cancelled transactions still render from the stored data.
func (s *TransactionService) CancelTransaction(ctx context.Context, id uint) error {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return apperror.NewNotFoundError("Transaction")
	}
	if tx.Status == enum.TransactionStatusCancelled {
		return apperror.NewConflictError("Transaction is already cancelled")
	}
	return s.txRepo.UpdateStatus(ctx, id, enum.TransactionStatusCancelled)
}

// nextTransactionNumber allocates the next TXN-<year>-<seq> display number
func (s *TransactionService) nextTransactionNumber(ctx context.Context) (string, error) {
	year := time.Now().Year()
	count, err := s.txRepo.CountByYear(ctx, year)
	if err != nil {
		return "", err
	}
	return utils.TransactionNumber(year, count+1), nil
}
