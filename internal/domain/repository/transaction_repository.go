package repository

import (
	"context"
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/pkg/pagination"
)

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id uint) (*entity.Transaction, error)
	GetByNumber(ctx context.Context, number string) (*entity.Transaction, error)
	// GetWithItems loads the transaction and its items in input order
	GetWithItems(ctx context.Context, id uint) (*entity.Transaction, error)
	List(ctx context.Context, params *TransactionFilterParams) ([]entity.Transaction, int64, error)
	UpdateStatus(ctx context.Context, id uint, status enum.TransactionStatus) error
	// CountByYear returns how many transactions exist for a year, used to
	// allocate the next TXN-<year>-<seq> number
	CountByYear(ctx context.Context, year int) (int64, error)
}

// TransactionFilterParams contains filtering parameters for transaction queries
type TransactionFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.TransactionStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
