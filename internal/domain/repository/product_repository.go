package repository

import (
	"context"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/pkg/pagination"
)

// ProductRepository defines the interface for product catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Category   *enum.ProductCategory
	ActiveOnly bool
}
