package service

import (
	"context"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/internal/domain/repository"
	"github.com/rzkir/pos-mini-konter/pkg/apperror"
	"github.com/rzkir/pos-mini-konter/pkg/pagination"
)

// ProductService handles catalog management
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name  string
	Price int64
}

// CreateProduct adds a product to the catalog. The category is derived from
// the name; konter products are recognizable by keyword (pulsa, token, paket).
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	ID       uint
	Name     *string
	Price    *int64
	IsActive *bool
}

// UpdateProduct updates catalog fields. Existing transaction items keep their
// snapshots, so historical receipts are unaffected.
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && *input.Name != "" {
		product.Name = *input.Name
		product.Category = enum.ClassifyProduct(product.Name)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price must not be negative")
		}
		product.Price = *input.Price
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProductsInput holds list filters
type ListProductsInput struct {
	Pagination *pagination.Params
	Search     string
	Category   *enum.ProductCategory
	ActiveOnly bool
}

// ListProducts returns a paginated product list
func (s *ProductService) ListProducts(ctx context.Context, input *ListProductsInput) (*pagination.Result[entity.Product], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultParams()
	}
	input.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, &repository.ProductFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Category:   input.Category,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, err
	}

	return pagination.NewResult(products, pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)), nil
}
