package entity

import (
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a sellable counter product (token listrik, pulsa,
// paket data, voucher game). Price is in whole rupiah.
type Product struct {
	ID        uint                 `gorm:"primaryKey" json:"id"`
	Name      string               `gorm:"size:255;not null" json:"name"`
	Price     int64                `gorm:"not null;default:0" json:"price"`
	Category  enum.ProductCategory `gorm:"default:0;index" json:"category"`
	IsActive  bool                 `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	DeletedAt gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate derives the category from the product name when not set
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Category == enum.CategoryGeneral {
		p.Category = enum.ClassifyProduct(p.Name)
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Snapshot captures the product state for a transaction item
func (p *Product) Snapshot() *ProductSnapshot {
	return &ProductSnapshot{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}
