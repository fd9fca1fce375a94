package entity

import (
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"gorm.io/gorm"
)

// Transaction represents a completed sale at the counter.
// All monetary amounts are whole rupiah (the rupiah has no practical subunit,
// so there is no cents scaling); the invariant Total = Subtotal - Discount + Tax
// is established at creation time and checked again by the receipt engine.
type Transaction struct {
	ID                uint                   `gorm:"primaryKey" json:"id"`
	TransactionNumber string                 `gorm:"size:50;unique;not null" json:"transaction_number"`
	CustomerName      string                 `gorm:"size:255" json:"customer_name,omitempty"`
	ReferenceNumber   string                 `gorm:"column:customer_phone;size:50" json:"customer_phone,omitempty"`
	Subtotal          int64                  `gorm:"not null;default:0" json:"subtotal"`
	Discount          int64                  `gorm:"not null;default:0" json:"discount"`
	Tax               int64                  `gorm:"not null;default:0" json:"tax"`
	Total             int64                  `gorm:"not null;default:0" json:"total"`
	PaymentMethod     enum.PaymentMethod     `gorm:"default:0" json:"payment_method"`
	PaymentCardID     *uint                  `json:"payment_card_id,omitempty"`
	PaymentStatus     enum.PaymentStatus     `gorm:"default:0" json:"payment_status"`
	Status            enum.TransactionStatus `gorm:"default:0;index" json:"status"`
	CreatedBy         string                 `gorm:"size:255" json:"created_by"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	DeletedAt         gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Items []TransactionItem `gorm:"foreignKey:TransactionID" json:"items,omitempty"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// ReferenceNumber is stored in the legacy customer_phone column. For
// electricity token sales it holds the PLN meter number, otherwise the
// customer's phone number. ReferenceLabel resolves the display label from the
// categories in the cart.
func (t *Transaction) ReferenceLabel() string {
	for _, item := range t.Items {
		if item.Product != nil && enum.ClassifyProduct(item.Product.Name) == enum.CategoryElectricityToken {
			return "No. Meter"
		}
	}
	return "No. HP"
}

// ProductSnapshot is the denormalized product captured at sale time.
// Receipts always render from the snapshot, never from the live catalog, so
// historical receipts stay stable when catalog prices change.
type ProductSnapshot struct {
	ID    uint   `gorm:"column:id" json:"id"`
	Name  string `gorm:"column:name;size:255" json:"name"`
	Price int64  `gorm:"column:price" json:"price"`
}

// TransactionItem is one line of a transaction.
// Subtotal must equal Price*Quantity - Discount; the creation workflow
// computes it and the test fixtures assert it.
type TransactionItem struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	TransactionID uint             `gorm:"not null;index" json:"transaction_id"`
	ProductID     uint             `gorm:"not null;index" json:"product_id"`
	Quantity      int              `gorm:"not null" json:"quantity"`
	Price         int64            `gorm:"not null" json:"price"`
	Discount      int64            `gorm:"not null;default:0" json:"discount"`
	Subtotal      int64            `gorm:"not null" json:"subtotal"`
	Product       *ProductSnapshot `gorm:"embedded;embeddedPrefix:product_" json:"product,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TableName returns the table name for the TransactionItem model
func (TransactionItem) TableName() string {
	return "transaction_items"
}

// Category resolves the item's product category from its snapshot name
func (i *TransactionItem) Category() enum.ProductCategory {
	if i.Product == nil {
		return enum.CategoryGeneral
	}
	return enum.ClassifyProduct(i.Product.Name)
}
