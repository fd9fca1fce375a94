package request

// TransactionItemRequest represents one cart line in a sale submission
type TransactionItemRequest struct {
	ProductID uint  `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
	Discount  int64 `json:"discount" binding:"min=0"`
}

// CreateTransactionRequest represents a completed sale submission.
// customer_phone carries the PLN meter number when the cart contains an
// electricity token, otherwise the customer's phone number.
type CreateTransactionRequest struct {
	CustomerName    string                   `json:"customer_name" binding:"omitempty,max=255"`
	ReferenceNumber string                   `json:"customer_phone" binding:"omitempty,max=50"`
	PaymentMethod   int                      `json:"payment_method" binding:"min=0,max=3"`
	PaymentCardID   *uint                    `json:"payment_card_id"`
	Discount        int64                    `json:"discount" binding:"min=0"`
	Tax             int64                    `json:"tax" binding:"min=0"`
	Items           []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// TransactionFilterRequest represents transaction list filters
type TransactionFilterRequest struct {
	Search    string `form:"search"`
	Status    *int   `form:"status"`
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
