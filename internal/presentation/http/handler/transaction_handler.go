package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rzkir/pos-mini-konter/internal/application/service"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/internal/presentation/http/dto/request"
	"github.com/rzkir/pos-mini-konter/internal/presentation/http/dto/response"
	"github.com/rzkir/pos-mini-konter/pkg/pagination"
)

// TransactionHandler handles sale transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Create records a completed sale
// @Summary Create Transaction
// @Description Record a completed sale with its cart items
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key"
// @Param request body request.CreateTransactionRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req request.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.TransactionItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.TransactionItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Discount:  item.Discount,
		}
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), &service.CreateTransactionInput{
		CustomerName:    req.CustomerName,
		ReferenceNumber: req.ReferenceNumber,
		PaymentMethod:   enum.PaymentMethod(req.PaymentMethod),
		PaymentCardID:   req.PaymentCardID,
		Discount:        req.Discount,
		Tax:             req.Tax,
		CreatedBy:       GetUserName(c),
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transaction created", tx)
}

// Get returns a transaction with its items
// @Summary Get Transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved", tx)
}

// List returns a paginated transaction list
// @Summary List Transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by number or customer"
// @Param status query int false "Filter by status"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var req request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	input := &service.ListTransactionsInput{
		Pagination: &pagination.Params{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}
	if req.Status != nil {
		status := enum.TransactionStatus(*req.Status)
		input.Status = &status
	}
	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		// Include the whole end day
		endDate = endDate.Add(24*time.Hour - time.Nanosecond)
		input.EndDate = &endDate
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Transactions retrieved", result)
}

// Cancel marks a transaction as cancelled
// @Summary Cancel Transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Router /transactions/{id}/cancel [post]
func (h *TransactionHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	if err := h.transactionService.CancelTransaction(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction cancelled", nil)
}
