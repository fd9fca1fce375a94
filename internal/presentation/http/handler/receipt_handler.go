package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rzkir/pos-mini-konter/internal/application/service"
	"github.com/rzkir/pos-mini-konter/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt rendering and printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetReceipt renders the HTML receipt for a transaction
// @Summary Get Receipt
// @Description Render the HTML receipt document for a stored transaction
// @Tags receipts
// @Produce html
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {string} string "HTML receipt"
// @Router /transactions/{id}/receipt [get]
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	doc, err := h.receiptService.RenderReceipt(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// ListScenarios returns the available receipt preview scenarios
// @Summary List Receipt Scenarios
// @Tags receipts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /receipts/scenarios [get]
func (h *ReceiptHandler) ListScenarios(c *gin.Context) {
	response.OK(c, "Scenarios retrieved", h.receiptService.ListScenarios())
}

// PreviewScenario renders the HTML receipt for a canned scenario
// @Summary Preview Receipt Scenario
// @Tags receipts
// @Produce html
// @Security BearerAuth
// @Param scenario path string true "Scenario ID"
// @Success 200 {string} string "HTML receipt"
// @Router /receipts/scenarios/{scenario} [get]
func (h *ReceiptHandler) PreviewScenario(c *gin.Context) {
	doc, err := h.receiptService.RenderScenarioPreview(c.Param("scenario"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// GetPrinterStatus returns the current printer connection status
// @Summary Get Printer Status
// @Tags printer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /printer/status [get]
func (h *ReceiptHandler) GetPrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved", h.receiptService.GetPrinterStatus())
}

// TestPrint sends a test receipt to the printer
// @Summary Test Print
// @Tags printer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /printer/test [post]
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	doc, err := h.receiptService.TestPrint()
	if err != nil {
		if doc != "" {
			// Printer is unreachable but the receipt composed fine
			response.OK(c, "Test receipt generated (printer may be disabled)", gin.H{
				"receipt": doc,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"receipt": doc,
	})
}

// PrintReceipt prints the thermal receipt for a transaction
// @Summary Print Receipt
// @Tags printer
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Router /transactions/{id}/receipt/print [post]
func (h *ReceiptHandler) PrintReceipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid transaction ID")
		return
	}

	doc, err := h.receiptService.PrintReceipt(c.Request.Context(), uint(id))
	if err != nil {
		if doc != "" {
			response.OK(c, "Receipt generated but printing failed", gin.H{
				"receipt": doc,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", gin.H{
		"receipt": doc,
	})
}
