package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
	"github.com/rzkir/pos-mini-konter/internal/domain/repository"
	"github.com/rzkir/pos-mini-konter/pkg/apperror"
	"github.com/rzkir/pos-mini-konter/pkg/printer"
	"github.com/rzkir/pos-mini-konter/pkg/receipt"
)

// ReceiptService turns stored transactions into receipt documents, both the
// HTML view served to the app and the ESC/POS stream sent to the thermal
// printer. Composition is delegated to pkg/receipt.
type ReceiptService struct {
	composer     *receipt.Composer
	printer      printer.Printer
	txRepo       repository.TransactionRepository
	store        receipt.StoreInfo
	printerType  string
	printerWidth int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	p printer.Printer,
	txRepo repository.TransactionRepository,
	store receipt.StoreInfo,
	printerType string,
	printerWidth int,
) *ReceiptService {
	if printerWidth <= 0 {
		printerWidth = 32
	}
	return &ReceiptService{
		composer:     receipt.NewComposer(store),
		printer:      p,
		txRepo:       txRepo,
		store:        store,
		printerType:  printerType,
		printerWidth: printerWidth,
	}
}

// RenderReceipt composes the HTML receipt for a stored transaction.
func (s *ReceiptService) RenderReceipt(ctx context.Context, id uint) (string, error) {
	tx, err := s.txRepo.GetWithItems(ctx, id)
	if err != nil {
		return "", err
	}
	if tx == nil {
		return "", apperror.NewNotFoundError("Transaction")
	}

	doc, err := s.composer.Compose(tx, tx.Items)
	if err != nil {
		return "", mapEngineError(err)
	}
	return doc, nil
}

// ScenarioInfo describes one preview scenario for the client picker.
type ScenarioInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ListScenarios returns the available receipt preview scenarios.
func (s *ReceiptService) ListScenarios() []ScenarioInfo {
	scenarios := receipt.Scenarios()
	out := make([]ScenarioInfo, len(scenarios))
	for i, sc := range scenarios {
		out[i] = ScenarioInfo{ID: string(sc), Label: sc.Label()}
	}
	return out
}

// RenderScenarioPreview composes the HTML receipt for a canned scenario.
func (s *ReceiptService) RenderScenarioPreview(scenario string) (string, error) {
	doc, err := receipt.RenderScenario(s.composer, receipt.Scenario(scenario))
	if err != nil {
		var verr *receipt.ValidationError
		var ferr *receipt.FormattingError
		if errors.As(err, &verr) || errors.As(err, &ferr) {
			return "", mapEngineError(err)
		}
		return "", apperror.NewBadRequestError(err.Error())
	}
	return doc, nil
}

// PrinterStatus reports the configured printer and its connection state.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends the phone-credit scenario to the printer as a test page.
// The HTML document is returned so the client can still show the receipt when
// no printer is attached.
func (s *ReceiptService) TestPrint() (string, error) {
	tx, items, err := receipt.BuildScenario(receipt.ScenarioPhoneCredit)
	if err != nil {
		return "", err
	}
	doc, err := s.composer.Compose(tx, items)
	if err != nil {
		return "", mapEngineError(err)
	}

	data := s.thermalReceipt(tx, items)
	if err := s.printer.Print(data); err != nil {
		return doc, fmt.Errorf("test print failed: %w", err)
	}
	return doc, nil
}

// PrintReceipt composes and prints the thermal receipt for a transaction.
// On a printer failure the composed HTML is still returned alongside the
// error so the caller can fall back to on-screen display.
func (s *ReceiptService) PrintReceipt(ctx context.Context, id uint) (string, error) {
	tx, err := s.txRepo.GetWithItems(ctx, id)
	if err != nil {
		return "", err
	}
	if tx == nil {
		return "", apperror.NewNotFoundError("Transaction")
	}

	doc, err := s.composer.Compose(tx, tx.Items)
	if err != nil {
		return "", mapEngineError(err)
	}

	data := s.thermalReceipt(tx, tx.Items)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (transaction %d): %v", id, err)
		return doc, fmt.Errorf("failed to print receipt: %w", err)
	}
	return doc, nil
}

// thermalReceipt converts a transaction into ESC/POS bytes. Unlike the HTML
// view, product names are truncated to the paper width.
func (s *ReceiptService) thermalReceipt(tx *entity.Transaction, items []entity.TransactionItem) []byte {
	job := printer.NewJob(s.printerWidth)

	// Header
	job.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.FontDouble).
		Line(s.store.Name).
		Size(printer.FontNormal).
		Bold(false)
	if s.store.Address != "" {
		job.Line(s.store.Address)
	}
	if s.store.Phone != "" {
		job.Line(s.store.Phone)
	}

	job.Align(printer.AlignLeft).Rule()

	job.Pair("No. Transaksi", tx.TransactionNumber)
	job.Pair("Tanggal", receipt.FormatDateTime(tx.CreatedAt))
	if tx.CreatedBy != "" {
		job.Pair("Kasir", tx.CreatedBy)
	}
	if tx.CustomerName != "" {
		job.Pair("Pelanggan", receipt.TruncateName(tx.CustomerName, job.Width()-11))
	}
	if tx.ReferenceNumber != "" {
		job.Pair(tx.ReferenceLabel(), tx.ReferenceNumber)
	}
	job.Pair("Pembayaran", tx.PaymentMethod.Label())

	job.Rule()

	// Items
	for _, item := range items {
		name := "Produk"
		if item.Product != nil {
			name = item.Product.Name
		}
		job.Line(receipt.TruncateName(name, job.Width()))
		job.Pair(
			fmt.Sprintf("  %d x %s", item.Quantity, receipt.FormatRupiah(item.Price)),
			receipt.FormatRupiah(item.Subtotal),
		)
		if item.Discount > 0 {
			job.Pair("  Diskon", "-"+receipt.FormatRupiah(item.Discount))
		}
		if item.Category() == enum.CategoryElectricityToken && tx.ReferenceNumber != "" {
			job.Linef("  No. Meter: %s", tx.ReferenceNumber)
		}
	}

	job.Rule()

	// Totals
	job.Pair("Subtotal", receipt.FormatRupiah(tx.Subtotal))
	if tx.Discount > 0 {
		job.Pair("Diskon", "-"+receipt.FormatRupiah(tx.Discount))
	}
	if tx.Tax > 0 {
		job.Pair("Pajak", receipt.FormatRupiah(tx.Tax))
	}
	job.Bold(true).
		Pair("TOTAL", receipt.FormatRupiah(tx.Total)).
		Bold(false)

	job.Rule()

	// Footer
	job.Align(printer.AlignCenter).
		Line(s.store.Footer).
		Align(printer.AlignLeft)

	job.Feed(3).Cut()

	return job.Bytes()
}

// mapEngineError translates receipt engine errors into API errors. Both
// taxonomies indicate the stored transaction cannot be rendered, which is an
// unprocessable state rather than a bad request.
func mapEngineError(err error) error {
	var verr *receipt.ValidationError
	if errors.As(err, &verr) {
		return apperror.NewUnprocessableError(verr.Field, verr.Reason)
	}
	var ferr *receipt.FormattingError
	if errors.As(err, &ferr) {
		return apperror.NewUnprocessableError(ferr.Field, ferr.Reason)
	}
	return err
}
