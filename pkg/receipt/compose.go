// Package receipt renders finalized transactions into printable receipt
// documents. The engine is a pure formatter: it never persists, mutates or
// looks anything up, every render is a deterministic function of its input,
// and errors always surface to the caller with no partial document.
package receipt

import (
	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
)

// StoreInfo is the store profile printed on every receipt header and footer.
type StoreInfo struct {
	Name    string
	Address string
	Phone   string
	Footer  string
}

// Composer renders transactions for one store. It holds no mutable state and
// is safe for concurrent use.
type Composer struct {
	store StoreInfo
}

// NewComposer creates a composer for the given store profile.
func NewComposer(store StoreInfo) *Composer {
	if store.Name == "" {
		store.Name = "Konter"
	}
	if store.Footer == "" {
		store.Footer = "Terima kasih atas kunjungan Anda"
	}
	return &Composer{store: store}
}

// Compose renders the transaction and its items, in input order, into one
// self-contained HTML document. Identical input produces byte-identical
// output. It fails with a ValidationError on an empty cart, a missing product
// snapshot, or a totals mismatch, and with a FormattingError on a field that
// cannot be rendered; in every error case no document is returned.
func (c *Composer) Compose(tx *entity.Transaction, items []entity.TransactionItem) (string, error) {
	if tx == nil {
		return "", &ValidationError{Field: "transaction", Reason: "required"}
	}
	if len(items) == 0 {
		return "", &ValidationError{Field: "items", Reason: "transaction has no items"}
	}
	createdAt, err := formatTimestamp("created_at", tx.CreatedAt)
	if err != nil {
		return "", err
	}

	d := newDocument()

	// Header
	d.line("store-name", c.store.Name)
	if c.store.Address != "" {
		d.line("center", c.store.Address)
	}
	if c.store.Phone != "" {
		d.line("center", c.store.Phone)
	}
	d.separator()
	d.keyValue("tx-number", "No. Transaksi", tx.TransactionNumber)
	d.keyValue("tx-date", "Tanggal", createdAt)
	if tx.CreatedBy != "" {
		d.keyValue("tx-cashier", "Kasir", tx.CreatedBy)
	}

	// Customer and payment block
	d.separator()
	if tx.CustomerName != "" {
		d.keyValue("customer-name", "Pelanggan", tx.CustomerName)
	}
	if tx.ReferenceNumber != "" {
		d.keyValue("customer-ref", referenceLabel(items), tx.ReferenceNumber)
	}
	d.keyValue("payment-method", "Pembayaran", tx.PaymentMethod.Label())
	d.keyValue("payment-status", "Status", tx.PaymentStatus.Label())

	// Item rows, strictly in input order
	d.separator()
	for i, item := range items {
		if err := composeLine(d, i, item, tx.ReferenceNumber); err != nil {
			return "", err
		}
	}

	// Totals
	d.separator()
	if err := composeTotals(d, tx); err != nil {
		return "", err
	}

	// Footer
	d.separator()
	d.line("footer", c.store.Footer)

	return d.finish(), nil
}

// referenceLabel resolves the display label for the overloaded reference
// column: an electricity token anywhere in the cart means it holds a PLN
// meter number, otherwise a phone number.
func referenceLabel(items []entity.TransactionItem) string {
	for _, item := range items {
		if item.Category() == enum.CategoryElectricityToken {
			return "No. Meter"
		}
	}
	return "No. HP"
}
