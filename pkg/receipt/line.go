package receipt

import (
	"fmt"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
)

// composeLine renders one item row. Every category renders the common fields
// (snapshot name, quantity including x1, unit price, line subtotal, and the
// line discount when non-zero); category variants only add to that.
// refNumber is the transaction's reference number, surfaced on electricity
// token rows as the meter number.
func composeLine(d *document, idx int, item entity.TransactionItem, refNumber string) error {
	field := fmt.Sprintf("items[%d]", idx)

	if item.Product == nil || item.Product.Name == "" {
		return &ValidationError{Field: field + ".product", Reason: "missing product snapshot"}
	}
	if item.Quantity < 1 {
		return &ValidationError{Field: field + ".quantity", Reason: "must be at least 1"}
	}

	unitPrice, err := formatAmount(field+".price", item.Price)
	if err != nil {
		return err
	}
	lineSubtotal, err := formatAmount(field+".subtotal", item.Subtotal)
	if err != nil {
		return err
	}

	d.open("item")
	d.line("item-name", item.Product.Name)
	d.keyValue("item-qty", fmt.Sprintf("%d x %s", item.Quantity, unitPrice), lineSubtotal)

	if item.Discount > 0 {
		lineDiscount, err := formatAmount(field+".discount", item.Discount)
		if err != nil {
			return err
		}
		d.keyValue("item-discount", "Diskon", "-"+lineDiscount)
	}

	switch category := item.Category(); category {
	case enum.CategoryElectricityToken:
		d.line("item-note", "Token Listrik")
		if refNumber != "" {
			d.line("item-note", "No. Meter: "+refNumber)
		}
	case enum.CategoryPhoneCredit, enum.CategoryDataPackage, enum.CategoryGameVoucher:
		d.line("item-note", category.Label())
	}

	d.close()
	return nil
}
