package receipt

import (
	"fmt"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
)

// composeTotals renders the totals block. The stored total is never trusted:
// it is recomputed from subtotal, discount and tax with integer arithmetic and
// any mismatch is a data-integrity error, not something to paper over on a
// financial document. Discount and tax lines are suppressed when zero;
// subtotal and total always render.
func composeTotals(d *document, tx *entity.Transaction) error {
	if computed := tx.Subtotal - tx.Discount + tx.Tax; computed != tx.Total {
		return &ValidationError{
			Field: "total",
			Reason: fmt.Sprintf("stored total %d does not match subtotal %d - discount %d + tax %d = %d",
				tx.Total, tx.Subtotal, tx.Discount, tx.Tax, computed),
		}
	}

	subtotal, err := formatAmount("subtotal", tx.Subtotal)
	if err != nil {
		return err
	}
	total, err := formatAmount("total", tx.Total)
	if err != nil {
		return err
	}

	d.open("totals")
	d.keyValue("totals-subtotal", "Subtotal", subtotal)

	if tx.Discount > 0 {
		discount, err := formatAmount("discount", tx.Discount)
		if err != nil {
			return err
		}
		d.keyValue("totals-discount", "Diskon", "-"+discount)
	}
	if tx.Tax > 0 {
		tax, err := formatAmount("tax", tx.Tax)
		if err != nil {
			return err
		}
		d.keyValue("totals-tax", "Pajak", tax)
	}

	d.keyValue("totals-total total", "TOTAL", total)
	d.close()
	return nil
}
