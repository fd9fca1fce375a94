package receipt

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// rupiah formats numbers with Indonesian grouping ("75.000") regardless of
// the runtime locale. A single shared printer is safe for concurrent use.
var rupiah = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-rupiah amount with the Rp prefix and
// Indonesian thousands separators: 75000 -> "Rp 75.000", 0 -> "Rp 0".
func FormatRupiah(amount int64) string {
	return rupiah.Sprintf("Rp %d", amount)
}

// FormatDateTime renders a timestamp as the dd/mm/yyyy hh:mm form used on
// receipt headers. No timezone conversion is applied beyond what the value
// already carries.
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// TruncateName shortens a product name to at most width runes, appending an
// ellipsis when it was cut. Deterministic for identical input; rune-aware so
// multi-byte names are never split mid-character.
func TruncateName(name string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// formatAmount wraps FormatRupiah with the field context required by the
// error contract. Negative amounts have no meaning on a receipt and are
// rejected rather than rendered.
func formatAmount(field string, amount int64) (string, error) {
	if amount < 0 {
		return "", &FormattingError{Field: field, Reason: "negative amount"}
	}
	return FormatRupiah(amount), nil
}

// formatTimestamp rejects the zero time, which would otherwise render as a
// bogus 01/01/0001 header on a financial document.
func formatTimestamp(field string, t time.Time) (string, error) {
	if t.IsZero() {
		return "", &FormattingError{Field: field, Reason: "zero timestamp"}
	}
	return FormatDateTime(t), nil
}
