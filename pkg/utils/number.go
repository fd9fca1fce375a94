package utils

import "fmt"

// TransactionNumber formats the human-readable transaction code, e.g.
// TransactionNumber(2025, 7) -> "TXN-2025-007". Sequences restart each year;
// the counter keeps well under a thousand sales per year so three digits is
// the display minimum, not a cap (1000 renders as TXN-2025-1000).
func TransactionNumber(year int, seq int64) string {
	return fmt.Sprintf("TXN-%d-%03d", year, seq)
}
