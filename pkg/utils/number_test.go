package utils

import "testing"

func TestTransactionNumber(t *testing.T) {
	tests := []struct {
		year int
		seq  int64
		want string
	}{
		{2025, 1, "TXN-2025-001"},
		{2025, 42, "TXN-2025-042"},
		{2025, 999, "TXN-2025-999"},
		{2026, 1000, "TXN-2026-1000"},
	}

	for _, tt := range tests {
		if got := TransactionNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("TransactionNumber(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}
