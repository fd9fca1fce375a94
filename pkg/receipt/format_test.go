package receipt

import (
	"testing"
	"time"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "Rp 0"},
		{"hundreds", 500, "Rp 500"},
		{"thousands", 5000, "Rp 5.000"},
		{"tens of thousands", 75000, "Rp 75.000"},
		{"twenty thousand", 20000, "Rp 20.000"},
		{"fifty thousand", 50000, "Rp 50.000"},
		{"millions", 1250000, "Rp 1.250.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRupiah(tt.amount); got != tt.want {
				t.Errorf("FormatRupiah(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatDateTime(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	got := FormatDateTime(time.Date(2025, time.March, 14, 10, 30, 0, 0, wib))
	want := "14/03/2025 10:30"
	if got != want {
		t.Errorf("FormatDateTime() = %q, want %q", got, want)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Pulsa 50.000", 32, "Pulsa 50.000"},
		{"exact", "abcd", 4, "abcd"},
		{"truncated", "Voucher Game Mobile Legends 25.000", 20, "Voucher Game Mobi..."},
		{"tiny width", "abcdef", 2, "ab"},
		{"zero width", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateName(tt.in, tt.width); got != tt.want {
				t.Errorf("TruncateName(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatAmountRejectsNegative(t *testing.T) {
	_, err := formatAmount("subtotal", -100)
	if err == nil {
		t.Fatal("expected error for negative amount")
	}
	fmtErr, ok := err.(*FormattingError)
	if !ok {
		t.Fatalf("expected *FormattingError, got %T", err)
	}
	if fmtErr.Field != "subtotal" {
		t.Errorf("error field = %q, want %q", fmtErr.Field, "subtotal")
	}
}

func TestFormatTimestampRejectsZero(t *testing.T) {
	if _, err := formatTimestamp("created_at", time.Time{}); err == nil {
		t.Fatal("expected error for zero timestamp")
	}
}
