package enum

import "testing"

func TestClassifyProduct(t *testing.T) {
	tests := []struct {
		name string
		want ProductCategory
	}{
		{"Token Listrik 20.000", CategoryElectricityToken},
		{"TOKEN LISTRIK 50.000", CategoryElectricityToken},
		{"Pulsa 50.000", CategoryPhoneCredit},
		{"Paket Data 10GB", CategoryDataPackage},
		{"Kuota 5GB Malam", CategoryDataPackage},
		{"Voucher Game Mobile Legends 25.000", CategoryGameVoucher},
		{"Voucher Game Free Fire 10.000", CategoryGameVoucher},
		{"Kartu Perdana", CategoryGeneral},
		{"", CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyProduct(tt.name); got != tt.want {
				t.Errorf("ClassifyProduct(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestProductCategoryLabels(t *testing.T) {
	if got := CategoryElectricityToken.Label(); got != "Token Listrik" {
		t.Errorf("Label() = %q, want %q", got, "Token Listrik")
	}
	if got := ProductCategory(99).Label(); got != "Lainnya" {
		t.Errorf("out-of-range Label() = %q, want %q", got, "Lainnya")
	}
	if got := ProductCategory(99).String(); got != "General" {
		t.Errorf("out-of-range String() = %q, want %q", got, "General")
	}
}
