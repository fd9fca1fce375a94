package enum

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// ProductCategory represents the kind of product sold at the counter
type ProductCategory int

const (
	CategoryGeneral          ProductCategory = 0
	CategoryElectricityToken ProductCategory = 1
	CategoryPhoneCredit      ProductCategory = 2
	CategoryDataPackage      ProductCategory = 3
	CategoryGameVoucher      ProductCategory = 4
)

func (c ProductCategory) String() string {
	names := [...]string{"General", "ElectricityToken", "PhoneCredit", "DataPackage", "GameVoucher"}
	if int(c) < 0 || int(c) >= len(names) {
		return "General"
	}
	return names[c]
}

// Label returns the customer-facing Indonesian label printed on receipts
func (c ProductCategory) Label() string {
	labels := [...]string{"Lainnya", "Token Listrik", "Pulsa", "Paket Data", "Voucher Game"}
	if int(c) < 0 || int(c) >= len(labels) {
		return "Lainnya"
	}
	return labels[c]
}

func (c ProductCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ProductCategory(i)
		return nil
	}
	switch str {
	case "ElectricityToken":
		*c = CategoryElectricityToken
	case "PhoneCredit":
		*c = CategoryPhoneCredit
	case "DataPackage":
		*c = CategoryDataPackage
	case "GameVoucher":
		*c = CategoryGameVoucher
	default:
		*c = CategoryGeneral
	}
	return nil
}

func (c ProductCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ProductCategory) Scan(value interface{}) error {
	if value == nil {
		*c = CategoryGeneral
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ProductCategory(v)
	case int:
		*c = ProductCategory(v)
	}
	return nil
}

// ClassifyProduct maps a product name to its category using keyword matching.
// The catalog stores free-text names ("Token Listrik 20.000", "Pulsa 50.000"),
// so this is the single place the implicit naming convention is interpreted.
// Matching is case-insensitive and checked in priority order; a name that
// matches nothing falls back to CategoryGeneral.
func ClassifyProduct(name string) ProductCategory {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "token") || strings.Contains(n, "listrik"):
		return CategoryElectricityToken
	case strings.Contains(n, "voucher") || strings.Contains(n, "game"):
		return CategoryGameVoucher
	case strings.Contains(n, "paket") || strings.Contains(n, "kuota") || strings.Contains(n, "data"):
		return CategoryDataPackage
	case strings.Contains(n, "pulsa"):
		return CategoryPhoneCredit
	default:
		return CategoryGeneral
	}
}
