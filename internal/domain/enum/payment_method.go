package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a transaction was paid
type PaymentMethod int

const (
	PaymentCash     PaymentMethod = 0
	PaymentCard     PaymentMethod = 1
	PaymentQRIS     PaymentMethod = 2
	PaymentTransfer PaymentMethod = 3
)

func (m PaymentMethod) String() string {
	names := [...]string{"cash", "card", "qris", "transfer"}
	if int(m) < 0 || int(m) >= len(names) {
		return "cash"
	}
	return names[m]
}

// Label returns the Indonesian label printed on receipts
func (m PaymentMethod) Label() string {
	labels := [...]string{"Tunai", "Kartu", "QRIS", "Transfer"}
	if int(m) < 0 || int(m) >= len(labels) {
		return "Tunai"
	}
	return labels[m]
}

// RequiresCard reports whether the method must carry a payment card reference
func (m PaymentMethod) RequiresCard() bool {
	return m == PaymentCard
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "card":
		*m = PaymentCard
	case "qris":
		*m = PaymentQRIS
	case "transfer":
		*m = PaymentTransfer
	default:
		*m = PaymentCash
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
