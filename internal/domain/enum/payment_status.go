package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the payment state of a transaction
type PaymentStatus int

const (
	PaymentStatusPending  PaymentStatus = 0
	PaymentStatusPaid     PaymentStatus = 1
	PaymentStatusRefunded PaymentStatus = 2
)

func (s PaymentStatus) String() string {
	names := [...]string{"pending", "paid", "refunded"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

// Label returns the Indonesian label printed on receipts
func (s PaymentStatus) Label() string {
	labels := [...]string{"Belum Lunas", "Lunas", "Dikembalikan"}
	if int(s) < 0 || int(s) >= len(labels) {
		return "Belum Lunas"
	}
	return labels[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "paid":
		*s = PaymentStatusPaid
	case "refunded":
		*s = PaymentStatusRefunded
	default:
		*s = PaymentStatusPending
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
