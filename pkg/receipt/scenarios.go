package receipt

import (
	"fmt"
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
)

// Scenario identifies one of the canned test carts covering every supported
// product category plus a mixed cart with a transaction-level discount.
type Scenario string

const (
	ScenarioElectricityToken Scenario = "token-listrik"
	ScenarioPhoneCredit      Scenario = "pulsa"
	ScenarioDataPackage      Scenario = "paket-data"
	ScenarioGameVoucher      Scenario = "voucher-game"
	ScenarioMixed            Scenario = "mixed"
)

// Scenarios lists all supported scenarios in a stable order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioElectricityToken,
		ScenarioPhoneCredit,
		ScenarioDataPackage,
		ScenarioGameVoucher,
		ScenarioMixed,
	}
}

// Label returns the display name for the scenario.
func (s Scenario) Label() string {
	switch s {
	case ScenarioElectricityToken:
		return "Token Listrik"
	case ScenarioPhoneCredit:
		return "Pulsa"
	case ScenarioDataPackage:
		return "Paket Data"
	case ScenarioGameVoucher:
		return "Voucher Game"
	case ScenarioMixed:
		return "Campuran (Mixed)"
	default:
		return string(s)
	}
}

// Fixture timestamps are fixed so scenario renders are reproducible
// byte-for-byte across runs.
var scenarioTime = time.Date(2025, time.March, 14, 10, 30, 0, 0, time.FixedZone("WIB", 7*60*60))

// BuildScenario constructs the canned transaction and items for a scenario.
// Quantities, prices and totals mirror real counter sales; every fixture
// satisfies the totals and line-subtotal invariants.
func BuildScenario(s Scenario) (*entity.Transaction, []entity.TransactionItem, error) {
	base := entity.Transaction{
		PaymentMethod: enum.PaymentCash,
		PaymentStatus: enum.PaymentStatusPaid,
		Status:        enum.TransactionStatusCompleted,
		CreatedBy:     "Kasir Konter",
		CreatedAt:     scenarioTime,
		UpdatedAt:     scenarioTime,
	}

	switch s {
	case ScenarioElectricityToken:
		tx := base
		tx.ID = 1
		tx.TransactionNumber = "TXN-2025-001"
		tx.ReferenceNumber = "1234567890123" // PLN meter number
		tx.Subtotal, tx.Total = 20000, 20000
		items := []entity.TransactionItem{
			scenarioItem(1, tx.ID, 1, "Token Listrik 20.000", 20000, 1, 0),
		}
		return &tx, items, nil

	case ScenarioPhoneCredit:
		tx := base
		tx.ID = 2
		tx.TransactionNumber = "TXN-2025-002"
		tx.CustomerName = "Pelanggan Pulsa"
		tx.ReferenceNumber = "081234567890"
		tx.Subtotal, tx.Total = 50000, 50000
		items := []entity.TransactionItem{
			scenarioItem(1, tx.ID, 2, "Pulsa 50.000", 50000, 1, 0),
		}
		return &tx, items, nil

	case ScenarioDataPackage:
		tx := base
		tx.ID = 3
		tx.TransactionNumber = "TXN-2025-003"
		tx.CustomerName = "Pelanggan Data"
		tx.ReferenceNumber = "081234567890"
		tx.Subtotal, tx.Total = 30000, 30000
		items := []entity.TransactionItem{
			scenarioItem(1, tx.ID, 3, "Paket Data 10GB", 30000, 1, 0),
		}
		return &tx, items, nil

	case ScenarioGameVoucher:
		tx := base
		tx.ID = 4
		tx.TransactionNumber = "TXN-2025-004"
		tx.CustomerName = "Gamer"
		tx.ReferenceNumber = "081234567890"
		tx.Subtotal, tx.Total = 50000, 50000
		items := []entity.TransactionItem{
			scenarioItem(1, tx.ID, 4, "Voucher Game Mobile Legends 25.000", 25000, 2, 0),
		}
		return &tx, items, nil

	case ScenarioMixed:
		tx := base
		tx.ID = 5
		tx.TransactionNumber = "TXN-2025-005"
		tx.CustomerName = "Pelanggan Setia"
		// The token in the cart makes the reference column a PLN meter number
		tx.ReferenceNumber = "1234567890123"
		tx.Subtotal, tx.Discount, tx.Total = 80000, 5000, 75000
		items := []entity.TransactionItem{
			scenarioItem(1, tx.ID, 1, "Token Listrik 20.000", 20000, 1, 0),
			scenarioItem(2, tx.ID, 2, "Pulsa 50.000", 50000, 1, 0),
			scenarioItem(3, tx.ID, 5, "Voucher Game Free Fire 10.000", 10000, 1, 0),
		}
		return &tx, items, nil

	default:
		return nil, nil, fmt.Errorf("receipt: unknown scenario %q", s)
	}
}

// RenderScenario builds a scenario and round-trips it through the composer.
func RenderScenario(c *Composer, s Scenario) (string, error) {
	tx, items, err := BuildScenario(s)
	if err != nil {
		return "", err
	}
	return c.Compose(tx, items)
}

func scenarioItem(id, txID, productID uint, name string, price int64, quantity int, discount int64) entity.TransactionItem {
	return entity.TransactionItem{
		ID:            id,
		TransactionID: txID,
		ProductID:     productID,
		Quantity:      quantity,
		Price:         price,
		Discount:      discount,
		Subtotal:      price*int64(quantity) - discount,
		Product: &entity.ProductSnapshot{
			ID:    productID,
			Name:  name,
			Price: price,
		},
		CreatedAt: scenarioTime,
		UpdatedAt: scenarioTime,
	}
}
