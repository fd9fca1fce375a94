package receipt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rzkir/pos-mini-konter/internal/domain/entity"
	"github.com/rzkir/pos-mini-konter/internal/domain/enum"
)

var testStore = StoreInfo{
	Name:    "Konter Jaya",
	Address: "Jl. Merdeka No. 1",
	Phone:   "0812-0000-0000",
}

func testTransaction() (*entity.Transaction, []entity.TransactionItem) {
	created := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.FixedZone("WIB", 7*60*60))
	tx := &entity.Transaction{
		ID:                42,
		TransactionNumber: "TXN-2025-042",
		CustomerName:      "Budi",
		ReferenceNumber:   "081298765432",
		Subtotal:          50000,
		Total:             50000,
		PaymentMethod:     enum.PaymentCash,
		PaymentStatus:     enum.PaymentStatusPaid,
		Status:            enum.TransactionStatusCompleted,
		CreatedBy:         "Kasir Konter",
		CreatedAt:         created,
	}
	items := []entity.TransactionItem{
		{
			ID: 1, TransactionID: 42, ProductID: 2,
			Quantity: 1, Price: 50000, Subtotal: 50000,
			Product: &entity.ProductSnapshot{ID: 2, Name: "Pulsa 50.000", Price: 50000},
		},
	}
	return tx, items
}

func TestComposeDeterministic(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()

	first, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	second, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if first != second {
		t.Error("two renders of identical input differ")
	}
}

func TestComposeRejectsEmptyCart(t *testing.T) {
	c := NewComposer(testStore)
	tx, _ := testTransaction()

	doc, err := c.Compose(tx, nil)
	if doc != "" {
		t.Error("expected no document on error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "items" {
		t.Errorf("error field = %q, want %q", vErr.Field, "items")
	}
}

func TestComposeRejectsMissingSnapshot(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()
	items[0].Product = nil

	doc, err := c.Compose(tx, items)
	if doc != "" {
		t.Error("expected no document on error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "items[0].product" {
		t.Errorf("error field = %q, want %q", vErr.Field, "items[0].product")
	}
}

func TestComposeRejectsTotalsMismatch(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()
	tx.Total = 49000 // subtotal - discount + tax = 50000

	doc, err := c.Compose(tx, items)
	if doc != "" {
		t.Error("expected no document on error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if vErr.Field != "total" {
		t.Errorf("error field = %q, want %q", vErr.Field, "total")
	}
}

func TestComposeRejectsZeroQuantity(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()
	items[0].Quantity = 0

	var vErr *ValidationError
	if _, err := c.Compose(tx, items); !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestComposeRejectsNegativePrice(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()
	items[0].Price = -1

	var fErr *FormattingError
	if _, err := c.Compose(tx, items); !errors.As(err, &fErr) {
		t.Fatalf("expected *FormattingError, got %v", err)
	}
}

func TestComposeOneRowPerItemInOrder(t *testing.T) {
	c := NewComposer(testStore)
	tx, items, err := BuildScenario(ScenarioMixed)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if got := strings.Count(doc, `<div class="item">`); got != len(items) {
		t.Errorf("rendered %d item rows, want %d", got, len(items))
	}

	// Rows must appear in input order, not re-sorted.
	prev := -1
	for _, item := range items {
		pos := strings.Index(doc, item.Product.Name)
		if pos < 0 {
			t.Fatalf("product %q missing from document", item.Product.Name)
		}
		if pos < prev {
			t.Errorf("product %q rendered out of input order", item.Product.Name)
		}
		prev = pos
	}
}

func TestComposeEscapesUntrustedFields(t *testing.T) {
	c := NewComposer(testStore)
	tx, items := testTransaction()
	tx.CustomerName = `<script>alert("x")</script>`
	items[0].Product.Name = `Pulsa <b>50.000</b>`

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if strings.Contains(doc, "<script>") || strings.Contains(doc, "<b>50.000</b>") {
		t.Error("untrusted fields rendered unescaped")
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Error("expected escaped customer name in document")
	}
}

func TestComposeSingleItemScenario(t *testing.T) {
	c := NewComposer(testStore)
	tx, items, err := BuildScenario(ScenarioElectricityToken)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, want := range []string{
		"1 x Rp 20.000", // explicit quantity even for x1
		"Rp 20.000",
		"TXN-2025-001",
		"No. Meter",
		"1234567890123",
		"TOTAL",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Contains(doc, "Diskon") {
		t.Error("zero discount must not render a discount line")
	}
}

func TestComposeMixedCartWithDiscount(t *testing.T) {
	c := NewComposer(testStore)
	tx, items, err := BuildScenario(ScenarioMixed)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, want := range []string{"Rp 80.000", "Rp 5.000", "Rp 75.000", "Diskon"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

// An electricity token anywhere in the cart means the reference column holds
// a meter number, so the fixture must carry one and the label must match.
func TestComposeMixedCartMeterReference(t *testing.T) {
	c := NewComposer(testStore)
	tx, items, err := BuildScenario(ScenarioMixed)
	if err != nil {
		t.Fatal(err)
	}
	if referenceLabel(items) != "No. Meter" {
		t.Fatalf("referenceLabel = %q, want %q", referenceLabel(items), "No. Meter")
	}

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !strings.Contains(doc, "No. Meter") || !strings.Contains(doc, tx.ReferenceNumber) {
		t.Error("mixed cart must render the reference as a meter number")
	}
	if strings.Contains(doc, "No. HP") {
		t.Error("mixed cart with a token must not label the reference as a phone number")
	}
}

func TestComposeMultiQuantityLine(t *testing.T) {
	c := NewComposer(testStore)
	tx, items, err := BuildScenario(ScenarioGameVoucher)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := c.Compose(tx, items)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if !strings.Contains(doc, "2 x Rp 25.000") {
		t.Error("expected quantity x unit price on multi-quantity row")
	}
	if !strings.Contains(doc, "Rp 50.000") {
		t.Error("expected line subtotal, not the unit price repeated")
	}
}
