package receipt

import (
	"strings"
	"testing"
)

// Every fixture must satisfy the financial invariants the engine enforces:
// transaction total = subtotal - discount + tax, and each line subtotal =
// price * quantity - discount.
func TestScenarioFixturesSatisfyInvariants(t *testing.T) {
	for _, s := range Scenarios() {
		t.Run(string(s), func(t *testing.T) {
			tx, items, err := BuildScenario(s)
			if err != nil {
				t.Fatalf("BuildScenario() error = %v", err)
			}

			if got := tx.Subtotal - tx.Discount + tx.Tax; got != tx.Total {
				t.Errorf("totals invariant broken: %d - %d + %d = %d, stored total %d",
					tx.Subtotal, tx.Discount, tx.Tax, got, tx.Total)
			}

			var itemSum int64
			for i, item := range items {
				if want := item.Price*int64(item.Quantity) - item.Discount; item.Subtotal != want {
					t.Errorf("items[%d] subtotal = %d, want %d", i, item.Subtotal, want)
				}
				if item.Product == nil {
					t.Errorf("items[%d] missing product snapshot", i)
				}
				itemSum += item.Subtotal
			}
			if itemSum != tx.Subtotal {
				t.Errorf("item subtotals sum to %d, transaction subtotal %d", itemSum, tx.Subtotal)
			}
		})
	}
}

func TestRenderScenarioRoundTrips(t *testing.T) {
	c := NewComposer(testStore)
	for _, s := range Scenarios() {
		t.Run(string(s), func(t *testing.T) {
			doc, err := RenderScenario(c, s)
			if err != nil {
				t.Fatalf("RenderScenario() error = %v", err)
			}
			if !strings.Contains(doc, "TOTAL") {
				t.Error("document missing totals block")
			}

			again, err := RenderScenario(c, s)
			if err != nil {
				t.Fatalf("RenderScenario() error = %v", err)
			}
			if doc != again {
				t.Error("scenario render is not reproducible")
			}
		})
	}
}

func TestBuildScenarioUnknown(t *testing.T) {
	if _, _, err := BuildScenario("tiket-kereta"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}
