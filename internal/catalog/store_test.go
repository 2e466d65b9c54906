// ABOUTME: Tests for the catalog store, its invariant, and its derived views.
// ABOUTME: Every view must be a pure projection of the canonical entry set.
package catalog

import (
	"testing"

	"github.com/vishlabs/vish/internal/models"
)

func TestSeededCompositeInvariant(t *testing.T) {
	for _, item := range Seeded().All() {
		want := models.CompositeScore(item.HealthScore, item.TasteScore, item.ConsumerScore)
		if item.VishScore != want {
			t.Errorf("%s: VishScore = %d, want %d", item.Name, item.VishScore, want)
		}
	}
}

func TestNewRecomputesVishScore(t *testing.T) {
	store := New([]models.FoodItem{
		{ID: "x", Name: "Test", HealthScore: 90, TasteScore: 90, ConsumerScore: 90, VishScore: 3},
	})

	items := store.All()
	if items[0].VishScore != 90 {
		t.Errorf("VishScore = %d, want 90 (recomputed)", items[0].VishScore)
	}
}

func TestByBarcode(t *testing.T) {
	store := Seeded()

	item, ok := store.ByBarcode("0786936224306")
	if !ok {
		t.Fatal("expected barcode hit")
	}
	if item.Name != "Organic Quinoa Power Bowl" {
		t.Errorf("Name = %s, want Organic Quinoa Power Bowl", item.Name)
	}

	if _, ok := store.ByBarcode("0000000000000"); ok {
		t.Error("expected barcode miss")
	}
}

func TestPopularSorted(t *testing.T) {
	items := Seeded().Popular(0)
	for i := 1; i < len(items); i++ {
		if items[i-1].ConsumerScore < items[i].ConsumerScore {
			t.Fatalf("popular not sorted at %d: %d < %d",
				i, items[i-1].ConsumerScore, items[i].ConsumerScore)
		}
	}
}

func TestHealthyThresholdAndOrder(t *testing.T) {
	items := Seeded().Healthy(0)
	if len(items) == 0 {
		t.Fatal("expected healthy entries in seed catalog")
	}
	for i, item := range items {
		if item.VishScore < 70 {
			t.Errorf("%s has VishScore %d, below threshold", item.Name, item.VishScore)
		}
		if i > 0 && items[i-1].VishScore < item.VishScore {
			t.Errorf("healthy not sorted at %d", i)
		}
	}
}

func TestEcoFriendlyThreshold(t *testing.T) {
	items := Seeded().EcoFriendly(80, 0)
	for _, item := range items {
		if item.EnvironmentalScore < 80 {
			t.Errorf("%s environmental score %d below threshold", item.Name, item.EnvironmentalScore)
		}
	}
}

func TestByCategoryPreservesOrder(t *testing.T) {
	store := Seeded()
	snacks := store.ByCategory("Snacks")
	if len(snacks) == 0 {
		t.Fatal("expected snacks in seed catalog")
	}

	var fromAll []models.FoodItem
	for _, item := range store.All() {
		if item.Category == "Snacks" {
			fromAll = append(fromAll, item)
		}
	}
	for i := range snacks {
		if snacks[i].ID != fromAll[i].ID {
			t.Fatalf("category view order diverges at %d", i)
		}
	}
}

func TestProjectLimit(t *testing.T) {
	items := Seeded().Popular(3)
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestProjectionsDoNotMutateStore(t *testing.T) {
	store := Seeded()
	before := store.All()[0].Name

	view := store.Popular(0)
	view[0].Name = "Mutated"

	if store.All()[0].Name != before {
		t.Error("mutating a projection leaked into the store")
	}
}
