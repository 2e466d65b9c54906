// ABOUTME: Catalog Store: the seeded, read-only set of known food items.
// ABOUTME: All derived views are projections of the one canonical entry set.
package catalog

import (
	"sort"

	"github.com/vishlabs/vish/internal/models"
)

// Store holds the catalog entries. The set is fixed at construction and
// read-only for the lifetime of the process.
type Store struct {
	items     []models.FoodItem
	byBarcode map[string]int
}

// New builds a store from the given entries. Each entry's VishScore is
// recomputed from its components so the composite invariant holds no matter
// what the seed data claims.
func New(items []models.FoodItem) *Store {
	owned := make([]models.FoodItem, len(items))
	copy(owned, items)

	byBarcode := make(map[string]int)
	for i := range owned {
		owned[i].VishScore = models.CompositeScore(
			owned[i].HealthScore, owned[i].TasteScore, owned[i].ConsumerScore)
		if owned[i].Barcode != "" {
			byBarcode[owned[i].Barcode] = i
		}
	}

	return &Store{items: owned, byBarcode: byBarcode}
}

// Seeded returns a store over the built-in catalog.
func Seeded() *Store {
	return New(seedItems)
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	return len(s.items)
}

// All returns a copy of every entry in canonical order.
func (s *Store) All() []models.FoodItem {
	out := make([]models.FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

// ByBarcode looks up the single entry with an exact barcode match.
func (s *Store) ByBarcode(code string) (models.FoodItem, bool) {
	if i, ok := s.byBarcode[code]; ok {
		return s.items[i], true
	}
	return models.FoodItem{}, false
}

// Project is the one read path every derived view goes through: filter by
// predicate, stable-sort by the comparison, and cap at limit. A nil filter
// keeps everything, a nil less preserves canonical order, limit <= 0 means
// unlimited. The returned slice is always a copy.
func (s *Store) Project(filter func(*models.FoodItem) bool, less func(a, b *models.FoodItem) bool, limit int) []models.FoodItem {
	var out []models.FoodItem
	for i := range s.items {
		if filter == nil || filter(&s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(&out[i], &out[j])
		})
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Popular returns entries sorted by consumer score descending.
func (s *Store) Popular(limit int) []models.FoodItem {
	return s.Project(nil, func(a, b *models.FoodItem) bool {
		return a.ConsumerScore > b.ConsumerScore
	}, limit)
}

// Healthy returns entries with a Vish Score of at least 70, best first.
func (s *Store) Healthy(limit int) []models.FoodItem {
	return s.Project(func(f *models.FoodItem) bool {
		return f.VishScore >= 70
	}, func(a, b *models.FoodItem) bool {
		return a.VishScore > b.VishScore
	}, limit)
}

// ByCategory returns entries in the given category, canonical order.
func (s *Store) ByCategory(category string) []models.FoodItem {
	return s.Project(func(f *models.FoodItem) bool {
		return f.Category == category
	}, nil, 0)
}

// ByDietaryTag returns entries carrying the given dietary tag.
func (s *Store) ByDietaryTag(tag string) []models.FoodItem {
	return s.Project(func(f *models.FoodItem) bool {
		return f.HasDietaryTag(tag)
	}, nil, 0)
}

// ByOrigin returns entries from the given origin.
func (s *Store) ByOrigin(origin string) []models.FoodItem {
	return s.Project(func(f *models.FoodItem) bool {
		return f.Origin == origin
	}, nil, 0)
}

// EcoFriendly returns entries whose environmental score meets the
// threshold, sorted by environmental score descending.
func (s *Store) EcoFriendly(minScore, limit int) []models.FoodItem {
	return s.Project(func(f *models.FoodItem) bool {
		return f.EnvironmentalScore >= minScore
	}, func(a, b *models.FoodItem) bool {
		return a.EnvironmentalScore > b.EnvironmentalScore
	}, limit)
}

// MoodRanking returns entries ranked by mood score descending.
func (s *Store) MoodRanking(limit int) []models.FoodItem {
	return s.Project(nil, func(a, b *models.FoodItem) bool {
		return a.MoodScore > b.MoodScore
	}, limit)
}
