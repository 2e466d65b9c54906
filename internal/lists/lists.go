// ABOUTME: Favorites and shopping list persisted through the KV collaborator.
// ABOUTME: Same persistence contract as history, separate keys, dedup on add.
package lists

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vishlabs/vish/internal/kv"
	"github.com/vishlabs/vish/internal/models"
)

const (
	favoritesKey = "favorites"
	shoppingKey  = "shopping"
)

// Favorite is one saved catalog entry reference.
type Favorite struct {
	FoodID  string    `json:"foodId"`
	Name    string    `json:"name"`
	Brand   string    `json:"brand"`
	AddedAt time.Time `json:"addedAt"`
}

// ShoppingItem is one shopping list entry.
type ShoppingItem struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Done     bool      `json:"done"`
	AddedAt  time.Time `json:"addedAt"`
}

// Lists manages the user's favorites and shopping list.
type Lists struct {
	kv kv.Store
}

// New creates a lists manager over the given persistence collaborator.
func New(store kv.Store) *Lists {
	return &Lists{kv: store}
}

// Favorites returns all saved favorites, oldest first.
func (l *Lists) Favorites() ([]Favorite, error) {
	return loadList[Favorite](l.kv, favoritesKey)
}

// AddFavorite saves a catalog entry as a favorite. Adding an entry that is
// already saved is a no-op and reports false.
func (l *Lists) AddFavorite(item models.FoodItem) (bool, error) {
	favs, err := l.Favorites()
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.FoodID == item.ID {
			return false, nil
		}
	}

	favs = append(favs, Favorite{
		FoodID:  item.ID,
		Name:    item.Name,
		Brand:   item.Brand,
		AddedAt: time.Now(),
	})
	return true, l.persist(favoritesKey, favs)
}

// RemoveFavorite deletes a favorite by food ID, reporting false when absent.
func (l *Lists) RemoveFavorite(foodID string) (bool, error) {
	favs, err := l.Favorites()
	if err != nil {
		return false, err
	}
	for i, f := range favs {
		if f.FoodID == foodID {
			favs = append(favs[:i], favs[i+1:]...)
			return true, l.persist(favoritesKey, favs)
		}
	}
	return false, nil
}

// ShoppingItems returns the shopping list, oldest first.
func (l *Lists) ShoppingItems() ([]ShoppingItem, error) {
	return loadList[ShoppingItem](l.kv, shoppingKey)
}

// AddShoppingItem appends a new entry to the shopping list.
func (l *Lists) AddShoppingItem(name, quantity string) (*ShoppingItem, error) {
	items, err := l.ShoppingItems()
	if err != nil {
		return nil, err
	}

	item := ShoppingItem{
		ID:       uuid.NewString()[:8],
		Name:     name,
		Quantity: quantity,
		AddedAt:  time.Now(),
	}
	items = append(items, item)
	if err := l.persist(shoppingKey, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleShoppingItem flips the done flag, reporting false when absent.
func (l *Lists) ToggleShoppingItem(id string) (bool, error) {
	items, err := l.ShoppingItems()
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Done = !items[i].Done
			return true, l.persist(shoppingKey, items)
		}
	}
	return false, nil
}

// RemoveShoppingItem deletes an entry by ID, reporting false when absent.
func (l *Lists) RemoveShoppingItem(id string) (bool, error) {
	items, err := l.ShoppingItems()
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return true, l.persist(shoppingKey, items)
		}
	}
	return false, nil
}

// ClearDone drops every completed shopping item, returning how many went.
func (l *Lists) ClearDone() (int, error) {
	items, err := l.ShoppingItems()
	if err != nil {
		return 0, err
	}

	kept := items[:0]
	removed := 0
	for _, item := range items {
		if item.Done {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, l.persist(shoppingKey, kept)
}

// loadList mirrors the history store's availability tradeoff: a missing key
// is an empty list, an unreadable blob is logged and treated as empty.
// Unmarshal may have partially filled the slice before failing, so the
// result is discarded outright on error, never returned half-decoded.
func loadList[T any](store kv.Store, key string) ([]T, error) {
	data, err := store.Get(key)
	if err == kv.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("lists: stored %s blob unreadable, starting empty: %v", key, err)
		return nil, nil
	}
	return items, nil
}

func (l *Lists) persist(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := l.kv.Set(key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
