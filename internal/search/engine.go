// ABOUTME: Search Engine: tokenized text matching, filters, and pagination over the catalog.
// ABOUTME: Purely in-memory; never errors, out-of-range pages yield empty results.
package search

import (
	"strings"

	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/models"
)

// Filters narrows search results after text matching. All set filters are
// combined with logical AND. Nil pointer fields are unset.
type Filters struct {
	Category         string
	MinScore         *int
	MaxScore         *int
	DietaryTags      []string
	ExcludeAllergens []string
	MinEnvironmental *int
}

// Result is one page of search output. Total is the full filtered count
// before pagination.
type Result struct {
	Items   []models.FoodItem
	Total   int
	Page    int
	HasMore bool
}

// Engine searches a catalog store.
type Engine struct {
	store *catalog.Store
}

// New creates a search engine over the given catalog.
func New(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Search runs a tokenized text query with optional filters and returns the
// requested page. Every query token must appear as a substring of at least
// one searchable field (name, brand, category, ingredients, dietary tags);
// an empty query matches all entries. Catalog order is preserved.
func (e *Engine) Search(query string, page, pageSize int, filters *Filters) Result {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	tokens := Tokenize(query)

	var matched []models.FoodItem
	for _, item := range e.store.All() {
		if !matchesTokens(&item, tokens) {
			continue
		}
		if filters != nil && !filters.match(&item) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	offset := (page - 1) * pageSize
	end := offset + pageSize

	var items []models.FoodItem
	if offset < total {
		if end > total {
			end = total
		}
		items = matched[offset:end]
	}

	return Result{
		Items:   items,
		Total:   total,
		Page:    page,
		HasMore: offset+pageSize < total,
	}
}

// Tokenize lower-cases the query and splits it on whitespace into non-empty
// tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesTokens requires every token to hit at least one field (AND across
// tokens, OR across fields per token).
func matchesTokens(item *models.FoodItem, tokens []string) bool {
	for _, token := range tokens {
		if !matchesToken(item, token) {
			return false
		}
	}
	return true
}

func matchesToken(item *models.FoodItem, token string) bool {
	if strings.Contains(strings.ToLower(item.Name), token) ||
		strings.Contains(strings.ToLower(item.Brand), token) ||
		strings.Contains(strings.ToLower(item.Category), token) {
		return true
	}
	for _, ing := range item.Ingredients {
		if strings.Contains(strings.ToLower(ing), token) {
			return true
		}
	}
	for _, tag := range item.DietaryTags {
		if strings.Contains(strings.ToLower(tag), token) {
			return true
		}
	}
	return false
}

func (f *Filters) match(item *models.FoodItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.MinScore != nil && item.VishScore < *f.MinScore {
		return false
	}
	if f.MaxScore != nil && item.VishScore > *f.MaxScore {
		return false
	}
	if len(f.DietaryTags) > 0 && !hasAnyTag(item, f.DietaryTags) {
		return false
	}
	for _, allergen := range f.ExcludeAllergens {
		if item.HasAllergen(allergen) {
			return false
		}
	}
	if f.MinEnvironmental != nil && item.EnvironmentalScore < *f.MinEnvironmental {
		return false
	}
	return true
}

func hasAnyTag(item *models.FoodItem, tags []string) bool {
	for _, tag := range tags {
		if item.HasDietaryTag(tag) {
			return true
		}
	}
	return false
}
