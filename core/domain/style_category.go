package domain

import "errors"

// CategorySeparator joins clothing type and color in a category key.
const CategorySeparator = " – "

var ErrInvalidCategory = errors.New("invalid category-color combination")

// Category is one allow-listed clothing type / color bucket.
type Category struct {
	Slug         string `json:"slug"`
	ClothingType string `json:"type"`
	Color        string `json:"color"`
}

// Key returns the canonical "Type – Color" string.
func (c Category) Key() string {
	return CategoryKey(c.ClothingType, c.Color)
}

// CategoryKey composes a key without validating it.
func CategoryKey(clothingType, color string) string {
	return clothingType + CategorySeparator + color
}

// CategoryPair is the {type, color} shape listed back to clients when a
// lookup is rejected.
type CategoryPair struct {
	Type  string `json:"type"`
	Color string `json:"color"`
}

var allowedCategories = [...]Category{
	{Slug: "tshirt", ClothingType: "T-Shirt", Color: "Navy Blue"},
	{Slug: "hoodie", ClothingType: "Hoodie", Color: "Olive Green"},
	{Slug: "jeans", ClothingType: "Jeans", Color: "Dark Grey"},
	{Slug: "formalshirt", ClothingType: "Formal Shirt", Color: "Sky Blue"},
	{Slug: "sweater", ClothingType: "Sweater", Color: "Maroon"},
	{Slug: "jacket", ClothingType: "Jacket", Color: "Mustard Yellow"},
	{Slug: "shorts", ClothingType: "Shorts", Color: "Beige"},
	{Slug: "kurta", ClothingType: "Kurta", Color: "White"},
	{Slug: "tracksuit", ClothingType: "Tracksuit", Color: "Black"},
	{Slug: "blazer", ClothingType: "Blazer", Color: "Burgundy"},
}

var (
	categoriesByKey  = make(map[string]Category, len(allowedCategories))
	categoriesBySlug = make(map[string]Category, len(allowedCategories))
)

func init() {
	for _, c := range allowedCategories {
		categoriesByKey[c.Key()] = c
		categoriesBySlug[c.Slug] = c
	}
}

// AllowedCategories returns the allow-list in its fixed order.
func AllowedCategories() []Category {
	out := make([]Category, len(allowedCategories))
	copy(out, allowedCategories[:])
	return out
}

// ValidCategoryPairs lists every allow-listed (type, color) pair.
func ValidCategoryPairs() []CategoryPair {
	pairs := make([]CategoryPair, len(allowedCategories))
	for i, c := range allowedCategories {
		pairs[i] = CategoryPair{Type: c.ClothingType, Color: c.Color}
	}
	return pairs
}

// ResolveCategory validates a (clothing type, color) pair. Matching is
// exact: casing and spacing must equal the allow-list entry.
func ResolveCategory(clothingType, color string) (Category, error) {
	c, ok := categoriesByKey[CategoryKey(clothingType, color)]
	if !ok {
		return Category{}, ErrInvalidCategory
	}
	return c, nil
}

// CategoryBySlug looks up an allow-listed category by its URL slug.
func CategoryBySlug(slug string) (Category, bool) {
	c, ok := categoriesBySlug[slug]
	return c, ok
}
