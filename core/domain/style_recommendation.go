package domain

import (
	"fmt"
	"strings"
)

// VariantType relates a suggestion to the input garment.
type VariantType string

const (
	VariantSameColorSameType           VariantType = "Same Color, Same Type"
	VariantSameColorDifferentType      VariantType = "Same Color, Different Type"
	VariantDifferentColorSameType      VariantType = "Different Color, Same Type"
	VariantDifferentColorDifferentType VariantType = "Different Color, Different Type"
)

// VariantTypes lists the four variants in display order.
var VariantTypes = []VariantType{
	VariantSameColorSameType,
	VariantSameColorDifferentType,
	VariantDifferentColorSameType,
	VariantDifferentColorDifferentType,
}

// ParseVariantType accepts the catalog spelling, ignoring surrounding
// whitespace and case.
func ParseVariantType(s string) (VariantType, error) {
	s = strings.TrimSpace(s)
	for _, v := range VariantTypes {
		if strings.EqualFold(s, string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown recommendation type %q", s)
}

// RecommendationEntry is one catalog row.
type RecommendationEntry struct {
	Category    string      `json:"category" yaml:"category"`
	VariantType VariantType `json:"type" yaml:"type"`
	ItemName    string      `json:"item" yaml:"item"`
	Link        string      `json:"link" yaml:"link"`
}

// Recommendation is a resolved variant as served to clients.
type Recommendation struct {
	Item            string `json:"item"`
	Link            string `json:"link"`
	MatchConfidence int    `json:"matchConfidence"`
}

// RecommendationSet is the resolved answer for one category.
type RecommendationSet struct {
	Recommendations  map[VariantType]Recommendation `json:"recommendations"`
	OriginalCategory string                         `json:"originalCategory"`
}

// ConfidenceTable holds the display score per variant.
type ConfidenceTable map[VariantType]int

// DefaultConfidenceTable returns the stock display scores.
func DefaultConfidenceTable() ConfidenceTable {
	return ConfidenceTable{
		VariantSameColorSameType:           98,
		VariantSameColorDifferentType:      95,
		VariantDifferentColorSameType:      92,
		VariantDifferentColorDifferentType: 90,
	}
}

// Catalog is the immutable, grouped view of the recommendation rows.
// Build it once with NewCatalog and share it by pointer.
type Catalog struct {
	byCategory map[string]map[VariantType]RecommendationEntry
	size       int
}

// NewCatalog groups entries by category and variant. A later row for the
// same (category, variant) replaces an earlier one.
func NewCatalog(entries []RecommendationEntry) *Catalog {
	c := &Catalog{byCategory: make(map[string]map[VariantType]RecommendationEntry)}
	for _, e := range entries {
		group, ok := c.byCategory[e.Category]
		if !ok {
			group = make(map[VariantType]RecommendationEntry, len(VariantTypes))
			c.byCategory[e.Category] = group
		}
		if _, dup := group[e.VariantType]; !dup {
			c.size++
		}
		group[e.VariantType] = e
	}
	return c
}

// Lookup returns the variants for a category key. The map is a copy.
func (c *Catalog) Lookup(category string) map[VariantType]RecommendationEntry {
	if c == nil {
		return nil
	}
	group := c.byCategory[category]
	if len(group) == 0 {
		return nil
	}
	out := make(map[VariantType]RecommendationEntry, len(group))
	for k, v := range group {
		out[k] = v
	}
	return out
}

// Len is the number of distinct (category, variant) entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}
