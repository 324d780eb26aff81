package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate entry")
	ErrValidation = errors.New("validation failed")
)

// StylePreference is one weighted style tag of a user.
type StylePreference struct {
	StyleName  string  `json:"style_name"`
	Percentage float64 `json:"percentage"`
}

// DefaultStyleProfile is served for users without stored preferences.
func DefaultStyleProfile() []StylePreference {
	return []StylePreference{
		{StyleName: "Casual", Percentage: 45},
		{StyleName: "Minimalist", Percentage: 25},
		{StyleName: "Streetwear", Percentage: 20},
		{StyleName: "Bohemian", Percentage: 10},
	}
}

// SortStyleProfile orders by percentage descending, then name ascending so
// ties are stable across stores.
func SortStyleProfile(prefs []StylePreference) {
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].Percentage != prefs[j].Percentage {
			return prefs[i].Percentage > prefs[j].Percentage
		}
		return prefs[i].StyleName < prefs[j].StyleName
	})
}

// ValidatePercentage rejects values outside 0..100 and NaN.
func ValidatePercentage(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("%w: percentage %v out of range 0-100", ErrValidation, p)
	}
	return nil
}

// ValidateStyleProfile checks a replacement set. Names are trimmed in place.
// When requireFullSum is set the percentages must add up to 100 (±0.01).
func ValidateStyleProfile(prefs []StylePreference, requireFullSum bool) error {
	if len(prefs) == 0 {
		return fmt.Errorf("%w: at least one style is required", ErrValidation)
	}
	seen := make(map[string]struct{}, len(prefs))
	var sum float64
	for i := range prefs {
		prefs[i].StyleName = strings.TrimSpace(prefs[i].StyleName)
		name := prefs[i].StyleName
		if name == "" {
			return fmt.Errorf("%w: style_name is required (entry %d)", ErrValidation, i)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate style_name %q", ErrValidation, name)
		}
		seen[key] = struct{}{}
		if err := ValidatePercentage(prefs[i].Percentage); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		sum += prefs[i].Percentage
	}
	if requireFullSum && math.Abs(sum-100) > 0.01 {
		return fmt.Errorf("%w: percentages sum to %.2f, want 100", ErrValidation, sum)
	}
	return nil
}
