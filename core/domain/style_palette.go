package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// PaletteSize is the fixed number of dominant colors kept per user.
const PaletteSize = 4

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ColorShare is one palette slot.
type ColorShare struct {
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

// ColorPalette holds a user's top dominant wardrobe colors.
type ColorPalette struct {
	UserID    int64                   `json:"user_id"`
	Colors    [PaletteSize]ColorShare `json:"colors"`
	CreatedAt time.Time               `json:"created_at"`
}

// ColorNames returns the non-empty colors in slot order.
func (p *ColorPalette) ColorNames() []string {
	names := make([]string, 0, PaletteSize)
	for _, c := range p.Colors {
		if c.Color != "" {
			names = append(names, c.Color)
		}
	}
	return names
}

// Validate normalizes colors to upper-case and checks every slot.
func (p *ColorPalette) Validate() error {
	for i := range p.Colors {
		slot := &p.Colors[i]
		slot.Color = strings.ToUpper(strings.TrimSpace(slot.Color))
		if !hexColorPattern.MatchString(slot.Color) {
			return fmt.Errorf("%w: color_%d must be #RRGGBB, got %q", ErrValidation, i+1, slot.Color)
		}
		if err := ValidatePercentage(slot.Percentage); err != nil {
			return fmt.Errorf("color_%d: %w", i+1, err)
		}
	}
	return nil
}
