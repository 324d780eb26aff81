package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"style_server/core/domain"

	"gopkg.in/yaml.v3"
)

type yamlProduct struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Category    string   `yaml:"category"`
	Brand       string   `yaml:"brand"`
	Style       string   `yaml:"style"`
	Colors      []string `yaml:"colors"`
	ImageURL    string   `yaml:"image_url"`
}

// LoadProducts reads a product seed file.
func LoadProducts(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseProductsYAML(f)
}

// ParseProductsYAML reads a YAML list of products. Every product needs a
// name and a non-negative price.
func ParseProductsYAML(r io.Reader) ([]domain.Product, error) {
	var raw []yamlProduct
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode products yaml: %w", err)
	}

	products := make([]domain.Product, 0, len(raw))
	for i, p := range raw {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("product %d: name is required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: negative price", name)
		}

		colors := make([]string, 0, len(p.Colors))
		for _, c := range p.Colors {
			if c = strings.TrimSpace(c); c != "" {
				colors = append(colors, c)
			}
		}

		products = append(products, domain.Product{
			Name:        name,
			Description: strings.TrimSpace(p.Description),
			Price:       p.Price,
			Category:    strings.TrimSpace(p.Category),
			Brand:       strings.TrimSpace(p.Brand),
			Style:       strings.TrimSpace(p.Style),
			Colors:      colors,
			ImageURL:    strings.TrimSpace(p.ImageURL),
		})
	}
	return products, nil
}
