// Package catalogfile loads recommendation catalog rows from a CSV or YAML
// file.
//
// CSV files carry a header row with the columns
// "Category, Recommendation Type, Item, Link" in any order. YAML files hold
// a list of {category, type, item, link} mappings.
package catalogfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/logger"

	"gopkg.in/yaml.v3"
)

const (
	colCategory = "category"
	colType     = "recommendation type"
	colItem     = "item"
	colLink     = "link"
)

// Source reads catalog rows from a file on every LoadEntries call.
type Source struct {
	path string
}

var _ out.CatalogSource = (*Source)(nil)

// NewSource creates a Source for path. The format follows the extension:
// .yaml/.yml is YAML, anything else is CSV.
func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) LoadEntries(ctx context.Context) ([]domain.RecommendationEntry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseCSV(f)
	}
}

// ParseCSV reads rows in file order. Rows with an unknown recommendation
// type are skipped and logged.
func ParseCSV(r io.Reader) ([]domain.RecommendationEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var entries []domain.RecommendationEntry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog csv: %w", err)
		}
		if isBlank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)

		field := func(col string) string {
			i := idx[col]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		variant, err := domain.ParseVariantType(field(colType))
		if err != nil {
			logger.WithField("line", line).Warn("catalog: skipping row: %v", err)
			continue
		}
		entries = append(entries, domain.RecommendationEntry{
			Category:    field(colCategory),
			VariantType: variant,
			ItemName:    field(colItem),
			Link:        field(colLink),
		})
	}
	return entries, nil
}

type yamlEntry struct {
	Category string `yaml:"category"`
	Type     string `yaml:"type"`
	Item     string `yaml:"item"`
	Link     string `yaml:"link"`
}

// ParseYAML reads a YAML list of catalog rows.
func ParseYAML(r io.Reader) ([]domain.RecommendationEntry, error) {
	var raw []yamlEntry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog yaml: %w", err)
	}

	entries := make([]domain.RecommendationEntry, 0, len(raw))
	for i, e := range raw {
		variant, err := domain.ParseVariantType(e.Type)
		if err != nil {
			logger.WithField("index", i).Warn("catalog: skipping row: %v", err)
			continue
		}
		entries = append(entries, domain.RecommendationEntry{
			Category:    strings.TrimSpace(e.Category),
			VariantType: variant,
			ItemName:    strings.TrimSpace(e.Item),
			Link:        strings.TrimSpace(e.Link),
		})
	}
	return entries, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		idx[h] = i
	}
	for _, col := range []string{colCategory, colType, colItem, colLink} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("catalog csv: missing column %q", col)
		}
	}
	return idx, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
