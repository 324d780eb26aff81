package catalogfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"style_server/core/domain"
)

const sampleCSV = "\ufeffCategory,Recommendation Type,Item,Link\n" +
	"Hoodie – Olive Green,\"Same Color, Same Type\",Olive Zip Hoodie,https://example.com/1\n" +
	"\n" +
	"Hoodie – Olive Green,Bogus Type,Ignored,https://example.com/x\n" +
	"Hoodie – Olive Green,\"Different Color, Different Type\",\"Grey Joggers, Slim\",https://example.com/2\n"

func TestParseCSV(t *testing.T) {
	got, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}

	want := domain.RecommendationEntry{
		Category:    "Hoodie – Olive Green",
		VariantType: domain.VariantDifferentColorDifferentType,
		ItemName:    "Grey Joggers, Slim",
		Link:        "https://example.com/2",
	}
	if got[1] != want {
		t.Errorf("got %+v, want %+v", got[1], want)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		fail  bool
	}{
		{"empty file", "", 0, false},
		{"header only", "Category,Recommendation Type,Item,Link\n", 0, false},
		{"missing column", "Category,Item,Link\nx,y,z\n", 0, true},
		{"reordered columns", "Link,Item,Recommendation Type,Category\nhttps://l,Tee,\"Same Color, Same Type\",T-Shirt – Navy Blue\n", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCSV(strings.NewReader(tt.input))
			if (err != nil) != tt.fail {
				t.Fatalf("error = %v, wantErr %v", err, tt.fail)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseYAML(t *testing.T) {
	input := `
- category: Kurta – White
  type: Same Color, Same Type
  item: White Cotton Kurta
  link: https://example.com/k
- category: Kurta – White
  type: nope
  item: skipped
  link: https://example.com/s
`
	got, err := ParseYAML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if len(got) != 1 || got[0].ItemName != "White Cotton Kurta" || got[0].VariantType != domain.VariantSameColorSameType {
		t.Errorf("got %+v", got)
	}
}

func TestSource_ByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "catalog.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "catalog.yml")
	if err := os.WriteFile(yamlPath, []byte("- {category: a, type: \"Same Color, Same Type\", item: b, link: c}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for path, want := range map[string]int{csvPath: 2, yamlPath: 1} {
		got, err := NewSource(path).LoadEntries(context.Background())
		if err != nil {
			t.Fatalf("%s: LoadEntries() error = %v", path, err)
		}
		if len(got) != want {
			t.Errorf("%s: len = %d, want %d", path, len(got), want)
		}
	}

	if _, err := NewSource(filepath.Join(dir, "missing.csv")).LoadEntries(context.Background()); err == nil {
		t.Error("missing file should fail")
	}
}

func TestShippedCatalog(t *testing.T) {
	got, err := NewSource(filepath.Join("..", "..", "..", "data", "clothing_recommendations.csv")).LoadEntries(context.Background())
	if err != nil {
		t.Fatalf("LoadEntries() error = %v", err)
	}

	catalog := domain.NewCatalog(got)
	for _, c := range domain.AllowedCategories() {
		if n := len(catalog.Lookup(c.Key())); n != len(domain.VariantTypes) {
			t.Errorf("%s: %d variants, want %d", c.Key(), n, len(domain.VariantTypes))
		}
	}
}
