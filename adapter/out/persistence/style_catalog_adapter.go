package persistence

import (
	"context"

	"style_server/core/domain"
	"style_server/core/port/out"
	"style_server/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// CatalogAdapter reads and writes the recommendation_catalog table.
type CatalogAdapter struct {
	db *sqlx.DB
}

func NewCatalogAdapter(db *sqlx.DB) *CatalogAdapter {
	return &CatalogAdapter{db: db}
}

var _ out.CatalogRepository = (*CatalogAdapter)(nil)

type catalogRow struct {
	ID                 int64  `db:"id"`
	Category           string `db:"category"`
	RecommendationType string `db:"recommendation_type"`
	Item               string `db:"item"`
	Link               string `db:"link"`
}

// LoadEntries returns every row in insertion order. Rows whose type is not
// one of the four variants are skipped.
func (a *CatalogAdapter) LoadEntries(ctx context.Context) ([]domain.RecommendationEntry, error) {
	var rows []catalogRow
	err := a.db.SelectContext(ctx, &rows, `
		SELECT id, category, recommendation_type, item, link
		FROM recommendation_catalog
		ORDER BY id`)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RecommendationEntry, 0, len(rows))
	for _, r := range rows {
		variant, err := domain.ParseVariantType(r.RecommendationType)
		if err != nil {
			logger.WithField("row_id", r.ID).Warn("catalog: skipping row: %v", err)
			continue
		}
		entries = append(entries, domain.RecommendationEntry{
			Category:    r.Category,
			VariantType: variant,
			ItemName:    r.Item,
			Link:        r.Link,
		})
	}
	return entries, nil
}

// ReplaceAll swaps the catalog contents in one transaction.
func (a *CatalogAdapter) ReplaceAll(ctx context.Context, entries []domain.RecommendationEntry) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recommendation_catalog`); err != nil {
		return err
	}

	insert := tx.Rebind(`
		INSERT INTO recommendation_catalog (category, recommendation_type, item, link)
		VALUES (?, ?, ?, ?)`)
	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, insert, e.Category, string(e.VariantType), e.ItemName, e.Link); err != nil {
			return err
		}
	}

	return tx.Commit()
}
