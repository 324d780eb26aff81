package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"style_server/adapter/out/catalogfile"
	"style_server/adapter/out/persistence"
	"style_server/config"
	"style_server/infra/database"
	"style_server/pkg/logger"
)

const defaultCatalogFile = "data/clothing_recommendations.csv"

// Migrate creates the schema for the configured driver, imports the
// catalog file into recommendation_catalog and seeds the product catalog.
// Both imports replace the previous contents. A missing product seed file
// is skipped.
func Migrate(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	db, closeDB, err := database.NewSQL(ctx, sqlConfig(cfg))
	if err != nil {
		return err
	}
	defer closeDB()

	if err := persistence.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info("Schema ready on %s", cfg.DBDriver)

	path := cfg.CatalogPath
	if path == "" {
		path = defaultCatalogFile
	}

	entries, err := catalogfile.NewSource(path).LoadEntries(ctx)
	if err != nil {
		return err
	}
	if err := persistence.NewCatalogAdapter(db).ReplaceAll(ctx, entries); err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}

	logger.Info("Imported %d catalog rows from %s", len(entries), path)

	return seedProducts(ctx, persistence.NewProductAdapter(db), cfg.ProductsPath)
}

func seedProducts(ctx context.Context, repo *persistence.ProductAdapter, path string) error {
	if path == "" {
		return nil
	}

	products, err := catalogfile.LoadProducts(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Product seed %s not found, products left unchanged", path)
		return nil
	}
	if err != nil {
		return err
	}
	if err := repo.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("import products: %w", err)
	}

	logger.Info("Imported %d products from %s", len(products), path)
	return nil
}
