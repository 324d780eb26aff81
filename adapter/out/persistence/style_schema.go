package persistence

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS style_preferences (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		style_name VARCHAR(100) NOT NULL,
		percentage DECIMAL(5,2) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_style_user_name (user_id, style_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS color_palette_matching (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		color_1 VARCHAR(7) NOT NULL,
		color_1_percentage DECIMAL(5,2) NOT NULL,
		color_2 VARCHAR(7) NOT NULL,
		color_2_percentage DECIMAL(5,2) NOT NULL,
		color_3 VARCHAR(7) NOT NULL,
		color_3_percentage DECIMAL(5,2) NOT NULL,
		color_4 VARCHAR(7) NOT NULL,
		color_4_percentage DECIMAL(5,2) NOT NULL,
		created_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_palette_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		KEY idx_chat_user_created (user_id, created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		item_type VARCHAR(100) NOT NULL DEFAULT '',
		link VARCHAR(1024) NOT NULL DEFAULT '',
		added_at DATETIME(6) NOT NULL,
		UNIQUE KEY uq_favorite_user_item (user_id, item_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS recommendation_catalog (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		category VARCHAR(100) NOT NULL,
		recommendation_type VARCHAR(64) NOT NULL,
		item VARCHAR(255) NOT NULL,
		link VARCHAR(1024) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		brand VARCHAR(100) NOT NULL DEFAULT '',
		style VARCHAR(100) NOT NULL DEFAULT '',
		image_url VARCHAR(1024) NOT NULL DEFAULT '',
		created_at DATETIME(6) NOT NULL,
		KEY idx_products_style (style)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS product_colors (
		product_id BIGINT NOT NULL,
		position INT NOT NULL,
		color VARCHAR(50) NOT NULL,
		PRIMARY KEY (product_id, position),
		KEY idx_product_colors_color (color)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS style_preferences (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		style_name VARCHAR(100) NOT NULL,
		percentage NUMERIC(5,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, style_name)
	)`,
	`CREATE TABLE IF NOT EXISTS color_palette_matching (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE,
		color_1 VARCHAR(7) NOT NULL,
		color_1_percentage NUMERIC(5,2) NOT NULL,
		color_2 VARCHAR(7) NOT NULL,
		color_2_percentage NUMERIC(5,2) NOT NULL,
		color_3 VARCHAR(7) NOT NULL,
		color_3_percentage NUMERIC(5,2) NOT NULL,
		color_4 VARCHAR(7) NOT NULL,
		color_4_percentage NUMERIC(5,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_user_created ON chat_history (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		item_type VARCHAR(100) NOT NULL DEFAULT '',
		link VARCHAR(1024) NOT NULL DEFAULT '',
		added_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, item_name)
	)`,
	`CREATE TABLE IF NOT EXISTS recommendation_catalog (
		id BIGSERIAL PRIMARY KEY,
		category VARCHAR(100) NOT NULL,
		recommendation_type VARCHAR(64) NOT NULL,
		item VARCHAR(255) NOT NULL,
		link VARCHAR(1024) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		brand VARCHAR(100) NOT NULL DEFAULT '',
		style VARCHAR(100) NOT NULL DEFAULT '',
		image_url VARCHAR(1024) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_colors (
		product_id BIGINT NOT NULL,
		position INT NOT NULL,
		color VARCHAR(50) NOT NULL,
		PRIMARY KEY (product_id, position)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_colors_color ON product_colors (LOWER(color))`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS style_preferences (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		style_name TEXT NOT NULL,
		percentage REAL NOT NULL,
		created_at DATETIME NOT NULL,
		UNIQUE (user_id, style_name)
	)`,
	`CREATE TABLE IF NOT EXISTS color_palette_matching (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL UNIQUE,
		color_1 TEXT NOT NULL,
		color_1_percentage REAL NOT NULL,
		color_2 TEXT NOT NULL,
		color_2_percentage REAL NOT NULL,
		color_3 TEXT NOT NULL,
		color_3_percentage REAL NOT NULL,
		color_4 TEXT NOT NULL,
		color_4_percentage REAL NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_user_created ON chat_history (user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS favorites (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		item_type TEXT NOT NULL DEFAULT '',
		link TEXT NOT NULL DEFAULT '',
		added_at DATETIME NOT NULL,
		UNIQUE (user_id, item_name)
	)`,
	`CREATE TABLE IF NOT EXISTS recommendation_catalog (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		recommendation_type TEXT NOT NULL,
		item TEXT NOT NULL,
		link TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price REAL NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		style TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS product_colors (
		product_id INTEGER NOT NULL,
		position INTEGER NOT NULL,
		color TEXT NOT NULL,
		PRIMARY KEY (product_id, position)
	)`,
}

// EnsureSchema creates every table for the dialect of db. Statements are
// idempotent and run one at a time.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	var stmts []string
	switch DialectOf(db.DriverName()) {
	case DialectPostgres:
		stmts = postgresSchema
	case DialectSQLite:
		stmts = sqliteSchema
	default:
		stmts = mysqlSchema
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
