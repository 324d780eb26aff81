package persistence

import (
	"context"
	"strings"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// ProductAdapter implements out.ProductRepository on the products and
// product_colors tables.
type ProductAdapter struct {
	db *sqlx.DB
}

func NewProductAdapter(db *sqlx.DB) *ProductAdapter {
	return &ProductAdapter{db: db}
}

var _ out.ProductRepository = (*ProductAdapter)(nil)

const productColumns = `id, name, description, price, category, brand, style, image_url, created_at`

type productRow struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Category    string    `db:"category"`
	Brand       string    `db:"brand"`
	Style       string    `db:"style"`
	ImageURL    string    `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *productRow) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Brand:       r.Brand,
		Style:       r.Style,
		Colors:      []string{},
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}

type productColorRow struct {
	ProductID int64  `db:"product_id"`
	Color     string `db:"color"`
}

func (a *ProductAdapter) List(ctx context.Context) ([]domain.Product, error) {
	return a.selectProducts(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (a *ProductAdapter) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	products, err := a.selectProducts(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return &products[0], nil
}

func (a *ProductAdapter) ListByStyle(ctx context.Context, style string) ([]domain.Product, error) {
	return a.selectProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE LOWER(style) = ?
		ORDER BY id`, strings.ToLower(style))
}

func (a *ProductAdapter) ListByColor(ctx context.Context, color string) ([]domain.Product, error) {
	return a.selectProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id IN (SELECT product_id FROM product_colors WHERE LOWER(color) = ?)
		ORDER BY id`, strings.ToLower(color))
}

// selectProducts runs query and attaches each product's colors in
// position order.
func (a *ProductAdapter) selectProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	var rows []productRow
	if err := a.db.SelectContext(ctx, &rows, a.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Product{}, nil
	}

	products := make([]domain.Product, len(rows))
	byID := make(map[int64]*domain.Product, len(rows))
	ids := make([]int64, len(rows))
	for i := range rows {
		products[i] = rows[i].toDomain()
		byID[rows[i].ID] = &products[i]
		ids[i] = rows[i].ID
	}

	colorQuery, colorArgs, err := sqlx.In(`
		SELECT product_id, color
		FROM product_colors
		WHERE product_id IN (?)
		ORDER BY product_id, position`, ids)
	if err != nil {
		return nil, err
	}

	var colors []productColorRow
	if err := a.db.SelectContext(ctx, &colors, a.db.Rebind(colorQuery), colorArgs...); err != nil {
		return nil, err
	}
	for _, c := range colors {
		if p, ok := byID[c.ProductID]; ok {
			p.Colors = append(p.Colors, c.Color)
		}
	}
	return products, nil
}

// ReplaceAll swaps the product catalog in one transaction. IDs and
// CreatedAt are filled on products.
func (a *ProductAdapter) ReplaceAll(ctx context.Context, products []domain.Product) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_colors`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return err
	}

	now := time.Now().UTC()
	insertColor := tx.Rebind(`INSERT INTO product_colors (product_id, position, color) VALUES (?, ?, ?)`)
	for i := range products {
		p := &products[i]
		id, err := insertReturningID(ctx, tx, `
			INSERT INTO products (name, description, price, category, brand, style, image_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Description, p.Price, p.Category, p.Brand, p.Style, p.ImageURL, now,
		)
		if err != nil {
			return mapError(err)
		}
		for pos, color := range p.Colors {
			if _, err := tx.ExecContext(ctx, insertColor, id, pos, color); err != nil {
				return mapError(err)
			}
		}
		p.ID = id
		p.CreatedAt = now
	}

	return tx.Commit()
}
