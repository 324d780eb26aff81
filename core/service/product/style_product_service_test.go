package product

import (
	"context"
	"errors"
	"testing"

	"style_server/core/domain"
	"style_server/pkg/apperr"
)

type stubRepo struct {
	products  []domain.Product
	err       error
	lastStyle string
	lastColor string
}

func (r *stubRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.products, r.err
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubRepo) ListByStyle(ctx context.Context, style string) ([]domain.Product, error) {
	r.lastStyle = style
	return r.products, r.err
}

func (r *stubRepo) ListByColor(ctx context.Context, color string) ([]domain.Product, error) {
	r.lastColor = color
	return r.products, r.err
}

func (r *stubRepo) ReplaceAll(ctx context.Context, products []domain.Product) error {
	r.products = products
	return r.err
}

func TestGetProduct(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		repoErr  error
		wantCode string
	}{
		{"found", 2, nil, ""},
		{"missing", 99, nil, apperr.CodeNotFound},
		{"store down", 2, errors.New("conn reset"), apperr.CodePersistenceFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{products: []domain.Product{{ID: 1, Name: "Shirt"}, {ID: 2, Name: "Hoodie"}}, err: tt.repoErr}
			got, err := NewService(repo).GetProduct(context.Background(), tt.id)
			if tt.wantCode != "" {
				if !apperr.IsCode(err, tt.wantCode) {
					t.Fatalf("error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.Name != "Hoodie" {
				t.Errorf("got %+v", got)
			}
		})
	}
}

func TestProductFilters(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	svc := NewService(repo)

	if _, err := svc.ProductsByStyle(ctx, "  Bohemian "); err != nil {
		t.Fatal(err)
	}
	if repo.lastStyle != "Bohemian" {
		t.Errorf("style passed as %q", repo.lastStyle)
	}
	if _, err := svc.ProductsByColor(ctx, " Navy Blue"); err != nil {
		t.Fatal(err)
	}
	if repo.lastColor != "Navy Blue" {
		t.Errorf("color passed as %q", repo.lastColor)
	}

	if _, err := svc.ProductsByStyle(ctx, " "); !apperr.IsCode(err, apperr.CodeMissingField) {
		t.Errorf("blank style error = %v", err)
	}
	if _, err := svc.ProductsByColor(ctx, ""); !apperr.IsCode(err, apperr.CodeMissingField) {
		t.Errorf("blank color error = %v", err)
	}

	repo.err = errors.New("timeout")
	if _, err := svc.ListProducts(ctx); !apperr.IsCode(err, apperr.CodePersistenceFailure) {
		t.Errorf("list error = %v", err)
	}
}
