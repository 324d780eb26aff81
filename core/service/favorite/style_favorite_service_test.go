package favorite

import (
	"context"
	"errors"
	"testing"

	"style_server/core/domain"
	"style_server/pkg/apperr"
)

type stubRepo struct {
	createErr error
	deleteErr error
	created   []domain.Favorite
}

func (r *stubRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return r.created, nil
}

func (r *stubRepo) Create(ctx context.Context, fav *domain.Favorite) error {
	if r.createErr != nil {
		return r.createErr
	}
	fav.ID = int64(len(r.created) + 1)
	r.created = append(r.created, *fav)
	return nil
}

func (r *stubRepo) Delete(ctx context.Context, userID, favoriteID int64) error {
	return r.deleteErr
}

func TestAddFavorite(t *testing.T) {
	tests := []struct {
		name     string
		fav      domain.Favorite
		repoErr  error
		wantCode string
	}{
		{"created", domain.Favorite{UserID: 1, ItemName: " Olive Hoodie ", ItemType: "Hoodie"}, nil, ""},
		{"missing name", domain.Favorite{UserID: 1}, nil, apperr.CodeMissingField},
		{"duplicate", domain.Favorite{UserID: 1, ItemName: "x"}, domain.ErrDuplicate, apperr.CodeAlreadyExists},
		{"store down", domain.Favorite{UserID: 1, ItemName: "x"}, errors.New("conn reset"), apperr.CodePersistenceFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{createErr: tt.repoErr}
			svc := NewService(repo)

			fav := tt.fav
			err := svc.AddFavorite(context.Background(), &fav)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("AddFavorite() error = %v", err)
				}
				if fav.ID == 0 || fav.ItemName != "Olive Hoodie" {
					t.Errorf("favorite = %+v", fav)
				}
				return
			}
			if !apperr.IsCode(err, tt.wantCode) {
				t.Errorf("error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestRemoveFavorite_NotFound(t *testing.T) {
	svc := NewService(&stubRepo{deleteErr: domain.ErrNotFound})

	err := svc.RemoveFavorite(context.Background(), 1, 99)
	if apperr.GetHTTPStatus(err) != 404 {
		t.Errorf("status = %d, want 404", apperr.GetHTTPStatus(err))
	}
}
