package http

import (
	"style_server/core/domain"
	"style_server/core/port/in"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	svc in.FavoriteService
}

func NewFavoriteHandler(svc in.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

func (h *FavoriteHandler) Register(r fiber.Router) {
	fav := r.Group("/users/:userId/favorites")
	fav.Get("/", h.List)
	fav.Post("/", h.Add)
	fav.Delete("/:favoriteId", h.Remove)
}

// GET /api/users/:userId/favorites
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	favs, err := h.svc.ListFavorites(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, favs)
}

type addFavoriteRequest struct {
	ItemName string `json:"item_name"`
	ItemType string `json:"item_type"`
	Link     string `json:"link"`
}

// POST /api/users/:userId/favorites
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	fav := &domain.Favorite{
		UserID:   userID,
		ItemName: req.ItemName,
		ItemType: req.ItemType,
		Link:     req.Link,
	}
	if err := h.svc.AddFavorite(c.UserContext(), fav); err != nil {
		return err
	}
	return response.Created(c, fav)
}

// DELETE /api/users/:userId/favorites/:favoriteId
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	favID, err := int64Param(c, "favoriteId")
	if err != nil {
		return err
	}

	if err := h.svc.RemoveFavorite(c.UserContext(), userID, favID); err != nil {
		return err
	}
	return response.Message(c, "Favorite removed successfully")
}
