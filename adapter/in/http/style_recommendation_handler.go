package http

import (
	"style_server/core/domain"
	"style_server/core/port/in"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler serves catalog lookups.
type RecommendationHandler struct {
	svc in.RecommendationService
}

func NewRecommendationHandler(svc in.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

func (h *RecommendationHandler) Register(r fiber.Router) {
	rec := r.Group("/recommendations")
	rec.Post("/", h.Recommend)
	rec.Get("/categories", h.Categories)
	rec.Get("/:slug", h.RecommendBySlug)
}

type recommendRequest struct {
	ClothingType string `json:"clothingType"`
	Color        string `json:"color"`
}

// Recommend resolves a clothing type and color into four variants.
// POST /api/recommendations
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	set, err := h.svc.Recommend(c.UserContext(), req.ClothingType, req.Color)
	if err != nil {
		return err
	}
	return response.OK(c, set)
}

// RecommendBySlug is the upload-flow shortcut keyed by category slug.
// GET /api/recommendations/:slug
func (h *RecommendationHandler) RecommendBySlug(c *fiber.Ctx) error {
	set, err := h.svc.RecommendBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return response.OK(c, set)
}

type categoryView struct {
	domain.Category
	Key string `json:"category"`
}

// Categories lists the allow-listed categories.
// GET /api/recommendations/categories
func (h *RecommendationHandler) Categories(c *fiber.Ctx) error {
	cats := h.svc.Categories()
	views := make([]categoryView, len(cats))
	for i, cat := range cats {
		views[i] = categoryView{Category: cat, Key: cat.Key()}
	}
	return response.OK(c, fiber.Map{"categories": views})
}
