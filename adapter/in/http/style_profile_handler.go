package http

import (
	"time"

	"style_server/core/domain"
	"style_server/core/port/in"
	"style_server/pkg/apperr"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler serves style profiles and color palettes.
type ProfileHandler struct {
	svc in.ProfileService
}

func NewProfileHandler(svc in.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Register(r fiber.Router) {
	users := r.Group("/users/:userId")
	users.Get("/styles", h.GetStyles)
	users.Post("/styles", h.ReplaceStyles)
	users.Get("/colors", h.GetColors)
	users.Put("/colors", h.ReplaceColors)
}

// =============================================================================
// Style profile
// =============================================================================

// GET /api/users/:userId/styles
func (h *ProfileHandler) GetStyles(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	prefs, err := h.svc.GetStyleProfile(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, prefs)
}

type replaceStylesRequest struct {
	Styles []domain.StylePreference `json:"styles"`
}

// POST /api/users/:userId/styles
func (h *ProfileHandler) ReplaceStyles(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var req replaceStylesRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.Styles == nil {
		return apperr.MissingField("styles")
	}

	if err := h.svc.ReplaceStyleProfile(c.UserContext(), userID, req.Styles); err != nil {
		return err
	}
	return response.Message(c, "Style preferences updated successfully")
}

// =============================================================================
// Color palette
// =============================================================================

// paletteBody is the flat wire shape of a palette row.
type paletteBody struct {
	UserID           int64      `json:"user_id,omitempty"`
	Color1           string     `json:"color_1"`
	Color1Percentage float64    `json:"color_1_percentage"`
	Color2           string     `json:"color_2"`
	Color2Percentage float64    `json:"color_2_percentage"`
	Color3           string     `json:"color_3"`
	Color3Percentage float64    `json:"color_3_percentage"`
	Color4           string     `json:"color_4"`
	Color4Percentage float64    `json:"color_4_percentage"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

func paletteToBody(p *domain.ColorPalette) paletteBody {
	b := paletteBody{
		UserID:           p.UserID,
		Color1:           p.Colors[0].Color,
		Color1Percentage: p.Colors[0].Percentage,
		Color2:           p.Colors[1].Color,
		Color2Percentage: p.Colors[1].Percentage,
		Color3:           p.Colors[2].Color,
		Color3Percentage: p.Colors[2].Percentage,
		Color4:           p.Colors[3].Color,
		Color4Percentage: p.Colors[3].Percentage,
	}
	if !p.CreatedAt.IsZero() {
		b.CreatedAt = &p.CreatedAt
	}
	return b
}

func (b paletteBody) toDomain(userID int64) *domain.ColorPalette {
	return &domain.ColorPalette{
		UserID: userID,
		Colors: [domain.PaletteSize]domain.ColorShare{
			{Color: b.Color1, Percentage: b.Color1Percentage},
			{Color: b.Color2, Percentage: b.Color2Percentage},
			{Color: b.Color3, Percentage: b.Color3Percentage},
			{Color: b.Color4, Percentage: b.Color4Percentage},
		},
	}
}

// GET /api/users/:userId/colors
func (h *ProfileHandler) GetColors(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	palette, err := h.svc.GetColorPalette(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return response.OK(c, paletteToBody(palette))
}

// PUT /api/users/:userId/colors
func (h *ProfileHandler) ReplaceColors(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	var body paletteBody
	if err := parseBody(c, &body); err != nil {
		return err
	}

	if err := h.svc.ReplaceColorPalette(c.UserContext(), body.toDomain(userID)); err != nil {
		return err
	}
	return response.Message(c, "Color palette updated successfully")
}
