package http

import (
	"style_server/core/port/in"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	svc in.ProductService
}

func NewProductHandler(svc in.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) Register(r fiber.Router) {
	products := r.Group("/products")
	products.Get("/", h.List)
	products.Get("/style/:style", h.ByStyle)
	products.Get("/color/:color", h.ByColor)
	products.Get("/:id", h.Get)
}

// GET /api/products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.svc.ListProducts(c.UserContext())
	if err != nil {
		return err
	}
	return response.OK(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	product, err := h.svc.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return response.OK(c, product)
}

// GET /api/products/style/:style
func (h *ProductHandler) ByStyle(c *fiber.Ctx) error {
	style, err := textParam(c, "style")
	if err != nil {
		return err
	}

	products, err := h.svc.ProductsByStyle(c.UserContext(), style)
	if err != nil {
		return err
	}
	return response.OK(c, products)
}

// GET /api/products/color/:color
func (h *ProductHandler) ByColor(c *fiber.Ctx) error {
	color, err := textParam(c, "color")
	if err != nil {
		return err
	}

	products, err := h.svc.ProductsByColor(c.UserContext(), color)
	if err != nil {
		return err
	}
	return response.OK(c, products)
}
