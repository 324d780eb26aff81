package http

import (
	"fmt"
	"strings"

	"style_server/core/port/out"
	"style_server/pkg/apperr"
	"style_server/pkg/logger"
	"style_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores clothing photos for the upload flow.
type UploadHandler struct {
	store    out.UploadStore
	maxBytes int64
}

func NewUploadHandler(store out.UploadStore, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, maxBytes: maxBytes}
}

func (h *UploadHandler) Register(r fiber.Router) {
	r.Post("/upload", h.Upload)
}

// POST /api/upload (multipart field "image")
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return apperr.BadRequest("No image file provided")
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return apperr.BadRequest(fmt.Sprintf("Image exceeds %d bytes", h.maxBytes))
	}
	if !strings.HasPrefix(fh.Header.Get(fiber.HeaderContentType), "image/") {
		return apperr.BadRequest("Only image uploads are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return apperr.BadRequest("Unreadable image upload")
	}
	defer f.Close()

	path, err := h.store.Save(c.UserContext(), fh.Filename, f)
	if err != nil {
		logger.WithContext(c.UserContext()).WithError(err).Error("Failed to store upload %q", fh.Filename)
		return apperr.Internal("Error processing image")
	}

	return response.OK(c, fiber.Map{
		"success":   true,
		"imagePath": path,
	})
}
