package http

import (
	"net/url"
	"strconv"

	"style_server/pkg/apperr"

	"github.com/gofiber/fiber/v2"
)

// int64Param parses a positive id path parameter.
func int64Param(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}

// textParam returns a percent-decoded path parameter.
func textParam(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return "", apperr.BadRequest("Invalid " + name)
	}
	return v, nil
}

func userIDParam(c *fiber.Ctx) (int64, error) {
	return int64Param(c, "userId")
}

// parseBody decodes the JSON body or fails with 400.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return nil
}
