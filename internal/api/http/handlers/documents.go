package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/auth"
	"github.com/spec-kit/marketplace-service/internal/domain"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util/errorutil"
)

// parseDocument reads a JSON object body verbatim.
func parseDocument(c *fiber.Ctx) (domain.Document, error) {
	var doc domain.Document
	if err := c.BodyParser(&doc); err != nil || doc == nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	return doc, nil
}

// requireParam returns a non-empty path parameter.
func requireParam(c *fiber.Ctx, name string) (string, error) {
	v := c.Params(name)
	if v == "" {
		return "", apperrors.NewValidationError(name+" required", nil)
	}
	return v, nil
}

// callerEmail returns the authenticated email, or "" on public routes.
func callerEmail(c *fiber.Ctx) string {
	if id, ok := auth.IdentityFromContext(c); ok {
		return id.Email()
	}
	return ""
}
