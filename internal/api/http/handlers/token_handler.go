package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/service"
)

// TokenHandler issues identity tokens.
type TokenHandler struct {
	tokens *service.TokenService
}

// NewTokenHandler constructs handler.
func NewTokenHandler(tokens *service.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles GET /jwt?email=.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	token, _, err := h.tokens.Issue(c.UserContext(), c.Query("email"))
	if errors.Is(err, service.ErrUnknownUser) {
		return c.Status(http.StatusForbidden).JSON(dto.TokenResponse{AccessToken: ""})
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenResponse{AccessToken: token})
}
