package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/service"
)

// UsersHandler exposes the user collection.
type UsersHandler struct {
	users *service.UserService
	roles *service.RoleService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService, roles *service.RoleService) *UsersHandler {
	return &UsersHandler{users: users, roles: roles}
}

// List handles GET /users?email=.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	var q dto.UserListQuery
	if err := c.QueryParser(&q); err != nil {
		return err
	}
	users, err := h.users.List(c.UserContext(), query.NonEmpty(q.Email))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Create handles POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.users.Register(c.UserContext(), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// IsAdmin handles GET /users/admin/:email.
func (h *UsersHandler) IsAdmin(c *fiber.Ctx) error {
	ok, err := h.roles.HasRole(c.UserContext(), c.Params("email"), domain.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminCheckResponse{IsAdmin: ok})
}

// IsSeller handles GET /users/seller/:email.
func (h *UsersHandler) IsSeller(c *fiber.Ctx) error {
	ok, err := h.roles.HasRole(c.UserContext(), c.Params("email"), domain.RoleSeller)
	if err != nil {
		return err
	}
	return c.JSON(dto.SellerCheckResponse{IsSeller: ok})
}

// ListBuyers handles GET /users/allBuyers.
func (h *UsersHandler) ListBuyers(c *fiber.Ctx) error {
	return h.listByRole(c, domain.RoleUser)
}

// ListSellers handles GET /users/allSellers.
func (h *UsersHandler) ListSellers(c *fiber.Ctx) error {
	return h.listByRole(c, domain.RoleSeller)
}

func (h *UsersHandler) listByRole(c *fiber.Ctx, role domain.Role) error {
	users, err := h.users.ListByRole(c.UserContext(), role)
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Delete handles DELETE /users/delete/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := requireParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.Delete(c.UserContext(), callerEmail(c), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Verify handles PUT /users/varify/:id.
func (h *UsersHandler) Verify(c *fiber.Ctx) error {
	id, err := requireParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.users.Verify(c.UserContext(), callerEmail(c), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
