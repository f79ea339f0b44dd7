package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/service"
)

// CategoriesHandler serves category reference data.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List handles GET /categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// GetByID handles GET /categories/id/:id. A miss renders null.
func (h *CategoriesHandler) GetByID(c *fiber.Ctx) error {
	category, err := h.categories.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// GetByName handles GET /categories/:name. A miss renders null.
func (h *CategoriesHandler) GetByName(c *fiber.Ctx) error {
	category, err := h.categories.GetByName(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return c.JSON(category)
}
