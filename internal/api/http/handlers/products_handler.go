package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/domain"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/service"
	apperrors "github.com/spec-kit/marketplace-service/pkg/util/errorutil"
)

// ProductsHandler manages product listings.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(products *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: products}
}

// List handles GET /products?limit=.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.products.List(c.UserContext(), limit))
}

// ListAvailable handles GET /products/available?limit=.
func (h *ProductsHandler) ListAvailable(c *fiber.Ctx) error {
	limit, err := parseLimit(c)
	if err != nil {
		return err
	}
	return h.respond(c)(h.products.ListAvailable(c.UserContext(), limit))
}

// ListByCategory handles GET /products/category/:id.
func (h *ProductsHandler) ListByCategory(c *fiber.Ctx) error {
	return h.respond(c)(h.products.ListByCategory(c.UserContext(), c.Params("id")))
}

// ListBySeller handles GET /products/seller/:email.
func (h *ProductsHandler) ListBySeller(c *fiber.Ctx) error {
	return h.respond(c)(h.products.ListBySeller(c.UserContext(), c.Params("email")))
}

// ListAdvertised handles GET /products/advertise.
func (h *ProductsHandler) ListAdvertised(c *fiber.Ctx) error {
	return h.respond(c)(h.products.ListAdvertised(c.UserContext()))
}

// Create handles POST /products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.products.Create(c.UserContext(), callerEmail(c), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// Delete handles DELETE /products/delete/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	id, err := requireParam(c, "id")
	if err != nil {
		return err
	}
	res, err := h.products.Delete(c.UserContext(), callerEmail(c), id)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

// SetAdvertisement handles PUT /products/advertise?id=&advertisement=.
func (h *ProductsHandler) SetAdvertisement(c *fiber.Ctx) error {
	var q dto.AdvertiseQuery
	if err := c.QueryParser(&q); err != nil {
		return err
	}
	if q.ID == "" {
		return apperrors.NewValidationError("id required", nil)
	}
	ad, ok := domain.ParseAdvertisement(q.Advertisement)
	if !ok {
		return apperrors.NewValidationError("advertisement must be none or advertised", map[string]any{
			"advertisement": q.Advertisement,
		})
	}
	res, err := h.products.SetAdvertisement(c.UserContext(), callerEmail(c), q.ID, ad)
	if err != nil {
		return err
	}
	return c.JSON(res)
}

func (h *ProductsHandler) respond(c *fiber.Ctx) func([]domain.Document, error) error {
	return func(products []domain.Document, err error) error {
		if err != nil {
			return err
		}
		return c.JSON(products)
	}
}

func parseLimit(c *fiber.Ctx) (query.Option[int64], error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return query.None[int64](), err
	}
	return query.ParseLimit(q.Limit), nil
}
