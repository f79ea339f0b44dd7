package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/marketplace-service/internal/api/dto"
	"github.com/spec-kit/marketplace-service/internal/query"
	"github.com/spec-kit/marketplace-service/internal/service"
)

// OrdersHandler manages buyer orders.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /orders/:email?productId=.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return err
	}
	orders, err := h.orders.List(c.UserContext(), c.Params("email"), query.NonEmpty(q.ProductID))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// Create handles POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	doc, err := parseDocument(c)
	if err != nil {
		return err
	}
	res, err := h.orders.Place(c.UserContext(), callerEmail(c), doc)
	if err != nil {
		return err
	}
	return c.JSON(res)
}
