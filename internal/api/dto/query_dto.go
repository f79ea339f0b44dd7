package dto

// ListQuery captures the optional limit on product listings.
type ListQuery struct {
	Limit string `query:"limit"`
}

// UserListQuery captures the optional email filter on GET /users.
type UserListQuery struct {
	Email string `query:"email"`
}

// OrderListQuery captures the optional product filter on GET /orders/:email.
type OrderListQuery struct {
	ProductID string `query:"productId"`
}

// AdvertiseQuery captures PUT /products/advertise parameters.
type AdvertiseQuery struct {
	ID            string `query:"id"`
	Advertisement string `query:"advertisement"`
}
