package dto

// TokenResponse is returned by GET /jwt. AccessToken is empty when refused.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// AdminCheckResponse answers GET /users/admin/:email.
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// SellerCheckResponse answers GET /users/seller/:email.
type SellerCheckResponse struct {
	IsSeller bool `json:"isSeller"`
}
