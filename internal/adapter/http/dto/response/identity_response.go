package response

import "shajghor/internal/domain/entities"

type TokenResponse struct {
	Token string `json:"token"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{ID: s.ID, URL: s.URL}
}

type PingResponse struct {
	Message string `json:"message"`
}
