package request

import (
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

func (r SignupRequest) ToInput() usecase.SignupInput {
	return usecase.SignupInput{Name: r.Name, Email: r.Email, PhotoURL: r.PhotoURL}
}

type ProfileUpdateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r ProfileUpdateRequest) ToUpdate() entities.ProfileUpdate {
	return entities.ProfileUpdate{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

type AccountStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AccountRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type TokenRequest struct {
	Email string `json:"email" binding:"required"`
}
