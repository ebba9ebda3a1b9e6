package request

import (
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
)

type CheckoutRequest struct {
	BookingID    string         `json:"bookingId"`
	ServiceTitle string         `json:"serviceTitle"`
	Price        entities.Price `json:"price" swaggertype:"number"`
	UserEmail    string         `json:"userEmail"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		BookingID:    r.BookingID,
		ServiceTitle: r.ServiceTitle,
		Price:        r.Price,
		UserEmail:    r.UserEmail,
	}
}
