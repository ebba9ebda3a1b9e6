package request

import (
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
)

// ServiceRequest accepts price and decoratorCommission as JSON numbers or
// numeric strings.
type ServiceRequest struct {
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Category            string         `json:"category"`
	Image               string         `json:"image"`
	Price               entities.Price `json:"price" swaggertype:"number"`
	DecoratorCommission entities.Price `json:"decoratorCommission" swaggertype:"number"`
	Status              string         `json:"status"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Title:               r.Title,
		Description:         r.Description,
		Category:            r.Category,
		Image:               r.Image,
		Price:               r.Price.Text(),
		DecoratorCommission: r.DecoratorCommission.Text(),
		Status:              entities.ServiceStatus(r.Status),
	}
}
