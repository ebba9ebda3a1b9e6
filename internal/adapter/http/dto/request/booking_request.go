package request

import (
	"strconv"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"
)

// BookingRequest is the client payload for a new booking. State fields a
// client may send (paymentStatus, status, decoratorEmail) are not read.
type BookingRequest struct {
	UserEmail    string         `json:"userEmail"`
	UserName     string         `json:"userName"`
	ServiceID    string         `json:"serviceId"`
	ServiceTitle string         `json:"serviceTitle"`
	ServiceName  string         `json:"serviceName"`
	Date         string         `json:"date"`
	Location     string         `json:"location"`
	Price        entities.Price `json:"price" swaggertype:"number"`
}

func (r BookingRequest) ToInput() usecase.BookingInput {
	return usecase.BookingInput{
		UserEmail:    strings.TrimSpace(r.UserEmail),
		UserName:     strings.TrimSpace(r.UserName),
		ServiceID:    strings.TrimSpace(r.ServiceID),
		ServiceTitle: strings.TrimSpace(r.ServiceTitle),
		ServiceName:  strings.TrimSpace(r.ServiceName),
		Date:         strings.TrimSpace(r.Date),
		Location:     strings.TrimSpace(r.Location),
		Price:        r.Price,
	}
}

// AssignmentRequest is the only shape accepted when assigning a decorator.
// Unknown fields are dropped by decoding into this struct.
type AssignmentRequest struct {
	DecoratorEmail string `json:"decoratorEmail"`
	Status         string `json:"status"`
}

func (r AssignmentRequest) ToAssignment() entities.Assignment {
	return entities.Assignment{
		DecoratorEmail: strings.TrimSpace(r.DecoratorEmail),
		Status:         entities.BookingStatus(strings.TrimSpace(r.Status)),
	}
}

// DecoratorStatusRequest accepts the progress value under either
// "decoratorStatus" or "status".
type DecoratorStatusRequest struct {
	DecoratorStatus string `json:"decoratorStatus"`
	Status          string `json:"status"`
}

func (r DecoratorStatusRequest) ResolveStatus() string {
	if v := strings.TrimSpace(r.DecoratorStatus); v != "" {
		return v
	}
	return strings.TrimSpace(r.Status)
}

// BookingListQuery is bound from the query string. Page and size stay text so
// that a malformed value falls back to the default instead of failing.
type BookingListQuery struct {
	Email string `form:"email"`
	Page  string `form:"page"`
	Size  string `form:"size"`
	Sort  string `form:"sort"`
}

func (q BookingListQuery) ToQuery() entities.BookingQuery {
	return entities.BookingQuery{
		Page: atoiOrZero(q.Page),
		Size: atoiOrZero(q.Size),
		Sort: strings.TrimSpace(q.Sort),
	}
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
