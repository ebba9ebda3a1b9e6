package entities

import "time"

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service is an offering in the catalog.
//
// Price and DecoratorCommission are always stored as numbers; string input is
// parsed before it reaches the repository.
type Service struct {
	ID                  string        `json:"_id"`
	Title               string        `json:"title"`
	Description         string        `json:"description,omitempty"`
	Category            string        `json:"category,omitempty"`
	Image               string        `json:"image,omitempty"`
	Price               float64       `json:"price"`
	DecoratorCommission float64       `json:"decoratorCommission"`
	Status              ServiceStatus `json:"status"`
	AddedBy             string        `json:"addedBy"`
	TotalBookings       int           `json:"totalBookings"`
	CreatedAt           time.Time     `json:"createdAt"`
}

// VisibleTo reports whether a viewer may see the service. Only admins see
// inactive services.
func (s Service) VisibleTo(isAdmin bool) bool {
	return isAdmin || s.Status == ServiceStatusActive
}
