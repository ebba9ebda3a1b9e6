package entities

import "time"

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type BookingStatus string

const (
	BookingStatusUnassigned BookingStatus = "unassigned"
	BookingStatusAssigned   BookingStatus = "assigned"
)

// Canonical decorator progress values. DecoratorStatus itself is an open
// string; only these two are read by the earnings aggregation.
const (
	DecoratorStatusInProgress = "in-progress"
	DecoratorStatusCompleted  = "Completed"
)

// Booking is a client's reservation of a service on a date.
//
// Storage model (DynamoDB):
//   - PK: _id
//   - GSI userEmail-index: userEmail
//   - GSI decoratorEmail-index: decoratorEmail
//
// ServiceTitle and Price are copied from the catalog when the booking is
// made and never refreshed, so analytics reflect the service as it was sold.
//
// Status (assignment) and PaymentStatus are independent tracks.
// PaymentStatus only ever moves unpaid -> paid.
type Booking struct {
	ID              string        `json:"_id"`
	UserEmail       string        `json:"userEmail"`
	UserName        string        `json:"userName,omitempty"`
	ServiceID       string        `json:"serviceId"`
	ServiceTitle    string        `json:"serviceTitle,omitempty"`
	ServiceName     string        `json:"serviceName,omitempty"`
	DecoratorEmail  *string       `json:"decoratorEmail"`
	Date            string        `json:"date"`
	Location        string        `json:"location,omitempty"`
	Price           Price         `json:"price,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Status          BookingStatus `json:"status"`
	DecoratorStatus *string       `json:"decoratorStatus"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Title returns the service title used to group bookings in statistics.
func (b Booking) Title() string {
	if b.ServiceTitle != "" {
		return b.ServiceTitle
	}
	return b.ServiceName
}

func (b Booking) AssignedTo(email string) bool {
	return b.DecoratorEmail != nil && *b.DecoratorEmail == email
}

func (b Booking) HasDecoratorStatus(status string) bool {
	return b.DecoratorStatus != nil && *b.DecoratorStatus == status
}

// Assignment is the only set of fields an admin may write when assigning a
// decorator.
type Assignment struct {
	DecoratorEmail string
	Status         BookingStatus
}

const (
	SortByDate          = "date"
	SortByPrice         = "price"
	SortByPaymentStatus = "paymentStatus"
)

// BookingQuery controls pagination and ordering of a user's bookings.
type BookingQuery struct {
	Page int
	Size int
	Sort string
}

// BookingPage is one page of bookings. TotalCount counts every booking that
// matched the filter, not just this page.
type BookingPage struct {
	Result     []Booking `json:"result"`
	TotalCount int       `json:"totalCount"`
}
