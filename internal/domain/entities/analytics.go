package entities

// ProviderEarnings summarizes the completed and paid work of one decorator.
type ProviderEarnings struct {
	TotalEarnings float64   `json:"totalEarnings"`
	TaskCount     int       `json:"taskCount"`
	History       []Booking `json:"history"`
}

type ServiceDemand struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// AdminStats is revenue and demand across all paid bookings.
type AdminStats struct {
	TotalRevenue  float64         `json:"totalRevenue"`
	TotalBookings int             `json:"totalBookings"`
	ChartData     []ServiceDemand `json:"chartData"`
}

// CheckoutRequest is what the payment gateway needs to open a checkout.
type CheckoutRequest struct {
	BookingID    string
	ServiceTitle string
	Price        float64
	UserEmail    string
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
