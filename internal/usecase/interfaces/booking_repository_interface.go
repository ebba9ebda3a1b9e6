package interfaces

import (
	"context"

	"shajghor/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Every mutation is a single-item atomic update conditioned on the item
// existing. A zero Booking (empty ID) means the booking was not found.
// Concurrent writers are last-write-wins.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ListByUserEmail(ctx context.Context, email string) ([]entities.Booking, error)
	ListByDecoratorEmail(ctx context.Context, email string) ([]entities.Booking, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
	Assign(ctx context.Context, id string, a entities.Assignment) (entities.Booking, error)
	UpdateDecoratorStatus(ctx context.Context, id string, status string) (entities.Booking, error)
	MarkPaid(ctx context.Context, id string) (entities.Booking, error)
}
