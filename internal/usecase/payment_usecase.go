package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"
)

var (
	ErrInvalidCheckoutBookingID  = errors.New("invalid booking id for checkout")
	ErrInvalidCheckoutPrice      = errors.New("invalid checkout price")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

type CheckoutInput struct {
	BookingID    string
	ServiceTitle string
	Price        entities.Price
	UserEmail    string
}

// IPaymentUseCase opens checkout sessions with the external gateway. Marking
// a booking paid is a booking transition (IBookingUseCase.MarkPaid).
type IPaymentUseCase interface {
	CreateCheckoutSession(ctx context.Context, caller entities.Identity, in CheckoutInput) (entities.CheckoutSession, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

func (u *PaymentUseCase) CreateCheckoutSession(ctx context.Context, _ entities.Identity, in CheckoutInput) (entities.CheckoutSession, error) {
	bookingID := strings.TrimSpace(in.BookingID)
	log.Printf("[payment][usecase] checkout start booking_id=%q price=%q", bookingID, in.Price)
	if bookingID == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutBookingID
	}
	price := in.Price.Float()
	if price <= 0 {
		return entities.CheckoutSession{}, ErrInvalidCheckoutPrice
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured booking_id=%s", bookingID)
		return entities.CheckoutSession{}, ErrPaymentGatewayUnavailable
	}

	title := strings.TrimSpace(in.ServiceTitle)
	if title == "" {
		title = "Booking " + bookingID
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, entities.CheckoutRequest{
		BookingID:    bookingID,
		ServiceTitle: title,
		Price:        price,
		UserEmail:    strings.TrimSpace(in.UserEmail),
	})
	if err != nil {
		log.Printf("[payment][usecase] checkout failed booking_id=%s err=%v", bookingID, err)
		return entities.CheckoutSession{}, upstream(err)
	}
	log.Printf("[payment][usecase] checkout success booking_id=%s session_id=%s", bookingID, session.ID)
	return session, nil
}
