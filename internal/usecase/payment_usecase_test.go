package usecase

import (
	"context"
	"errors"
	"testing"

	"shajghor/internal/domain/entities"
	mock_interfaces "shajghor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateCheckoutSession(t *testing.T) {
	t.Run("empty booking id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateCheckoutSession(context.Background(), entities.Identity{}, CheckoutInput{Price: "10"})
		if !errors.Is(err, ErrInvalidCheckoutBookingID) {
			t.Fatalf("expected ErrInvalidCheckoutBookingID, got %v", err)
		}
	})

	t.Run("non positive price", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		for _, p := range []entities.Price{"", "0", "abc", "-5"} {
			_, err := uc.CreateCheckoutSession(context.Background(), entities.Identity{}, CheckoutInput{BookingID: "bk-1", Price: p})
			if !errors.Is(err, ErrInvalidCheckoutPrice) {
				t.Fatalf("price %q: expected ErrInvalidCheckoutPrice, got %v", p, err)
			}
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil)
		_, err := uc.CreateCheckoutSession(context.Background(), entities.Identity{}, CheckoutInput{BookingID: "bk-1", Price: "10"})
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, errors.New("401"))

		_, err := uc.CreateCheckoutSession(context.Background(), entities.Identity{}, CheckoutInput{BookingID: "bk-1", Price: "10"})
		if !errors.Is(err, ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway)

		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), entities.CheckoutRequest{
			BookingID:    "bk-1",
			ServiceTitle: "Booking bk-1",
			Price:        1250.5,
			UserEmail:    "a@x.com",
		}).Return(entities.CheckoutSession{ID: "pref-1", URL: "https://pay.example/pref-1"}, nil)

		session, err := uc.CreateCheckoutSession(context.Background(), entities.Identity{}, CheckoutInput{
			BookingID: " bk-1 ",
			Price:     "1250.5",
			UserEmail: "a@x.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.URL != "https://pay.example/pref-1" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})
}
