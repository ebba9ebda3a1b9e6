package interfaces

import (
	"context"

	"shajghor/internal/domain/entities"
)

// IPaymentGateway abstracts the external checkout provider (Mercado Pago).
//
// The only contract is "amount + identifiers in, redirect URL out". Whether
// money was actually received is the gateway's concern; the booking side
// trusts the success callback.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
}
