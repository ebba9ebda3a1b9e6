package payments

import (
	"context"
	"errors"
	"log"
	"net/url"
	"os"
	"strings"

	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	defaultSiteDomain       = "http://localhost:5173"
	defaultCheckoutCurrency = "BRL"
	mockCheckoutIDPrefix    = "mock-"
)

// MercadoPagoGateway opens Checkout Pro preferences. The preference's
// init_point is the URL the client is redirected to.
type MercadoPagoGateway struct {
	client     preference.Client
	mockMode   bool
	siteDomain string
	currency   string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		siteDomain: strings.TrimRight(getenvDefault("SITE_DOMAIN", defaultSiteDomain), "/"),
		currency:   getenvDefault("CHECKOUT_CURRENCY", defaultCheckoutCurrency),
	}

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized currency=%s", g.currency)

	g.client = preference.NewClient(cfg)
	return g, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := mockCheckoutIDPrefix + req.BookingID
		log.Printf("[payment][gateway] mock checkout booking_id=%s", req.BookingID)
		return entities.CheckoutSession{ID: id, URL: g.successURL(req.BookingID)}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] checkout start booking_id=%s amount=%.2f", req.BookingID, req.Price)

	resp, err := g.client.Create(ctx, g.preferenceRequest(req))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed booking_id=%s err=%v", req.BookingID, err)
		return entities.CheckoutSession{}, err
	}
	if resp == nil || resp.InitPoint == "" {
		log.Printf("[payment][gateway] sdk returned no init_point booking_id=%s", req.BookingID)
		return entities.CheckoutSession{}, errors.New("mercado pago returned no checkout url")
	}
	log.Printf("[payment][gateway] checkout success booking_id=%s preference_id=%s", req.BookingID, resp.ID)

	return entities.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) preferenceRequest(req entities.CheckoutRequest) preference.Request {
	pr := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         req.BookingID,
				Title:      req.ServiceTitle,
				Quantity:   1,
				UnitPrice:  req.Price,
				CurrencyID: g.currency,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.successURL(req.BookingID),
			Failure: g.cancelURL(),
			Pending: g.cancelURL(),
		},
		AutoReturn:        "approved",
		ExternalReference: req.BookingID,
	}
	if req.UserEmail != "" {
		pr.Payer = &preference.PayerRequest{Email: req.UserEmail}
	}
	return pr
}

func (g *MercadoPagoGateway) successURL(bookingID string) string {
	return g.siteDomain + "/dashboard/payment-success?bookingId=" + url.QueryEscape(bookingID)
}

func (g *MercadoPagoGateway) cancelURL() string {
	return g.siteDomain + "/dashboard/payment-cancelled"
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
