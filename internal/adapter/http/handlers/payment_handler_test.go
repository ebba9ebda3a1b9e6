package handlers

import (
	"net/http"
	"testing"

	"shajghor/internal/adapter/http/handlers/mocks"
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateCheckoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		body     string
		setup    func(m *mocks.MockIPaymentUseCase)
		wantCode int
		wantBody string
	}{
		{name: "invalid json", body: "{", wantCode: http.StatusBadRequest},
		{
			name: "zero price",
			body: `{"bookingId":"bk-1","price":0}`,
			setup: func(m *mocks.MockIPaymentUseCase) {
				m.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrInvalidCheckoutPrice)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "gateway not configured",
			body: `{"bookingId":"bk-1","price":10}`,
			setup: func(m *mocks.MockIPaymentUseCase) {
				m.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrPaymentGatewayUnavailable)
			},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "session opened",
			body: `{"bookingId":"bk-1","serviceTitle":"Wedding","price":"1250.5","userEmail":"alice@x.com"}`,
			setup: func(m *mocks.MockIPaymentUseCase) {
				want := usecase.CheckoutInput{BookingID: "bk-1", ServiceTitle: "Wedding", Price: entities.PriceFromString("1250.5"), UserEmail: "alice@x.com"}
				m.EXPECT().CreateCheckoutSession(gomock.Any(), entities.Identity{}, want).
					Return(entities.CheckoutSession{ID: "pref-1", URL: "https://checkout.example/pref-1"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"id":"pref-1","url":"https://checkout.example/pref-1"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIPaymentUseCase(ctrl)
			if tc.setup != nil {
				tc.setup(uc)
			}
			h := NewPaymentHandler(uc)

			r := newRouter(entities.Identity{})
			r.POST("/v1/payments/checkout", h.CreateCheckoutSession)

			w := doRequest(r, http.MethodPost, "/v1/payments/checkout", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if tc.wantBody != "" && w.Body.String() != tc.wantBody {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
