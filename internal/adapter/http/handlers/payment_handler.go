package handlers

import (
	"log"
	"net/http"

	request "shajghor/internal/adapter/http/dto/request"
	response "shajghor/internal/adapter/http/dto/response"
	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler opens hosted checkout sessions.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckoutSession godoc
//
// @Summary  Open a checkout session
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    body  body      request.CheckoutRequest  true  "Booking to pay"
// @Success  200   {object}  response.CheckoutResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  503   {object}  pkg.HTTPError
// @Router   /payments/checkout [post]
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	log.Printf("[payment][handler] checkout start booking_id=%s", payload.BookingID)

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), middleware.IdentityFrom(c), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] checkout failed booking_id=%s err=%v", payload.BookingID, err)
		writeError(c, err)
		return
	}
	log.Printf("[payment][handler] checkout success booking_id=%s session_id=%s", payload.BookingID, session.ID)
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}
