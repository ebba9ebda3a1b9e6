package handlers

import (
	"net/http"

	"shajghor/internal/adapter/http/middleware"
	"shajghor/internal/domain/entities"
	"shajghor/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// @Summary   Earnings of a decorator
// @Tags      decorator
// @Produce   json
// @Security  Bearer
// @Param     email  query     string  true  "Decorator email"
// @Success   200    {object}  entities.ProviderEarnings
// @Router    /decorator/earnings [get]
func (h *AnalyticsHandler) ProviderEarnings(c *gin.Context) {
	earnings, err := h.usecase.ProviderEarnings(c.Request.Context(), middleware.IdentityFrom(c), c.Query("email"))
	if err != nil {
		writeError(c, err)
		return
	}
	if earnings.History == nil {
		earnings.History = []entities.Booking{}
	}
	c.JSON(http.StatusOK, earnings)
}

// @Summary   Revenue and demand across paid bookings
// @Tags      admin
// @Produce   json
// @Security  Bearer
// @Success   200  {object}  entities.AdminStats
// @Router    /admin/stats [get]
func (h *AnalyticsHandler) AdminStats(c *gin.Context) {
	stats, err := h.usecase.AdminStats(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if stats.ChartData == nil {
		stats.ChartData = []entities.ServiceDemand{}
	}
	c.JSON(http.StatusOK, stats)
}
