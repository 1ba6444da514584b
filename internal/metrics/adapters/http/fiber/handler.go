package fiber

import (
	"context"
	"errors"
	"net/http"

	"dashboard-metrics-service/internal/metrics/core/domain"
	"dashboard-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GetDashboardMetricsUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardMetricsInput) (*domain.DashboardMetrics, error)
}

type MetricsHandler struct {
	uc     GetDashboardMetricsUseCase
	logger *zap.Logger
}

func NewMetricsHandler(uc GetDashboardMetricsUseCase, logger *zap.Logger) *MetricsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsHandler{uc: uc, logger: logger}
}

// GetDashboardMetrics godoc
// @Summary Dashboard metrics
// @Description Returns KPIs plus throughput, cycle time, error rate and WIP series for the selected range and the window before it
// @Tags Metrics
// @Produce json
// @Param range query string false "Range: 24h | 3d | 7d | 14d | 1m | 3m | 6m | 1y" default(24h)
// @Success 200 {object} DashboardMetricsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/metrics/dashboard [get]
func (h *MetricsHandler) GetDashboardMetrics(c *fiber.Ctx) error {
	rangeKey := c.Query("range", "")
	if rangeKey != "" && !domain.RangeKey(rangeKey).Valid() {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_range",
			Message: "range must be one of 24h, 3d, 7d, 14d, 1m, 3m, 6m, 1y",
		})
	}

	res, err := h.uc.Execute(c.UserContext(), usecase.GetDashboardMetricsInput{Range: rangeKey})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRangeKey):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: err.Error(),
			})
		default:
			h.logger.Error("dashboard metrics failed",
				zap.String("range", rangeKey),
				zap.Error(err),
			)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}
