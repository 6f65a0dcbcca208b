package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
)

// StatsHandler dashboard statistics endpoint.
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard sales statistics
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        division  query  string  false  "division code, or all"
// @Success      200  {object}  dto.StatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.uc.Get(c.Context(), c.Query("division"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch stats"})
	}
	return c.JSON(stats)
}
