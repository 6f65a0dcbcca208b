package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/callcenter"
	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
)

// CallCenterHandler voice-call history and stats, proxied from the calling
// platform. Upstream problems are reported inside a 200 body so the
// dashboard can render a degraded panel instead of an error page.
type CallCenterHandler struct {
	uc *callcenter.UseCase
}

func NewCallCenterHandler(uc *callcenter.UseCase) *CallCenterHandler {
	return &CallCenterHandler{uc: uc}
}

// Calls godoc
// @Summary      Recent voice calls
// @Tags         call-center
// @Security     Bearer
// @Produce      json
// @Param        limit     query     int     false  "max calls to return (capped at 100)"
// @Param        agent_id  query     string  false  "override the configured agent filter"
// @Success      200  {object}  dto.CallListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/call-center/calls [get]
func (h *CallCenterHandler) Calls(c *fiber.Ctx) error {
	resp, err := h.uc.ListCalls(c.Context(), c.QueryInt("limit"), c.Query("agent_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch calls"})
	}
	return c.JSON(resp)
}

// Stats godoc
// @Summary      Voice call statistics
// @Tags         call-center
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CallStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/call-center/stats [get]
func (h *CallCenterHandler) Stats(c *fiber.Ctx) error {
	resp, err := h.uc.Stats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch call stats"})
	}
	return c.JSON(resp)
}
