package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/pkg/validation"
)

// SettingsHandler HTTP endpoints for the integration settings row.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Read integration settings
// @Description  Returns {} when no settings row exists yet.
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch settings"})
	}
	if settings == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(settings)
}

// Update godoc
// @Summary      Update integration settings
// @Description  Upserts the single settings row. Only the fields present in
// @Description  the body change; last writer wins.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UpdateSettingsRequest  true  "fields to change"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/settings [patch]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
	}
	if verrs := validation.Struct(in); verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(verrs))
	}
	settings, err := h.uc.Update(c.Context(), identity.Subject, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to update settings"})
	}
	return c.JSON(settings)
}
