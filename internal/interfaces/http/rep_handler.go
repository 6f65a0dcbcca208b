package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/pkg/validation"
)

// RepHandler HTTP endpoints for sales rep management.
type RepHandler struct {
	uc *usecase.RepUseCase
}

func NewRepHandler(uc *usecase.RepUseCase) *RepHandler {
	return &RepHandler{uc: uc}
}

// List godoc
// @Summary      List sales reps
// @Tags         sales-reps
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SalesRepResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales-reps [get]
func (h *RepHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch sales reps"})
	}
	return c.JSON(list)
}

// Me godoc
// @Summary      Current caller's rep profile
// @Description  Returns the rep row for the authenticated user, creating the
// @Description  first admin on a fresh install. Responds with a JSON null when
// @Description  the user has no rep profile yet.
// @Tags         sales-reps
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalesRepResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/sales-reps/me [get]
func (h *RepHandler) Me(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	rep, err := h.uc.Me(c.Context(), identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch sales rep"})
	}
	if rep == nil {
		return c.JSON(nil)
	}
	return c.JSON(rep)
}

// Create godoc
// @Summary      Create a sales rep
// @Tags         sales-reps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSalesRepRequest  true  "userId, name, role, division"
// @Success      201   {object}  dto.SalesRepResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales-reps [post]
func (h *RepHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalesRepRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
	}
	if verrs := validation.Struct(in); verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(verrs))
	}
	rep, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "a rep already exists for that user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to create sales rep"})
	}
	return c.Status(fiber.StatusCreated).JSON(rep)
}

// Update godoc
// @Summary      Edit a sales rep
// @Tags         sales-reps
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "rep ID"
// @Param        body  body      dto.UpdateSalesRepRequest  true  "fields to change"
// @Success      200   {object}  dto.SalesRepResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales-reps/{id} [patch]
func (h *RepHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSalesRepRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
	}
	if verrs := validation.Struct(in); verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(verrs))
	}
	rep, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to update sales rep"})
	}
	if rep == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sales rep not found"})
	}
	return c.JSON(rep)
}
