package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/application/usecase"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
)

// SubmissionHandler HTTP endpoints for sale submissions.
type SubmissionHandler struct {
	uc *usecase.SubmissionUseCase
}

func NewSubmissionHandler(uc *usecase.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{uc: uc}
}

// Create godoc
// @Summary      Log a new sale
// @Description  Persists the sale and forwards it to the configured
// @Description  integrations in the background. The response reflects the
// @Description  row as stored, always status pending.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateSubmissionRequest  true  "sale payload"
// @Success      201   {object}  dto.SubmissionResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SubmissionHandler) Create(c *fiber.Ctx) error {
	identity := GetIdentity(c)
	if identity == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateSubmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
	}
	sub, verrs, err := h.uc.Create(c.Context(), identity, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to create sale"})
	}
	if verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(verrs))
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}

// List godoc
// @Summary      List sales
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        division   query  string  false  "division code, or all"
// @Param        startDate  query  string  false  "inclusive lower bound (YYYY-MM-DD)"
// @Param        endDate    query  string  false  "inclusive upper bound (YYYY-MM-DD)"
// @Success      200  {array}   dto.SubmissionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SubmissionHandler) List(c *fiber.Ctx) error {
	filters := usecase.ListFilters{
		Division:  c.Query("division"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	list, err := h.uc.List(c.Context(), filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch sales"})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Fetch one sale
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "sale ID"
// @Success      200  {object}  dto.SubmissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SubmissionHandler) GetByID(c *fiber.Ctx) error {
	sub, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to fetch sale"})
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	return c.JSON(sub)
}

// Update godoc
// @Summary      Edit a sale
// @Description  Partial edit of the stored sale. Sync status and synced_at
// @Description  are owned by the background sync and cannot be set here.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "sale ID"
// @Param        body  body      dto.UpdateSubmissionRequest  true  "fields to change"
// @Success      200   {object}  dto.SubmissionResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [patch]
func (h *SubmissionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubmissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
	}
	sub, verrs, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to update sale"})
	}
	if verrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewValidationError(verrs))
	}
	if sub == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
	}
	return c.JSON(sub)
}

// WorkOrder godoc
// @Summary      Printable work order
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "sale ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *SubmissionHandler) WorkOrder(c *fiber.Ctx) error {
	doc, err := h.uc.WorkOrderPDF(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sale not found"})
		}
		if errors.Is(err, domain.ErrNotConfigured) {
			return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "work order rendering is not enabled"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "failed to render work order"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="work-order-`+c.Params("id")+`.pdf"`)
	return c.Send(doc)
}
