package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
)

// CommitteeHandler maneja las fichas de la página del comité.
type CommitteeHandler struct {
	uc *catalog.CommitteeUseCase
}

// NewCommitteeHandler construye el handler.
func NewCommitteeHandler(uc *catalog.CommitteeUseCase) *CommitteeHandler {
	return &CommitteeHandler{uc: uc}
}

// List godoc
// @Summary      Listar fichas de una categoría en orden
// @Tags         committee
// @Produce      json
// @Param        category  query  string  true  "Categoría"
// @Success      200  {array}  dto.CommitteeEntryResponse
// @Router       /api/committee [get]
func (h *CommitteeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCategory(c.Context(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Añadir ficha al final de su categoría
// @Tags         committee
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCommitteeEntryRequest  true  "Datos de la ficha"
// @Success      201   {object}  dto.CommitteeEntryResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/committee [post]
func (h *CommitteeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCommitteeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Category == "" || in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category y title son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar ficha y resequenciar su categoría
// @Tags         committee
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ficha"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/committee/{id} [delete]
func (h *CommitteeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
