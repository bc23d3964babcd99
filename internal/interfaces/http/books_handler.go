package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
)

// BooksHandler maneja el catálogo de libros.
type BooksHandler struct {
	uc *catalog.BooksUseCase
}

// NewBooksHandler construye el handler.
func NewBooksHandler(uc *catalog.BooksUseCase) *BooksHandler {
	return &BooksHandler{uc: uc}
}

// List godoc
// @Summary      Listar libros en orden de catálogo
// @Tags         books
// @Produce      json
// @Success      200  {array}  dto.BookResponse
// @Router       /api/books [get]
func (h *BooksHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Añadir libro al final del catálogo
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBookRequest  true  "Datos del libro"
// @Success      201   {object}  dto.BookResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/books [post]
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBookRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar libro y resequenciar el catálogo
// @Tags         books
// @Security     Bearer
// @Param        id  path  string  true  "ID del libro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/books/{id} [delete]
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
