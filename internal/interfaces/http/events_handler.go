package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
	"github.com/tu-usuario/portal-socios/internal/application/events"
)

// EventsHandler maneja el calendario, las inscripciones y los exports.
type EventsHandler struct {
	uc     *events.UseCase
	export *events.ExportUseCase
}

// NewEventsHandler construye el handler.
func NewEventsHandler(uc *events.UseCase, export *events.ExportUseCase) *EventsHandler {
	return &EventsHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Listar eventos ordenados por fecha
// @Tags         events
// @Produce      json
// @Param        excludeExpiredEvents  query  bool  false  "Excluir eventos pasados"  default(true)
// @Param        limit  query  int  false  "Cantidad máxima"
// @Success      200  {array}  dto.EventResponse
// @Router       /api/events [get]
func (h *EventsHandler) List(c *fiber.Ctx) error {
	excludeExpired := c.Query("excludeExpiredEvents") != "false"
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.List(c.Context(), excludeExpired, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener evento por ID
// @Tags         events
// @Produce      json
// @Param        event_id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.EventResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{event_id} [get]
func (h *EventsHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("event_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "Datos del evento"
// @Success      201   {object}  dto.EventResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/events [post]
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Security     Bearer
// @Param        event_id  path  string  true  "ID del evento"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/events/{event_id} [delete]
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetRole(c), c.Params("event_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Subscribe godoc
// @Summary      Inscribirse a un evento
// @Tags         events
// @Security     Bearer
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/events/{event_id}/subscribe [post]
func (h *EventsHandler) Subscribe(c *fiber.Ctx) error {
	if err := h.uc.Subscribe(c.Context(), GetUserID(c), GetRole(c), c.Params("event_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Unsubscribe godoc
// @Summary      Desinscribirse de un evento (idempotente)
// @Tags         events
// @Security     Bearer
// @Success      204
// @Router       /api/events/{event_id}/subscribe [delete]
func (h *EventsHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.uc.Unsubscribe(c.Context(), GetUserID(c), c.Params("event_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Subscribers godoc
// @Summary      Listar inscritos de un evento
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SubscriberResponse
// @Router       /api/events/{event_id}/subscribe [get]
func (h *EventsHandler) Subscribers(c *fiber.Ctx) error {
	out, err := h.uc.ListSubscribers(c.Context(), c.Params("event_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ForceSubscribe godoc
// @Summary      Inscribir a otro usuario (admin)
// @Tags         admin
// @Security     Bearer
// @Param        userId  query  string  true  "Usuario a inscribir"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/events/{event_id}/subscribe [post]
func (h *EventsHandler) ForceSubscribe(c *fiber.Ctx) error {
	targetID := c.Query("userId")
	if targetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId es requerido"})
	}
	if err := h.uc.ForceSubscribe(c.Context(), GetUserID(c), GetRole(c), targetID, c.Params("event_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ForceUnsubscribe godoc
// @Summary      Desinscribir a otro usuario (admin)
// @Tags         admin
// @Security     Bearer
// @Param        userId  query  string  true  "Usuario a desinscribir"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/events/{event_id}/subscribe [delete]
func (h *EventsHandler) ForceUnsubscribe(c *fiber.Ctx) error {
	targetID := c.Query("userId")
	if targetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId es requerido"})
	}
	if err := h.uc.ForceUnsubscribe(c.Context(), GetUserID(c), GetRole(c), targetID, c.Params("event_id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AttendancePDF godoc
// @Summary      Hoja de asistencia en PDF (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/events/{event_id}/attendance.pdf [get]
func (h *EventsHandler) AttendancePDF(c *fiber.Ctx) error {
	out, err := h.export.AttendanceSheet(c.Context(), GetRole(c), c.Params("event_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

// SubscribersCSV godoc
// @Summary      Inscritos en CSV Windows-1252 (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      text/csv
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/events/{event_id}/subscribers.csv [get]
func (h *EventsHandler) SubscribersCSV(c *fiber.Ctx) error {
	out, err := h.export.SubscriberCSV(c.Context(), GetRole(c), c.Params("event_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=windows-1252")
	return c.Send(out)
}

// Feed genera el feed Atom público de próximos eventos.
func (h *EventsHandler) Feed(baseURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.export.Feed(c.Context(), baseURL, 50)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/atom+xml")
		return c.Send(out)
	}
}
