package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portal-socios/internal/application/auth"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
	"github.com/tu-usuario/portal-socios/internal/application/membership"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// RolesHandler maneja el panel admin de roles y membresías y el canje de
// códigos del propio usuario.
type RolesHandler struct {
	uc *membership.Coordinator
}

// NewRolesHandler construye el handler.
func NewRolesHandler(uc *membership.Coordinator) *RolesHandler {
	return &RolesHandler{uc: uc}
}

// Grantable godoc
// @Summary      Roles que el actor puede otorgar
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        userId  query  string  false  "Usuario objetivo (valida su rol protegido)"
// @Success      200  {array}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/roles/grant [get]
func (h *RolesHandler) Grantable(c *fiber.Ctx) error {
	roles, err := h.uc.GrantableRoles(c.Context(), GetRole(c), c.Query("userId"))
	if err != nil {
		return respondError(c, err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return c.JSON(names)
}

// Grant godoc
// @Summary      Otorgar rol y/o semestres de membresía
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        userId  query  string  true  "Usuario objetivo"
// @Param        body    body   dto.GrantRoleRequest  true  "Rol nuevo y semestres"
// @Success      200  {object}  dto.GrantRoleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/roles/grant [patch]
func (h *RolesHandler) Grant(c *fiber.Ctx) error {
	targetID := c.Query("userId")
	if targetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId es requerido"})
	}
	var in dto.GrantRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	newRole, ok := permission.ParseRole(strings.ToUpper(in.Role))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol desconocido: " + in.Role})
	}
	result, err := h.uc.GrantRole(c.Context(), GetRole(c), targetID, newRole, in.PeriodsNumber)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.GrantRoleResponse{
		UserID:      targetID,
		Role:        newRole.String(),
		RoleChanged: result.RoleChanged,
		MemberStart: result.Period.Start,
		MemberStop:  result.Period.Stop,
	})
}

// RedeemCode godoc
// @Summary      Canjear un código de membresía
// @Tags         membership
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RedeemCodeRequest  true  "Token del código"
// @Success      200  {object}  dto.RedeemCodeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/u/validate-membership-code [post]
func (h *RolesHandler) RedeemCode(c *fiber.Ctx) error {
	var in dto.RedeemCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ValidationToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "validation_token es requerido"})
	}
	granted, p, err := h.uc.RedeemCode(c.Context(), GetUserID(c), in.ValidationToken)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.RedeemCodeResponse{
		PeriodsNumber: granted,
		MemberStart:   p.Start,
		MemberStop:    p.Stop,
	})
}

// Profile godoc
// @Summary      Perfil de un usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *RolesHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.Profile(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(auth.ToUserResponse(user))
}
