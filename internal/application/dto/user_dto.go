package dto

import "time"

// RegisterRequest alta de cuenta.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse resumen público de un usuario.
type UserResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	Bio             string     `json:"bio,omitempty"`
	AvatarID        string     `json:"avatar_id,omitempty"`
	DiscordID       string     `json:"discord_id,omitempty"`
	MemberStart     *time.Time `json:"member_start"`
	MemberStop      *time.Time `json:"member_stop"`
	AccountCreation time.Time  `json:"account_creation"`
}

// GrantRoleRequest cuerpo del PATCH de roles del panel admin.
type GrantRoleRequest struct {
	Role          string `json:"role"`
	PeriodsNumber int    `json:"periodsNumber"`
}

// GrantRoleResponse resultado de otorgar rol y/o semestres.
type GrantRoleResponse struct {
	UserID      string     `json:"user_id"`
	Role        string     `json:"role"`
	RoleChanged bool       `json:"role_changed"`
	MemberStart *time.Time `json:"member_start"`
	MemberStop  *time.Time `json:"member_stop"`
}

// RedeemCodeRequest canje de un código de membresía.
type RedeemCodeRequest struct {
	ValidationToken string `json:"validation_token"`
}

// RedeemCodeResponse semestres otorgados y período resultante.
type RedeemCodeResponse struct {
	PeriodsNumber int        `json:"periodsNumber"`
	MemberStart   *time.Time `json:"member_start"`
	MemberStop    *time.Time `json:"member_stop"`
}
