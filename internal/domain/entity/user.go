package entity

import (
	"time"

	"github.com/tu-usuario/portal-socios/internal/domain/period"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// User representa una cuenta del portal. El núcleo solo lee y reescribe
// condicionalmente Role, MemberStart y MemberStop; el resto es dato de perfil
// propiedad de la capa de persistencia.
type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    string
	Role            permission.Role
	Bio             string
	AvatarID        string
	DiscordID       string
	MemberStart     *time.Time
	MemberStop      *time.Time
	AccountCreation time.Time
}

// MemberPeriod devuelve el período de membresía guardado como value object.
func (u *User) MemberPeriod() period.Period {
	return period.Period{Start: u.MemberStart, Stop: u.MemberStop}
}
