package permission

// Role es un nivel de identidad estático de la asociación. El valor numérico
// define el orden total de protección: un rol más alto protege a su titular
// frente a cambios hechos por actores de menor nivel.
type Role int

const (
	RoleGuest Role = iota
	RoleUser
	RoleMember
	RoleCommittee
	RoleAdmin
)

const roleUnknown = "UNKNOWN"

// AllRoles en orden de protección ascendente.
var AllRoles = []Role{RoleGuest, RoleUser, RoleMember, RoleCommittee, RoleAdmin}

// String devuelve el nombre canónico del rol (el mismo que guarda la DB).
func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "GUEST"
	case RoleUser:
		return "USER"
	case RoleMember:
		return "MEMBER"
	case RoleCommittee:
		return "COMMITTEE"
	case RoleAdmin:
		return "ADMIN"
	}
	return roleUnknown
}

// IsValid informa si el rol pertenece a la enumeración cerrada.
func (r Role) IsValid() bool {
	return r >= RoleGuest && r <= RoleAdmin
}

// ParseRole convierte el nombre canónico en Role. ok=false para nombres
// desconocidos; el llamador decide si eso es 403 o 400.
func ParseRole(name string) (Role, bool) {
	switch name {
	case "GUEST":
		return RoleGuest, true
	case "USER":
		return RoleUser, true
	case "MEMBER":
		return RoleMember, true
	case "COMMITTEE":
		return RoleCommittee, true
	case "ADMIN":
		return RoleAdmin, true
	}
	return RoleGuest, false
}
