package permission

// Permission es una capacidad nombrada que se verifica antes de cada
// operación protegida. El conjunto por rol es configuración estática del
// proceso: no se crean ni destruyen permisos en runtime.
type Permission int

const (
	GrantRoleUser Permission = iota
	GrantRoleMember
	GrantRoleCommittee
	GrantRoleAdmin
	ModifyBooks
	ModifyCommitteePage
	CreateEvent
	ModifyEvent
	JoinEventUser
	JoinEventMember
	JoinEventCommittee
	SubscribeUserToEvent
	RemoveUserFromEvent
	SeeUsersPrivateInfo
)

// String devuelve el nombre canónico del permiso (para logs y respuestas).
func (p Permission) String() string {
	switch p {
	case GrantRoleUser:
		return "GRANT_ROLE_USER"
	case GrantRoleMember:
		return "GRANT_ROLE_MEMBER"
	case GrantRoleCommittee:
		return "GRANT_ROLE_COMMITTEE"
	case GrantRoleAdmin:
		return "GRANT_ROLE_ADMIN"
	case ModifyBooks:
		return "MODIFY_BOOKS"
	case ModifyCommitteePage:
		return "MODIFY_COMMITTEE_PAGE"
	case CreateEvent:
		return "CREATE_EVENT"
	case ModifyEvent:
		return "MODIFY_EVENT"
	case JoinEventUser:
		return "JOIN_EVENT_USER"
	case JoinEventMember:
		return "JOIN_EVENT_MEMBER"
	case JoinEventCommittee:
		return "JOIN_EVENT_COMMITTEE"
	case SubscribeUserToEvent:
		return "SUBSCRIBE_USER_TO_EVENT"
	case RemoveUserFromEvent:
		return "REMOVE_USER_FROM_EVENT"
	case SeeUsersPrivateInfo:
		return "SEE_USERS_PRIVATE_INFO"
	}
	return "UNKNOWN"
}

// rolePermissions es la tabla estática rol → permisos. Cada rol incluye de
// forma explícita lo que hereda; no hay herencia implícita en runtime.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleGuest: {},
	RoleUser: permSet(
		JoinEventUser,
	),
	RoleMember: permSet(
		JoinEventUser,
		JoinEventMember,
	),
	RoleCommittee: permSet(
		JoinEventUser,
		JoinEventMember,
		JoinEventCommittee,
		GrantRoleUser,
		GrantRoleMember,
		ModifyBooks,
		ModifyCommitteePage,
		CreateEvent,
		ModifyEvent,
		SeeUsersPrivateInfo,
	),
	RoleAdmin: permSet(
		JoinEventUser,
		JoinEventMember,
		JoinEventCommittee,
		GrantRoleUser,
		GrantRoleMember,
		GrantRoleCommittee,
		GrantRoleAdmin,
		ModifyBooks,
		ModifyCommitteePage,
		CreateEvent,
		ModifyEvent,
		SubscribeUserToEvent,
		RemoveUserFromEvent,
		SeeUsersPrivateInfo,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Has informa si el rol tiene el permiso. Falla cerrado: roles fuera de la
// enumeración (incluido el valor cero de un token corrupto fuera de rango)
// nunca obtienen acceso.
func Has(p Permission, r Role) bool {
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = perms[p]
	return ok
}

// GrantPermission devuelve el permiso requerido para otorgar el rol dado.
// Sustituye la convención "GRANT_ROLE_"+nombre por un switch exhaustivo:
// un rol sin permiso asociado (GUEST) no puede otorgarse nunca (ok=false).
func GrantPermission(target Role) (Permission, bool) {
	switch target {
	case RoleUser:
		return GrantRoleUser, true
	case RoleMember:
		return GrantRoleMember, true
	case RoleCommittee:
		return GrantRoleCommittee, true
	case RoleAdmin:
		return GrantRoleAdmin, true
	}
	return 0, false
}

// JoinPermission devuelve el permiso de auto-inscripción para el grupo de
// inscripción de un evento.
func JoinPermission(group Role) (Permission, bool) {
	switch group {
	case RoleUser:
		return JoinEventUser, true
	case RoleMember:
		return JoinEventMember, true
	case RoleCommittee:
		return JoinEventCommittee, true
	}
	return 0, false
}

// Grantable lista los roles que el actor tiene permiso de otorgar, en orden
// de protección ascendente. Se usa para construir el selector del panel admin.
func Grantable(actor Role) []Role {
	var out []Role
	for _, r := range AllRoles {
		p, ok := GrantPermission(r)
		if ok && Has(p, actor) {
			out = append(out, r)
		}
	}
	return out
}
