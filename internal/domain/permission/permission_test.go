package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// ──────────────────────────────────────────────────────────────────────────────
// La tabla rol → permisos es configuración estática del proceso. Estos tests
// fijan el contrato: qué puede otorgar cada rol, que la verificación falla
// cerrada para roles fuera de la enumeración, y que los permisos de grant se
// resuelven por switch exhaustivo (no existe permiso para otorgar GUEST).
// ──────────────────────────────────────────────────────────────────────────────

func TestHas_MatrizDeGrants(t *testing.T) {
	cases := []struct {
		nombre string
		actor  permission.Role
		perm   permission.Permission
		quiere bool
	}{
		{"guest no otorga nada", permission.RoleGuest, permission.GrantRoleUser, false},
		{"user no otorga nada", permission.RoleUser, permission.GrantRoleUser, false},
		{"member no otorga nada", permission.RoleMember, permission.GrantRoleUser, false},
		{"committee otorga USER", permission.RoleCommittee, permission.GrantRoleUser, true},
		{"committee otorga MEMBER", permission.RoleCommittee, permission.GrantRoleMember, true},
		{"committee no otorga COMMITTEE", permission.RoleCommittee, permission.GrantRoleCommittee, false},
		{"committee no otorga ADMIN", permission.RoleCommittee, permission.GrantRoleAdmin, false},
		{"admin otorga COMMITTEE", permission.RoleAdmin, permission.GrantRoleCommittee, true},
		{"admin otorga ADMIN", permission.RoleAdmin, permission.GrantRoleAdmin, true},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.quiere, permission.Has(tc.perm, tc.actor))
		})
	}
}

// TestHas_FallaCerrado verifica que un rol fuera de la enumeración (p. ej.
// deserializado de un token corrupto) nunca obtiene acceso.
func TestHas_FallaCerrado(t *testing.T) {
	invalido := permission.Role(99)
	assert.False(t, invalido.IsValid())

	for _, p := range []permission.Permission{
		permission.GrantRoleUser,
		permission.ModifyBooks,
		permission.JoinEventUser,
		permission.SeeUsersPrivateInfo,
	} {
		assert.False(t, permission.Has(p, invalido),
			"un rol inválido no debe tener el permiso %s", p)
	}
}

func TestGrantPermission_GuestNoOtorgable(t *testing.T) {
	_, ok := permission.GrantPermission(permission.RoleGuest)
	assert.False(t, ok, "no existe permiso para otorgar GUEST")
}

func TestGrantPermission_RolesOtorgables(t *testing.T) {
	cases := []struct {
		target permission.Role
		quiere permission.Permission
	}{
		{permission.RoleUser, permission.GrantRoleUser},
		{permission.RoleMember, permission.GrantRoleMember},
		{permission.RoleCommittee, permission.GrantRoleCommittee},
		{permission.RoleAdmin, permission.GrantRoleAdmin},
	}
	for _, tc := range cases {
		p, ok := permission.GrantPermission(tc.target)
		require.True(t, ok, "debe existir permiso para otorgar %s", tc.target)
		assert.Equal(t, tc.quiere, p)
	}
}

func TestJoinPermission_GruposDeInscripcion(t *testing.T) {
	p, ok := permission.JoinPermission(permission.RoleUser)
	require.True(t, ok)
	assert.Equal(t, permission.JoinEventUser, p)

	p, ok = permission.JoinPermission(permission.RoleMember)
	require.True(t, ok)
	assert.Equal(t, permission.JoinEventMember, p)

	p, ok = permission.JoinPermission(permission.RoleCommittee)
	require.True(t, ok)
	assert.Equal(t, permission.JoinEventCommittee, p)

	// GUEST y ADMIN no son grupos de inscripción válidos.
	_, ok = permission.JoinPermission(permission.RoleGuest)
	assert.False(t, ok)
	_, ok = permission.JoinPermission(permission.RoleAdmin)
	assert.False(t, ok)
}

// TestGrantable_PorActor fija la lista que alimenta el selector de roles del
// panel de administración, en orden de protección ascendente.
func TestGrantable_PorActor(t *testing.T) {
	assert.Empty(t, permission.Grantable(permission.RoleUser))
	assert.Empty(t, permission.Grantable(permission.RoleMember))

	assert.Equal(t,
		[]permission.Role{permission.RoleUser, permission.RoleMember},
		permission.Grantable(permission.RoleCommittee))

	assert.Equal(t,
		[]permission.Role{permission.RoleUser, permission.RoleMember, permission.RoleCommittee, permission.RoleAdmin},
		permission.Grantable(permission.RoleAdmin))
}

// ── Role: nombres canónicos ───────────────────────────────────────────────────

func TestParseRole_IdaYVuelta(t *testing.T) {
	for _, r := range permission.AllRoles {
		parsed, ok := permission.ParseRole(r.String())
		require.True(t, ok, "el nombre canónico %q debe parsear", r.String())
		assert.Equal(t, r, parsed)
	}
}

func TestParseRole_Desconocido(t *testing.T) {
	_, ok := permission.ParseRole("SUPERADMIN")
	assert.False(t, ok)

	// ParseRole es sensible a mayúsculas: la normalización es del handler.
	_, ok = permission.ParseRole("admin")
	assert.False(t, ok)
}
