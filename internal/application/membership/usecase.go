package membership

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/period"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// GrantResult resultado de GrantRole: el período resultante (campos nil si
// no hay ninguno) y si el rol cambió de verdad.
type GrantResult struct {
	Period      period.Period
	RoleChanged bool
}

// Coordinator orquesta transición de rol y actualización de período. Las dos
// escrituras (rol, período) van en una sola transacción.
type Coordinator struct {
	users   repository.UserRepository
	periods *period.Engine
	tx      TxRunner
	log     zerolog.Logger
}

// NewCoordinator construye el coordinador de membresías.
func NewCoordinator(users repository.UserRepository, periods *period.Engine, tx TxRunner, log zerolog.Logger) *Coordinator {
	return &Coordinator{users: users, periods: periods, tx: tx, log: log}
}

// GrantRole cambia el rol del usuario objetivo y/o le añade semestres de
// membresía. Precondiciones en orden, cortocircuito en la primera violada:
//  1. el actor debe poder otorgar newRole
//  2. si añade semestres, debe además poder otorgar membresías
//  3. el objetivo debe existir
//  4. si el rol actual difiere del nuevo, el actor debe poder otorgar también
//     el rol actual (protege de degradaciones por actores de menor nivel)
//
// "Limpiar al degradar" y "extender al otorgar" son ramas excluyentes: si el
// rol cambia a algo distinto de MEMBER se limpia el período guardado y los
// semestres pedidos en la misma llamada NO se aplican.
func (c *Coordinator) GrantRole(ctx context.Context, actor permission.Role, targetID string, newRole permission.Role, semesters int) (GrantResult, error) {
	grantPerm, ok := permission.GrantPermission(newRole)
	if !ok || !permission.Has(grantPerm, actor) {
		return GrantResult{}, fmt.Errorf("otorgar rol %s: %w", newRole, domain.ErrForbidden)
	}
	if semesters > 0 && !permission.Has(permission.GrantRoleMember, actor) {
		return GrantResult{}, fmt.Errorf("otorgar membresías: %w", domain.ErrForbidden)
	}

	target, err := c.users.GetByID(ctx, targetID)
	if err != nil {
		return GrantResult{}, err
	}
	if target == nil {
		return GrantResult{}, fmt.Errorf("usuario %s: %w", targetID, domain.ErrNotFound)
	}

	roleChanged := target.Role != newRole
	if roleChanged {
		currentPerm, ok := permission.GrantPermission(target.Role)
		if target.Role != permission.RoleGuest && (!ok || !permission.Has(currentPerm, actor)) {
			return GrantResult{}, fmt.Errorf("rol protegido %s: %w", target.Role, domain.ErrForbidden)
		}
	}

	result := GrantResult{Period: target.MemberPeriod(), RoleChanged: roleChanged}
	clearPeriod := roleChanged && newRole != permission.RoleMember

	err = c.tx.Run(ctx, func(users repository.UserRepository, _ repository.MembershipCodeRepository) error {
		if clearPeriod {
			result.Period = period.Period{}
			if err := users.UpdatePeriod(ctx, target.ID, nil, nil); err != nil {
				return err
			}
		} else if semesters > 0 {
			result.Period = c.periods.AddSemesters(target.MemberPeriod(), semesters)
			if err := users.UpdatePeriod(ctx, target.ID, result.Period.Start, result.Period.Stop); err != nil {
				return err
			}
		}
		if roleChanged {
			if err := users.UpdateRole(ctx, target.ID, newRole); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return GrantResult{}, err
	}

	c.log.Info().
		Str("target", target.ID).
		Str("role", newRole.String()).
		Bool("role_changed", roleChanged).
		Int("semesters", semesters).
		Msg("rol otorgado")
	return result, nil
}

// RedeemCode canjea un código de un solo uso y extiende el período del
// usuario con code.Periods semestres. El borrado del código y la extensión
// van en la misma transacción: un segundo canje del mismo token falla con
// NotFound porque el registro ya no existe. Aquí no se toca el rol, aunque
// GrantRole sí lo acopla al período (asimetría conocida, heredada).
func (c *Coordinator) RedeemCode(ctx context.Context, userID, token string) (granted int, p period.Period, err error) {
	user, err := c.users.GetByID(ctx, userID)
	if err != nil {
		return 0, period.Period{}, err
	}
	if user == nil {
		return 0, period.Period{}, fmt.Errorf("usuario %s: %w", userID, domain.ErrNotFound)
	}

	err = c.tx.Run(ctx, func(users repository.UserRepository, codes repository.MembershipCodeRepository) error {
		code, err := codes.GetByToken(ctx, token)
		if err != nil {
			return err
		}
		if code == nil {
			return fmt.Errorf("código: %w", domain.ErrNotFound)
		}
		deleted, err := codes.Delete(ctx, token)
		if err != nil {
			return err
		}
		if !deleted {
			// Otro canje concurrente lo consumió entre la lectura y el borrado.
			return fmt.Errorf("código: %w", domain.ErrNotFound)
		}
		granted = code.Periods
		p = c.periods.AddSemesters(user.MemberPeriod(), code.Periods)
		return users.UpdatePeriod(ctx, user.ID, p.Start, p.Stop)
	})
	if err != nil {
		return 0, period.Period{}, err
	}

	c.log.Info().Str("user", user.ID).Int("periods", granted).Msg("código de membresía canjeado")
	return granted, p, nil
}

// GrantableRoles lista los roles que el actor puede otorgar. Si targetID no
// está vacío, verifica antes que el actor pueda tocar el rol actual del
// objetivo (misma protección que la precondición 4 de GrantRole).
func (c *Coordinator) GrantableRoles(ctx context.Context, actor permission.Role, targetID string) ([]permission.Role, error) {
	if targetID != "" {
		target, err := c.users.GetByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, fmt.Errorf("usuario %s: %w", targetID, domain.ErrNotFound)
		}
		if target.Role != permission.RoleGuest {
			p, ok := permission.GrantPermission(target.Role)
			if !ok || !permission.Has(p, actor) {
				return nil, fmt.Errorf("rol protegido %s: %w", target.Role, domain.ErrForbidden)
			}
		}
	}
	return permission.Grantable(actor), nil
}

// Profile devuelve el usuario por id, o NotFound.
func (c *Coordinator) Profile(ctx context.Context, id string) (*entity.User, error) {
	user, err := c.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %s: %w", id, domain.ErrNotFound)
	}
	return user, nil
}
