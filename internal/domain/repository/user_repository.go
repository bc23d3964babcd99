package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// UserRepository define el puerto de persistencia para User.
// GetByID devuelve (nil, nil) cuando el usuario no existe: ausencia no es
// error de infraestructura, la decide el caso de uso.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateRole(ctx context.Context, id string, role permission.Role) error
	// UpdatePeriod reescribe member_start/member_stop. Ambos nil los limpia.
	UpdatePeriod(ctx context.Context, id string, start, stop *time.Time) error
}

// MembershipCodeRepository persiste códigos de membresía de un solo uso.
type MembershipCodeRepository interface {
	Create(ctx context.Context, code *entity.MembershipCode) error
	GetByToken(ctx context.Context, token string) (*entity.MembershipCode, error)
	// Delete elimina el código; deleted=false si ya no existía.
	Delete(ctx context.Context, token string) (deleted bool, err error)
}
