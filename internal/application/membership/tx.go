package membership

import (
	"context"

	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que rol y período se escriben de
// forma atómica: nunca se observa un grant aplicado a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		codes repository.MembershipCodeRepository,
	) error) error
}
