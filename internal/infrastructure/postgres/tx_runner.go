package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/events"
	"github.com/tu-usuario/portal-socios/internal/application/membership"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// Ensure TxRunner implements the application-layer runner ports.
var _ membership.TxRunner = (*TxRunner)(nil)
var _ events.TxRunner = (*TxRunner)(nil)
var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL, con
// repositorios atados a esa tx. Cada uso transaccional del núcleo tiene su
// método: el grant de rol+período, el control de admisión y los dos
// resequenciados.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) run(ctx context.Context, fn func(tx querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run ejecuta el callback de membresía con repos de usuarios y códigos
// atados a una tx: rol y período se confirman juntos o ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	codes repository.MembershipCodeRepository,
) error) error {
	return r.run(ctx, func(tx querier) error {
		return fn(NewUserRepository(tx), NewCodeRepository(tx))
	})
}

// RunAdmission ejecuta el control de admisión con el evento bloqueable y la
// inserción de inscripción en la misma tx.
func (r *TxRunner) RunAdmission(ctx context.Context, fn func(
	events repository.EventRepository,
	inscriptions repository.InscriptionRepository,
) error) error {
	return r.run(ctx, func(tx querier) error {
		return fn(NewEventRepository(tx), NewInscriptionRepository(tx))
	})
}

// RunBooks ejecuta el resequenciado del catálogo de libros como un solo lote.
func (r *TxRunner) RunBooks(ctx context.Context, fn func(store repository.OrderedStore) error) error {
	return r.run(ctx, func(tx querier) error {
		return fn(NewBookRepository(tx))
	})
}

// RunCommittee ejecuta el resequenciado de una categoría del comité como un
// solo lote.
func (r *TxRunner) RunCommittee(ctx context.Context, fn func(store repository.OrderedStore) error) error {
	return r.run(ctx, func(tx querier) error {
		return fn(NewCommitteeRepository(tx))
	})
}
