package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/portal-socios/internal/domain/entity"
)

// EventRepository define el puerto de persistencia para Event.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	// GetByID devuelve el evento con SubscribedCount derivado, o (nil, nil).
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	// LockByID es GetByID con bloqueo de fila (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción: serializa el conteo-e-inserción del
	// control de admisión frente a inscripciones concurrentes.
	LockByID(ctx context.Context, id string) (*entity.Event, error)
	// List devuelve eventos ordenados por fecha; si after no es nil excluye
	// los anteriores a ese instante.
	List(ctx context.Context, after *time.Time, limit int) ([]*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

// InscriptionRepository persiste pares (usuario, evento).
type InscriptionRepository interface {
	// Insert devuelve domain.ErrConflict si el par ya existe (constraint de
	// unicidad en el store, no solo chequeo de aplicación).
	Insert(ctx context.Context, userID, eventID string) error
	// Delete es idempotente: borrar un par inexistente no es error.
	Delete(ctx context.Context, userID, eventID string) error
	ListSubscribers(ctx context.Context, eventID string) ([]entity.Subscriber, error)
}
