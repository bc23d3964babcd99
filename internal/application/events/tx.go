package events

import (
	"context"

	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// TxRunner ejecuta el control de admisión dentro de una transacción con
// repositorios atados a esa tx. El evento se bloquea con FOR UPDATE antes de
// contar e insertar: dos inscripciones concurrentes a un evento en el límite
// de aforo se serializan y solo una confirma.
type TxRunner interface {
	RunAdmission(ctx context.Context, fn func(
		events repository.EventRepository,
		inscriptions repository.InscriptionRepository,
	) error) error
}
