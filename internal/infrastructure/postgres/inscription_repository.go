package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.InscriptionRepository = (*InscriptionRepo)(nil)

// InscriptionRepo implementación del puerto InscriptionRepository sobre
// PostgreSQL. La tabla event_inscriptions tiene PRIMARY KEY (user_id,
// event_id): la unicidad del par la garantiza el store, no la aplicación.
type InscriptionRepo struct {
	db querier
}

// NewInscriptionRepository construye el adaptador de inscripciones.
func NewInscriptionRepository(db querier) *InscriptionRepo {
	return &InscriptionRepo{db: db}
}

// Insert registra el par (usuario, evento). Par duplicado -> ErrConflict.
func (r *InscriptionRepo) Insert(ctx context.Context, userID, eventID string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO event_inscriptions (user_id, event_id) VALUES ($1, $2)`,
		userID, eventID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("ya inscrito: %w", domain.ErrConflict)
		}
		return fmt.Errorf("insert inscription: %w", err)
	}
	return nil
}

// Delete borra el par. Idempotente: cero filas afectadas no es error.
func (r *InscriptionRepo) Delete(ctx context.Context, userID, eventID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM event_inscriptions WHERE user_id = $1 AND event_id = $2`,
		userID, eventID,
	)
	if err != nil {
		return fmt.Errorf("delete inscription: %w", err)
	}
	return nil
}

// ListSubscribers devuelve los inscritos del evento en orden de inscripción.
func (r *InscriptionRepo) ListSubscribers(ctx context.Context, eventID string) ([]entity.Subscriber, error) {
	query := `
		SELECT users.id, users.name, users.email
		FROM users
		INNER JOIN event_inscriptions ei ON users.id = ei.user_id
		WHERE ei.event_id = $1
		ORDER BY ei.inscribed_at, users.id`
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()
	var subs []entity.Subscriber
	for rows.Next() {
		var s entity.Subscriber
		if err := rows.Scan(&s.UserID, &s.Name, &s.Email); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
