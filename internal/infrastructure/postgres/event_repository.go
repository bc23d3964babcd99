package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación del puerto EventRepository sobre PostgreSQL.
type EventRepo struct {
	db querier
}

// NewEventRepository construye el adaptador de eventos.
func NewEventRepository(db querier) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `id, title, author, category, description, date, image,
	inscription, inscription_group, inscription_limit, inscription_start, inscription_stop`

// Create persiste un evento nuevo.
func (r *EventRepo) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (id, title, author, category, description, date, image,
			inscription, inscription_group, inscription_limit, inscription_start, inscription_stop)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		event.ID, event.Title, event.AuthorID, event.Category, event.Description, event.Date, event.Image,
		event.InscriptionEnabled, event.InscriptionGroup.String(), event.InscriptionLimit,
		event.InscriptionStart, event.InscriptionStop,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// GetByID obtiene el evento con su conteo derivado de inscritos, o (nil, nil).
func (r *EventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `,
			(SELECT COUNT(*) FROM event_inscriptions WHERE event_id = events.id) AS subscribed_size
		FROM events WHERE id = $1`
	return r.scanEvent(r.db.QueryRow(ctx, query, id))
}

// LockByID es GetByID con bloqueo de fila. La subconsulta de conteo se hace
// aparte porque FOR UPDATE no admite agregados; con la fila del evento
// bloqueada, el conteo es estable hasta el commit frente a otros Subscribe
// que también pasan por aquí.
func (r *EventRepo) LockByID(ctx context.Context, id string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + `, 0 FROM events WHERE id = $1 FOR UPDATE`
	event, err := r.scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil || event == nil {
		return event, err
	}
	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM event_inscriptions WHERE event_id = $1`, id,
	).Scan(&event.SubscribedCount)
	if err != nil {
		return nil, fmt.Errorf("count inscriptions: %w", err)
	}
	return event, nil
}

// List devuelve eventos ordenados por fecha; si after no es nil excluye los
// anteriores a ese instante.
func (r *EventRepo) List(ctx context.Context, after *time.Time, limit int) ([]*entity.Event, error) {
	query := `
		SELECT ` + eventColumns + `,
			(SELECT COUNT(*) FROM event_inscriptions WHERE event_id = events.id) AS subscribed_size
		FROM events`
	args := []any{}
	if after != nil {
		query += ` WHERE date >= $1`
		args = append(args, *after)
	}
	query += ` ORDER BY date`
	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, event)
	}
	return list, rows.Err()
}

// Delete elimina un evento por ID.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepo) scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	var group string
	err := row.Scan(
		&e.ID, &e.Title, &e.AuthorID, &e.Category, &e.Description, &e.Date, &e.Image,
		&e.InscriptionEnabled, &group, &e.InscriptionLimit, &e.InscriptionStart, &e.InscriptionStop,
		&e.SubscribedCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.InscriptionGroup, _ = permission.ParseRole(group)
	return &e, nil
}
