package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.CommitteeRepository = (*CommitteeRepo)(nil)
var _ repository.OrderedStore = (*CommitteeRepo)(nil)

// CommitteeRepo implementación de CommitteeRepository y OrderedStore sobre
// PostgreSQL (tabla committee_info, particionada por category).
type CommitteeRepo struct {
	db querier
}

// NewCommitteeRepository construye el adaptador de la página del comité.
func NewCommitteeRepository(db querier) *CommitteeRepo {
	return &CommitteeRepo{db: db}
}

// ListByCategory devuelve las fichas de la categoría en orden de rango.
func (r *CommitteeRepo) ListByCategory(ctx context.Context, category string) ([]*entity.CommitteeEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, category, title, name, image_id, item_order
		 FROM committee_info WHERE category = $1 ORDER BY item_order, id`, category)
	if err != nil {
		return nil, fmt.Errorf("list committee entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommitteeEntry
	for rows.Next() {
		var e entity.CommitteeEntry
		if err := rows.Scan(&e.ID, &e.Category, &e.Title, &e.Name, &e.ImageID, &e.ItemOrder); err != nil {
			return nil, fmt.Errorf("scan committee entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create persiste una ficha nueva.
func (r *CommitteeRepo) Create(ctx context.Context, entry *entity.CommitteeEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO committee_info (id, category, title, name, image_id, item_order)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Category, entry.Title, entry.Name, entry.ImageID, entry.ItemOrder,
	)
	if err != nil {
		return fmt.Errorf("insert committee entry: %w", err)
	}
	return nil
}

// Delete elimina la ficha y devuelve su categoría para resequenciar.
// deleted=false si no existía.
func (r *CommitteeRepo) Delete(ctx context.Context, id string) (string, bool, error) {
	var category string
	err := r.db.QueryRow(ctx,
		`DELETE FROM committee_info WHERE id = $1 RETURNING category`, id,
	).Scan(&category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("delete committee entry: %w", err)
	}
	return category, true, nil
}

// ListForUpdate devuelve id y rango de las fichas de la categoría en orden
// ascendente, bloqueando las filas hasta el fin de la transacción.
func (r *CommitteeRepo) ListForUpdate(ctx context.Context, category string) ([]repository.OrderedRow, error) {
	return listOrderedRows(ctx, r.db,
		`SELECT id, item_order FROM committee_info WHERE category = $1 ORDER BY item_order, id FOR UPDATE`,
		category)
}

// SetOrder reescribe el rango de una ficha.
func (r *CommitteeRepo) SetOrder(ctx context.Context, id string, order int) error {
	_, err := r.db.Exec(ctx, `UPDATE committee_info SET item_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return fmt.Errorf("set committee entry order: %w", err)
	}
	return nil
}

// MaxOrder devuelve el rango máximo de la categoría; ok=false si está vacía.
func (r *CommitteeRepo) MaxOrder(ctx context.Context, category string) (int, bool, error) {
	return maxOrder(ctx, r.db,
		`SELECT MAX(item_order) FROM committee_info WHERE category = $1`, category)
}
