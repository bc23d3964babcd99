package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// listOrderedRows ejecuta una consulta id/item_order y materializa las filas
// en el orden en que el store las devuelve (desempate estable del
// resequenciador).
func listOrderedRows(ctx context.Context, db querier, query string, args ...any) ([]repository.OrderedRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ordered rows: %w", err)
	}
	defer rows.Close()
	var out []repository.OrderedRow
	for rows.Next() {
		var r repository.OrderedRow
		if err := rows.Scan(&r.ID, &r.Order); err != nil {
			return nil, fmt.Errorf("scan ordered row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// maxOrder ejecuta un SELECT MAX(item_order); ok=false cuando la partición
// está vacía (MAX devuelve NULL).
func maxOrder(ctx context.Context, db querier, query string, args ...any) (int, bool, error) {
	var max *int
	if err := db.QueryRow(ctx, query, args...).Scan(&max); err != nil {
		return 0, false, fmt.Errorf("max order: %w", err)
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}
