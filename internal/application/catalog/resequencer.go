package catalog

import (
	"context"
	"sort"

	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// TxRunner ejecuta una función con un OrderedStore atado a una transacción.
// El lote completo de reescritura de rangos se confirma entero o no se
// confirma nada; dos resequenciados concurrentes de la misma categoría se
// serializan por el bloqueo de filas de ListForUpdate.
type TxRunner interface {
	RunBooks(ctx context.Context, fn func(store repository.OrderedStore) error) error
	RunCommittee(ctx context.Context, fn func(store repository.OrderedStore) error) error
}

// resequence restaura el invariante de rango denso de una categoría: lee las
// filas en orden ascendente de rango (desempate estable por orden de
// recuperación) y asigna 0..n-1, escribiendo solo las que cambian.
// Es seguro llamarlo tras cualquier alta o baja.
func resequence(ctx context.Context, store repository.OrderedStore, category string) error {
	rows, err := store.ListForUpdate(ctx, category)
	if err != nil {
		return err
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Order < rows[j].Order })
	for i, row := range rows {
		if row.Order == i {
			continue
		}
		if err := store.SetOrder(ctx, row.ID, i); err != nil {
			return err
		}
	}
	return nil
}

// nextOrder devuelve el rango para una fila nueva: max+1, o 0 si la
// categoría está vacía (política "insertar al final").
func nextOrder(ctx context.Context, store repository.OrderedStore, category string) (int, error) {
	max, ok, err := store.MaxOrder(ctx, category)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return max + 1, nil
}
