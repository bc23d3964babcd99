package repository

import (
	"context"

	"github.com/tu-usuario/portal-socios/internal/domain/entity"
)

// OrderedRow es la proyección mínima que necesita el resequenciador:
// identidad y rango actual.
type OrderedRow struct {
	ID    string
	Order int
}

// OrderedStore es el puerto común de las colecciones con rango denso
// (libros, fichas de comité). category particiona la colección; para tablas
// sin partición se pasa cadena vacía.
type OrderedStore interface {
	// ListForUpdate devuelve las filas de la categoría ordenadas por rango
	// ascendente (desempate estable por orden de recuperación) bloqueándolas
	// hasta el fin de la transacción.
	ListForUpdate(ctx context.Context, category string) ([]OrderedRow, error)
	SetOrder(ctx context.Context, id string, order int) error
	// MaxOrder devuelve el rango máximo actual; ok=false si la categoría
	// está vacía.
	MaxOrder(ctx context.Context, category string) (max int, ok bool, err error)
}

// BookRepository define el puerto de persistencia para Book.
type BookRepository interface {
	List(ctx context.Context) ([]*entity.Book, error)
	Create(ctx context.Context, book *entity.Book) error
	// Delete devuelve deleted=false si el libro no existía.
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

// CommitteeRepository define el puerto de persistencia para CommitteeEntry.
type CommitteeRepository interface {
	ListByCategory(ctx context.Context, category string) ([]*entity.CommitteeEntry, error)
	Create(ctx context.Context, entry *entity.CommitteeEntry) error
	// Delete elimina la ficha y devuelve su categoría, para resequenciar la
	// partición afectada. deleted=false si no existía.
	Delete(ctx context.Context, id string) (category string, deleted bool, err error)
}
