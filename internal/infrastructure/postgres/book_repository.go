package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

var _ repository.BookRepository = (*BookRepo)(nil)
var _ repository.OrderedStore = (*BookRepo)(nil)

// BookRepo implementación de BookRepository y OrderedStore sobre PostgreSQL.
// Los libros son una única partición: el parámetro category se ignora.
type BookRepo struct {
	db querier
}

// NewBookRepository construye el adaptador del catálogo de libros.
func NewBookRepository(db querier) *BookRepo {
	return &BookRepo{db: db}
}

// List devuelve todos los libros en orden de rango.
func (r *BookRepo) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, caution, status, item_order FROM books ORDER BY item_order, id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	var list []*entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Caution, &b.Status, &b.ItemOrder); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Create persiste un libro nuevo.
func (r *BookRepo) Create(ctx context.Context, book *entity.Book) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO books (id, title, caution, status, item_order) VALUES ($1, $2, $3, $4, $5)`,
		book.ID, book.Title, book.Caution, book.Status, book.ItemOrder,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// Delete elimina un libro. deleted=false si no existía.
func (r *BookRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete book: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListForUpdate devuelve id y rango de todos los libros en orden ascendente,
// bloqueando las filas hasta el fin de la transacción.
func (r *BookRepo) ListForUpdate(ctx context.Context, _ string) ([]repository.OrderedRow, error) {
	return listOrderedRows(ctx, r.db,
		`SELECT id, item_order FROM books ORDER BY item_order, id FOR UPDATE`)
}

// SetOrder reescribe el rango de un libro.
func (r *BookRepo) SetOrder(ctx context.Context, id string, order int) error {
	_, err := r.db.Exec(ctx, `UPDATE books SET item_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		return fmt.Errorf("set book order: %w", err)
	}
	return nil
}

// MaxOrder devuelve el rango máximo actual; ok=false si no hay libros.
func (r *BookRepo) MaxOrder(ctx context.Context, _ string) (int, bool, error) {
	return maxOrder(ctx, r.db, `SELECT MAX(item_order) FROM books`)
}
