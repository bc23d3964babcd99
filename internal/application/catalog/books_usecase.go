package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// BooksUseCase administra el catálogo de libros y mantiene su rango denso.
// Los libros viven en una única partición (categoría vacía).
type BooksUseCase struct {
	books      repository.BookRepository
	booksOrder repository.OrderedStore
	tx         TxRunner
}

// NewBooksUseCase construye el caso de uso del catálogo.
func NewBooksUseCase(books repository.BookRepository, booksOrder repository.OrderedStore, tx TxRunner) *BooksUseCase {
	return &BooksUseCase{books: books, booksOrder: booksOrder, tx: tx}
}

// List devuelve todos los libros.
func (uc *BooksUseCase) List(ctx context.Context) ([]dto.BookResponse, error) {
	books, err := uc.books.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out, nil
}

// Create inserta un libro al final del catálogo (rango max+1, o 0 si está
// vacío). Requiere ModifyBooks.
func (uc *BooksUseCase) Create(ctx context.Context, actor permission.Role, in dto.CreateBookRequest) (*dto.BookResponse, error) {
	if !permission.Has(permission.ModifyBooks, actor) {
		return nil, fmt.Errorf("modificar libros: %w", domain.ErrForbidden)
	}
	order, err := nextOrder(ctx, uc.booksOrder, "")
	if err != nil {
		return nil, err
	}
	book := &entity.Book{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Caution:   in.Caution,
		Status:    in.Status,
		ItemOrder: order,
	}
	if err := uc.books.Create(ctx, book); err != nil {
		return nil, err
	}
	resp := toBookResponse(book)
	return &resp, nil
}

// Delete elimina un libro y resequencia el catálogo para restaurar el rango
// denso 0..n-1. Requiere ModifyBooks.
func (uc *BooksUseCase) Delete(ctx context.Context, actor permission.Role, id string) error {
	if !permission.Has(permission.ModifyBooks, actor) {
		return fmt.Errorf("modificar libros: %w", domain.ErrForbidden)
	}
	deleted, err := uc.books.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("libro %s: %w", id, domain.ErrNotFound)
	}
	return uc.tx.RunBooks(ctx, func(store repository.OrderedStore) error {
		return resequence(ctx, store, "")
	})
}

func toBookResponse(b *entity.Book) dto.BookResponse {
	return dto.BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Caution:   b.Caution,
		Status:    b.Status,
		ItemOrder: b.ItemOrder,
	}
}
