package catalog_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria que implementa a la vez BookRepository, CommitteeRepository
// y OrderedStore, con contador de escrituras de rango para verificar que el
// resequenciado solo reescribe las filas que cambian.
// ──────────────────────────────────────────────────────────────────────────────

type fila struct {
	id       string
	category string
	order    int
}

type fakeStore struct {
	filas       []*fila
	setOrderOps int
}

func (s *fakeStore) ListForUpdate(_ context.Context, category string) ([]repository.OrderedRow, error) {
	var out []repository.OrderedRow
	for _, f := range s.filas {
		if f.category == category {
			out = append(out, repository.OrderedRow{ID: f.id, Order: f.order})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *fakeStore) SetOrder(_ context.Context, id string, order int) error {
	s.setOrderOps++
	for _, f := range s.filas {
		if f.id == id {
			f.order = order
			return nil
		}
	}
	return nil
}

func (s *fakeStore) MaxOrder(_ context.Context, category string) (int, bool, error) {
	max, found := 0, false
	for _, f := range s.filas {
		if f.category != category {
			continue
		}
		if !found || f.order > max {
			max, found = f.order, true
		}
	}
	return max, found, nil
}

// BookRepository sobre las mismas filas (categoría vacía).

func (s *fakeStore) List(_ context.Context) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, f := range s.filas {
		out = append(out, &entity.Book{ID: f.id, ItemOrder: f.order})
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, b *entity.Book) error {
	s.filas = append(s.filas, &fila{id: b.ID, order: b.ItemOrder})
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) (bool, error) {
	for i, f := range s.filas {
		if f.id == id {
			s.filas = append(s.filas[:i], s.filas[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// CommitteeRepository particionado por categoría.

type fakeCommitteeStore struct {
	fakeStore
}

func (s *fakeCommitteeStore) ListByCategory(_ context.Context, category string) ([]*entity.CommitteeEntry, error) {
	var out []*entity.CommitteeEntry
	for _, f := range s.filas {
		if f.category == category {
			out = append(out, &entity.CommitteeEntry{ID: f.id, Category: f.category, ItemOrder: f.order})
		}
	}
	return out, nil
}

func (s *fakeCommitteeStore) Create(_ context.Context, e *entity.CommitteeEntry) error {
	s.filas = append(s.filas, &fila{id: e.ID, category: e.Category, order: e.ItemOrder})
	return nil
}

func (s *fakeCommitteeStore) Delete(_ context.Context, id string) (string, bool, error) {
	for i, f := range s.filas {
		if f.id == id {
			s.filas = append(s.filas[:i], s.filas[i+1:]...)
			return f.category, true, nil
		}
	}
	return "", false, nil
}

// txDirecto ejecuta la función sobre el mismo store, sin transacción real.
type txDirecto struct {
	books     repository.OrderedStore
	committee repository.OrderedStore
}

func (t *txDirecto) RunBooks(ctx context.Context, fn func(repository.OrderedStore) error) error {
	return fn(t.books)
}

func (t *txDirecto) RunCommittee(ctx context.Context, fn func(repository.OrderedStore) error) error {
	return fn(t.committee)
}

func ordenes(s *fakeStore, category string) map[string]int {
	out := make(map[string]int)
	for _, f := range s.filas {
		if f.category == category {
			out[f.id] = f.order
		}
	}
	return out
}

// ── Libros ────────────────────────────────────────────────────────────────────

func TestBooks_DeleteResequenciaRangoDenso(t *testing.T) {
	store := &fakeStore{filas: []*fila{
		{id: "a", order: 0},
		{id: "b", order: 1},
		{id: "c", order: 2},
		{id: "d", order: 3},
	}}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	err := uc.Delete(context.Background(), permission.RoleCommittee, "b")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "c": 1, "d": 2}, ordenes(store, ""),
		"tras borrar el rango vuelve a ser denso 0..n-1")
}

// TestBooks_ResequenciaDesdeHuecos parte de una colección con huecos (estado
// que solo puede dejar una escritura externa) y verifica que una baja lo
// repara entero, escribiendo solo las filas cuyo rango cambia.
func TestBooks_ResequenciaDesdeHuecos(t *testing.T) {
	store := &fakeStore{filas: []*fila{
		{id: "a", order: 0},
		{id: "b", order: 2},
		{id: "c", order: 5},
	}}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	err := uc.Delete(context.Background(), permission.RoleCommittee, "c")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, ordenes(store, ""))
	assert.Equal(t, 1, store.setOrderOps, "solo 'b' cambia de rango; 'a' ya estaba en 0")
}

func TestBooks_CreateInsertaAlFinal(t *testing.T) {
	store := &fakeStore{filas: []*fila{
		{id: "a", order: 0},
		{id: "b", order: 1},
	}}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	resp, err := uc.Create(context.Background(), permission.RoleAdmin, dto.CreateBookRequest{
		Title:   "El Quijote",
		Caution: decimal.NewFromInt(15),
		Status:  "disponible",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemOrder)
}

func TestBooks_CreateEnCatalogoVacio(t *testing.T) {
	store := &fakeStore{}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	resp, err := uc.Create(context.Background(), permission.RoleAdmin, dto.CreateBookRequest{Title: "Primero"})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.ItemOrder, "la primera fila arranca en 0")
}

func TestBooks_PermisoRequerido(t *testing.T) {
	store := &fakeStore{filas: []*fila{{id: "a", order: 0}}}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	_, err := uc.Create(context.Background(), permission.RoleMember, dto.CreateBookRequest{Title: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), permission.RoleMember, "a")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBooks_DeleteInexistente(t *testing.T) {
	store := &fakeStore{}
	uc := catalog.NewBooksUseCase(store, store, &txDirecto{books: store})

	err := uc.Delete(context.Background(), permission.RoleAdmin, "fantasma")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Comité ────────────────────────────────────────────────────────────────────

// TestCommittee_DeleteSoloResequenciaSuCategoria verifica que cada categoría
// es una partición independiente: borrar en una no toca los rangos de otra.
func TestCommittee_DeleteSoloResequenciaSuCategoria(t *testing.T) {
	store := &fakeCommitteeStore{fakeStore: fakeStore{filas: []*fila{
		{id: "p1", category: "presidencia", order: 0},
		{id: "p2", category: "presidencia", order: 1},
		{id: "p3", category: "presidencia", order: 2},
		{id: "t1", category: "tesoreria", order: 0},
		{id: "t2", category: "tesoreria", order: 1},
	}}}
	uc := catalog.NewCommitteeUseCase(store, &store.fakeStore, &txDirecto{committee: &store.fakeStore})

	err := uc.Delete(context.Background(), permission.RoleCommittee, "p2")

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"p1": 0, "p3": 1}, ordenes(&store.fakeStore, "presidencia"))
	assert.Equal(t, map[string]int{"t1": 0, "t2": 1}, ordenes(&store.fakeStore, "tesoreria"),
		"la otra categoría no debe tocarse")
}

func TestCommittee_CreateAlFinalDeSuCategoria(t *testing.T) {
	store := &fakeCommitteeStore{fakeStore: fakeStore{filas: []*fila{
		{id: "p1", category: "presidencia", order: 0},
		{id: "t1", category: "tesoreria", order: 0},
		{id: "t2", category: "tesoreria", order: 1},
	}}}
	uc := catalog.NewCommitteeUseCase(store, &store.fakeStore, &txDirecto{committee: &store.fakeStore})

	resp, err := uc.Create(context.Background(), permission.RoleCommittee, dto.CreateCommitteeEntryRequest{
		Category: "tesoreria",
		Title:    "Vocal",
		Name:     "Ana",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemOrder, "el rango nuevo es max+1 dentro de su categoría")
}

func TestCommittee_PermisoRequerido(t *testing.T) {
	store := &fakeCommitteeStore{}
	uc := catalog.NewCommitteeUseCase(store, &store.fakeStore, &txDirecto{committee: &store.fakeStore})

	_, err := uc.Create(context.Background(), permission.RoleMember, dto.CreateCommitteeEntryRequest{Category: "x"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
