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

// CommitteeUseCase administra las fichas de la página del comité. Cada
// categoría es una partición independiente con su propio rango denso.
type CommitteeUseCase struct {
	entries      repository.CommitteeRepository
	entriesOrder repository.OrderedStore
	tx           TxRunner
}

// NewCommitteeUseCase construye el caso de uso de la página del comité.
func NewCommitteeUseCase(entries repository.CommitteeRepository, entriesOrder repository.OrderedStore, tx TxRunner) *CommitteeUseCase {
	return &CommitteeUseCase{entries: entries, entriesOrder: entriesOrder, tx: tx}
}

// ListByCategory devuelve las fichas de una categoría en orden de rango.
func (uc *CommitteeUseCase) ListByCategory(ctx context.Context, category string) ([]dto.CommitteeEntryResponse, error) {
	entries, err := uc.entries.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommitteeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toCommitteeResponse(e))
	}
	return out, nil
}

// Create inserta una ficha al final de su categoría. Requiere
// ModifyCommitteePage.
func (uc *CommitteeUseCase) Create(ctx context.Context, actor permission.Role, in dto.CreateCommitteeEntryRequest) (*dto.CommitteeEntryResponse, error) {
	if !permission.Has(permission.ModifyCommitteePage, actor) {
		return nil, fmt.Errorf("modificar página del comité: %w", domain.ErrForbidden)
	}
	order, err := nextOrder(ctx, uc.entriesOrder, in.Category)
	if err != nil {
		return nil, err
	}
	entry := &entity.CommitteeEntry{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Title:     in.Title,
		Name:      in.Name,
		ImageID:   in.ImageID,
		ItemOrder: order,
	}
	if err := uc.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	resp := toCommitteeResponse(entry)
	return &resp, nil
}

// Delete elimina una ficha y resequencia su categoría. Requiere
// ModifyCommitteePage.
func (uc *CommitteeUseCase) Delete(ctx context.Context, actor permission.Role, id string) error {
	if !permission.Has(permission.ModifyCommitteePage, actor) {
		return fmt.Errorf("modificar página del comité: %w", domain.ErrForbidden)
	}
	category, deleted, err := uc.entries.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("ficha %s: %w", id, domain.ErrNotFound)
	}
	return uc.tx.RunCommittee(ctx, func(store repository.OrderedStore) error {
		return resequence(ctx, store, category)
	})
}

func toCommitteeResponse(e *entity.CommitteeEntry) dto.CommitteeEntryResponse {
	return dto.CommitteeEntryResponse{
		ID:        e.ID,
		Category:  e.Category,
		Title:     e.Title,
		Name:      e.Name,
		ImageID:   e.ImageID,
		ItemOrder: e.ItemOrder,
	}
}
