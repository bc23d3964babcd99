package events

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tu-usuario/portal-socios/internal/application/dto"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/entity"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// UseCase agrupa el control de admisión a eventos y el CRUD del calendario.
type UseCase struct {
	events       repository.EventRepository
	inscriptions repository.InscriptionRepository
	tx           TxRunner
	now          func() time.Time
	log          zerolog.Logger
}

// NewUseCase construye el caso de uso de eventos. now es inyectable para
// fijar el reloj en tests; nil usa time.Now.
func NewUseCase(events repository.EventRepository, inscriptions repository.InscriptionRepository, tx TxRunner, now func() time.Time, log zerolog.Logger) *UseCase {
	if now == nil {
		now = time.Now
	}
	return &UseCase{events: events, inscriptions: inscriptions, tx: tx, now: now, log: log}
}

// Subscribe inscribe al propio usuario en un evento. Validaciones en orden,
// cortocircuito en la primera violada:
//  1. inscripciones habilitadas en el evento
//  2. el actor pertenece al grupo de inscripción
//  3. aforo no alcanzado
//  4. ventana de inscripción ya abierta
//  5. ventana de inscripción no cerrada
//  6. el par (usuario, evento) no existe todavía (Conflict si ya existe)
//
// El chequeo de aforo y la inserción son una sola decisión de admisión: se
// ejecutan con la fila del evento bloqueada dentro de una transacción, así
// el aforo nunca se rebasa bajo concurrencia.
func (uc *UseCase) Subscribe(ctx context.Context, userID string, actor permission.Role, eventID string) error {
	return uc.tx.RunAdmission(ctx, func(events repository.EventRepository, inscriptions repository.InscriptionRepository) error {
		event, err := events.LockByID(ctx, eventID)
		if err != nil {
			return err
		}
		if event == nil {
			return fmt.Errorf("evento %s: %w", eventID, domain.ErrNotFound)
		}
		if !event.InscriptionEnabled {
			return fmt.Errorf("el evento no tiene inscripciones: %w", domain.ErrInvalidOperation)
		}
		joinPerm, ok := permission.JoinPermission(event.InscriptionGroup)
		if !ok || !permission.Has(joinPerm, actor) {
			return fmt.Errorf("grupo %s: %w", event.InscriptionGroup, domain.ErrForbidden)
		}
		if event.InscriptionLimit != nil && event.SubscribedCount >= *event.InscriptionLimit {
			return fmt.Errorf("aforo completo: %w", domain.ErrForbidden)
		}
		now := uc.now()
		if event.InscriptionStart != nil && now.Before(*event.InscriptionStart) {
			return fmt.Errorf("inscripciones aún no abiertas: %w", domain.ErrForbidden)
		}
		if event.InscriptionStop != nil && !now.Before(*event.InscriptionStop) {
			return fmt.Errorf("inscripciones cerradas: %w", domain.ErrForbidden)
		}
		return inscriptions.Insert(ctx, userID, eventID)
	})
}

// Unsubscribe borra la inscripción propia. Es idempotente: desinscribirse de
// un evento al que no se estaba inscrito no es error.
func (uc *UseCase) Unsubscribe(ctx context.Context, userID, eventID string) error {
	return uc.inscriptions.Delete(ctx, userID, eventID)
}

// ForceSubscribe inscribe a otro usuario saltándose las reglas de admisión
// 1-5. Mantiene la unicidad del par y exige el permiso administrativo
// SubscribeUserToEvent, no el de auto-inscripción.
func (uc *UseCase) ForceSubscribe(ctx context.Context, actorID string, actor permission.Role, targetID, eventID string) error {
	if !permission.Has(permission.SubscribeUserToEvent, actor) {
		return fmt.Errorf("inscribir a terceros: %w", domain.ErrForbidden)
	}
	event, err := uc.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("evento %s: %w", eventID, domain.ErrNotFound)
	}
	if err := uc.inscriptions.Insert(ctx, targetID, eventID); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actorID).Str("target", targetID).Str("event", eventID).
		Msg("usuario inscrito forzosamente al evento")
	return nil
}

// ForceUnsubscribe elimina la inscripción de otro usuario. Exige
// RemoveUserFromEvent.
func (uc *UseCase) ForceUnsubscribe(ctx context.Context, actorID string, actor permission.Role, targetID, eventID string) error {
	if !permission.Has(permission.RemoveUserFromEvent, actor) {
		return fmt.Errorf("desinscribir a terceros: %w", domain.ErrForbidden)
	}
	if err := uc.inscriptions.Delete(ctx, targetID, eventID); err != nil {
		return err
	}
	uc.log.Info().Str("actor", actorID).Str("target", targetID).Str("event", eventID).
		Msg("usuario removido forzosamente del evento")
	return nil
}

// ListSubscribers devuelve los inscritos del evento en orden de inscripción.
func (uc *UseCase) ListSubscribers(ctx context.Context, eventID string) ([]dto.SubscriberResponse, error) {
	subs, err := uc.inscriptions.ListSubscribers(ctx, eventID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubscriberResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubscriberResponse{ID: s.UserID, Name: s.Name})
	}
	return out, nil
}

// Create da de alta un evento. Requiere CreateEvent; el grupo de inscripción
// debe ser USER, MEMBER o COMMITTEE.
func (uc *UseCase) Create(ctx context.Context, authorID string, actor permission.Role, in dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !permission.Has(permission.CreateEvent, actor) {
		return nil, fmt.Errorf("crear eventos: %w", domain.ErrForbidden)
	}
	group, ok := permission.ParseRole(in.InscriptionGroup)
	if !ok || (group != permission.RoleUser && group != permission.RoleMember && group != permission.RoleCommittee) {
		return nil, fmt.Errorf("inscription_group debe ser USER, MEMBER o COMMITTEE: %w", domain.ErrInvalidOperation)
	}
	var image []byte
	if in.ImageB64 != "" {
		var err error
		image, err = base64.StdEncoding.DecodeString(in.ImageB64)
		if err != nil {
			return nil, fmt.Errorf("imagen no es base64 válido: %w", domain.ErrInvalidOperation)
		}
	}
	event := &entity.Event{
		ID:                 uuid.New().String(),
		Title:              in.Title,
		AuthorID:           authorID,
		Category:           in.Category,
		Description:        in.Description,
		Date:               in.Date,
		Image:              image,
		InscriptionEnabled: in.Inscription,
		InscriptionGroup:   group,
		InscriptionLimit:   in.InscriptionLimit,
		InscriptionStart:   in.InscriptionStart,
		InscriptionStop:    in.InscriptionStop,
	}
	if err := uc.events.Create(ctx, event); err != nil {
		return nil, err
	}
	resp := toEventResponse(event)
	return &resp, nil
}

// Delete elimina un evento; sus inscripciones caen en cascada en el store.
// Requiere ModifyEvent.
func (uc *UseCase) Delete(ctx context.Context, actor permission.Role, eventID string) error {
	if !permission.Has(permission.ModifyEvent, actor) {
		return fmt.Errorf("modificar eventos: %w", domain.ErrForbidden)
	}
	event, err := uc.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return fmt.Errorf("evento %s: %w", eventID, domain.ErrNotFound)
	}
	return uc.events.Delete(ctx, eventID)
}

// List devuelve eventos ordenados por fecha. excludeExpired (default del
// portal) omite los ya pasados.
func (uc *UseCase) List(ctx context.Context, excludeExpired bool, limit int) ([]dto.EventResponse, error) {
	var after *time.Time
	if excludeExpired {
		now := uc.now()
		after = &now
	}
	list, err := uc.events.List(ctx, after, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEventResponse(e))
	}
	return out, nil
}

// GetByID devuelve un evento con su conteo de inscritos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := uc.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("evento %s: %w", id, domain.ErrNotFound)
	}
	resp := toEventResponse(event)
	return &resp, nil
}

func toEventResponse(e *entity.Event) dto.EventResponse {
	var imageB64 string
	if len(e.Image) > 0 {
		imageB64 = base64.StdEncoding.EncodeToString(e.Image)
	}
	return dto.EventResponse{
		ID:                 e.ID,
		Title:              e.Title,
		AuthorID:           e.AuthorID,
		Category:           e.Category,
		Description:        e.Description,
		Date:               e.Date,
		ImageB64:           imageB64,
		InscriptionEnabled: e.InscriptionEnabled,
		InscriptionGroup:   e.InscriptionGroup.String(),
		InscriptionLimit:   e.InscriptionLimit,
		InscriptionStart:   e.InscriptionStart,
		InscriptionStop:    e.InscriptionStop,
		SubscribedCount:    e.SubscribedCount,
	}
}
