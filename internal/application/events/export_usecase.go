package events

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/portal-socios/internal/application/ports"
	"github.com/tu-usuario/portal-socios/internal/domain"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
	"github.com/tu-usuario/portal-socios/internal/domain/repository"
)

// ExportUseCase genera los exports del calendario: hoja de asistencia PDF y
// CSV de inscritos (admin), feed Atom de próximos eventos (público).
type ExportUseCase struct {
	events       repository.EventRepository
	inscriptions repository.InscriptionRepository
	pdf          ports.AttendancePDFGenerator
	csv          ports.SubscriberCSVEncoder
	feed         ports.EventFeedBuilder
	now          func() time.Time
}

// NewExportUseCase construye el caso de uso de exports.
func NewExportUseCase(
	events repository.EventRepository,
	inscriptions repository.InscriptionRepository,
	pdf ports.AttendancePDFGenerator,
	csv ports.SubscriberCSVEncoder,
	feed ports.EventFeedBuilder,
	now func() time.Time,
) *ExportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExportUseCase{events: events, inscriptions: inscriptions, pdf: pdf, csv: csv, feed: feed, now: now}
}

// AttendanceSheet genera el PDF de asistencia de un evento. Requiere
// SeeUsersPrivateInfo: lista nombres y emails de los inscritos.
func (uc *ExportUseCase) AttendanceSheet(ctx context.Context, actor permission.Role, eventID string) ([]byte, error) {
	if !permission.Has(permission.SeeUsersPrivateInfo, actor) {
		return nil, fmt.Errorf("datos privados de usuarios: %w", domain.ErrForbidden)
	}
	event, err := uc.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("evento %s: %w", eventID, domain.ErrNotFound)
	}
	subs, err := uc.inscriptions.ListSubscribers(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(event, subs)
}

// SubscriberCSV genera el CSV de inscritos. Mismo permiso que la hoja PDF.
func (uc *ExportUseCase) SubscriberCSV(ctx context.Context, actor permission.Role, eventID string) ([]byte, error) {
	if !permission.Has(permission.SeeUsersPrivateInfo, actor) {
		return nil, fmt.Errorf("datos privados de usuarios: %w", domain.ErrForbidden)
	}
	event, err := uc.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("evento %s: %w", eventID, domain.ErrNotFound)
	}
	subs, err := uc.inscriptions.ListSubscribers(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return uc.csv.Encode(subs)
}

// Feed genera el feed Atom de próximos eventos (sin autenticación).
func (uc *ExportUseCase) Feed(ctx context.Context, baseURL string, limit int) ([]byte, error) {
	now := uc.now()
	list, err := uc.events.List(ctx, &now, limit)
	if err != nil {
		return nil, err
	}
	return uc.feed.Build(baseURL, list)
}
