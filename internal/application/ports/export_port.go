package ports

import "github.com/tu-usuario/portal-socios/internal/domain/entity"

// AttendancePDFGenerator genera la hoja de asistencia imprimible de un
// evento (infraestructura: maroto).
type AttendancePDFGenerator interface {
	Generate(event *entity.Event, subscribers []entity.Subscriber) ([]byte, error)
}

// SubscriberCSVEncoder serializa la lista de inscritos a CSV en la
// codificación que esperan las hojas de cálculo legadas (Windows-1252).
type SubscriberCSVEncoder interface {
	Encode(subscribers []entity.Subscriber) ([]byte, error)
}

// EventFeedBuilder construye el feed Atom público de próximos eventos.
type EventFeedBuilder interface {
	Build(baseURL string, events []*entity.Event) ([]byte, error)
}
