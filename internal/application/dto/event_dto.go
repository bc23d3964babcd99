package dto

import "time"

// CreateEventRequest alta de evento (panel del comité).
type CreateEventRequest struct {
	Title            string     `json:"title"`
	Category         string     `json:"category"`
	Description      string     `json:"description"`
	Date             *time.Time `json:"date"`
	ImageB64         string     `json:"image_b64,omitempty"`
	Inscription      bool       `json:"inscription"`
	InscriptionGroup string     `json:"inscription_group"`
	InscriptionLimit *int       `json:"inscription_limit"`
	InscriptionStart *time.Time `json:"inscription_start"`
	InscriptionStop  *time.Time `json:"inscription_stop"`
}

// EventResponse evento con el conteo derivado de inscritos.
type EventResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	AuthorID           string     `json:"author_id"`
	Category           string     `json:"category"`
	Description        string     `json:"description"`
	Date               *time.Time `json:"date"`
	ImageB64           string     `json:"image_b64,omitempty"`
	InscriptionEnabled bool       `json:"inscription"`
	InscriptionGroup   string     `json:"inscription_group"`
	InscriptionLimit   *int       `json:"inscription_limit"`
	InscriptionStart   *time.Time `json:"inscription_start"`
	InscriptionStop    *time.Time `json:"inscription_stop"`
	SubscribedCount    int        `json:"subscribed_size"`
}

// SubscriberResponse resumen de un inscrito.
type SubscriberResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
