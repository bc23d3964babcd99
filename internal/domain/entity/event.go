package entity

import (
	"time"

	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// Event es una actividad de la asociación. Los campos Inscription* gobiernan
// el control de admisión: habilitación, grupo elegible, aforo y ventana
// temporal. SubscribedCount es derivado (COUNT sobre inscripciones), nunca
// se persiste.
type Event struct {
	ID                 string
	Title              string
	AuthorID           string
	Category           string
	Description        string
	Date               *time.Time
	Image              []byte
	InscriptionEnabled bool
	InscriptionGroup   permission.Role // USER, MEMBER o COMMITTEE
	InscriptionLimit   *int
	InscriptionStart   *time.Time
	InscriptionStop    *time.Time
	SubscribedCount    int
}

// Inscription vincula un usuario con un evento. Invariante de unicidad:
// como máximo una inscripción por par (UserID, EventID), garantizada por
// constraint en el store.
type Inscription struct {
	UserID  string
	EventID string
}

// Subscriber es el resumen de un usuario inscrito, para listados y exports.
type Subscriber struct {
	UserID string
	Name   string
	Email  string
}
