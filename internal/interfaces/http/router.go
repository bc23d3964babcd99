package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portal-socios/internal/application/auth"
	"github.com/tu-usuario/portal-socios/internal/application/catalog"
	"github.com/tu-usuario/portal-socios/internal/application/events"
	"github.com/tu-usuario/portal-socios/internal/application/membership"
	"github.com/tu-usuario/portal-socios/internal/domain/permission"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	Membership  *membership.Coordinator
	BooksUC     *catalog.BooksUseCase
	CommitteeUC *catalog.CommitteeUseCase
	EventsUC    *events.UseCase
	ExportUC    *events.ExportUseCase
	JWTSecret   string
	BaseURL     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	eventsHandler := NewEventsHandler(deps.EventsUC, deps.ExportUC)
	booksHandler := NewBooksHandler(deps.BooksUC)
	committeeHandler := NewCommitteeHandler(deps.CommitteeUC)
	rolesHandler := NewRolesHandler(deps.Membership)

	// Lecturas públicas del portal
	api.Get("/events", eventsHandler.List)
	api.Get("/events/feed", eventsHandler.Feed(deps.BaseURL))
	api.Get("/events/:event_id", eventsHandler.GetByID)
	api.Get("/books", booksHandler.List)
	api.Get("/committee", committeeHandler.List)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/users/:id", rolesHandler.Profile)
	protected.Post("/u/validate-membership-code", rolesHandler.RedeemCode)

	protected.Post("/events", eventsHandler.Create)
	protected.Delete("/events/:event_id", eventsHandler.Delete)
	protected.Get("/events/:event_id/subscribe", eventsHandler.Subscribers)
	protected.Post("/events/:event_id/subscribe", eventsHandler.Subscribe)
	protected.Delete("/events/:event_id/subscribe", eventsHandler.Unsubscribe)

	protected.Post("/books", booksHandler.Create)
	protected.Delete("/books/:id", booksHandler.Delete)
	protected.Post("/committee", committeeHandler.Create)
	protected.Delete("/committee/:id", committeeHandler.Delete)

	// Panel admin: el middleware corta lo obvio, los usecases re-verifican.
	admin := protected.Group("/admin")
	admin.Get("/roles/grant", rolesHandler.Grantable)
	admin.Patch("/roles/grant", rolesHandler.Grant)

	adminEvents := admin.Group("/events/:event_id",
		RequirePermission(permission.SeeUsersPrivateInfo))
	adminEvents.Post("/subscribe", eventsHandler.ForceSubscribe)
	adminEvents.Delete("/subscribe", eventsHandler.ForceUnsubscribe)
	adminEvents.Get("/attendance.pdf", eventsHandler.AttendancePDF)
	adminEvents.Get("/subscribers.csv", eventsHandler.SubscribersCSV)
}
