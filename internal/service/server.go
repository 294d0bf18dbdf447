package service

import (
	"troop_cookies/internal/app"
	"troop_cookies/internal/pkg/auth"
	"troop_cookies/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration: the application
// business logic, the handlers, the run address, and a logger.
type Service struct {
	handlers   *handlers
	app        *app.App
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
func NewService(app *app.App, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, runAddress: runAddress, log: l}
}

// NewRouter sets up a chi.Router with logging middleware on every route and
// JWT authentication on everything except login.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())
	router.Post("/api/auth", service.handlers.authHandler)
	router.Route("/", func(r chi.Router) {
		r.Use(auth.CheckJWTMiddleware())

		r.Get("/api/info", service.handlers.infoHandler)
		r.Post("/api/logout", service.handlers.logoutHandler)

		r.Get("/api/users", service.handlers.listScoutsHandler)
		r.Post("/api/users", service.handlers.addScoutHandler)
		r.Delete("/api/users/{userID}", service.handlers.removeScoutHandler)
		r.Post("/api/banner", service.handlers.bannerHandler)

		r.Get("/api/inventory", service.handlers.troopInventoryHandler)
		r.Get("/api/inventory/{userID}", service.handlers.userInventoryHandler)
		r.Get("/api/inventory/{userID}/{cookieType}", service.handlers.remainingHandler)
		r.Post("/api/inventory/field", service.handlers.setFieldHandler)
		r.Post("/api/sale", service.handlers.saleHandler)
		r.Post("/api/transfer", service.handlers.transferHandler)
		r.Get("/api/logs", service.handlers.logsHandler)

		r.Get("/api/trades", service.handlers.listTradesHandler)
		r.Post("/api/trades", service.handlers.createTradeHandler)
		r.Post("/api/trades/{tradeID}/respond", service.handlers.respondTradeHandler)

		r.Get("/api/messages", service.handlers.listMessagesHandler)
		r.Post("/api/messages", service.handlers.sendMessageHandler)

		r.Get("/api/booths", service.handlers.listBoothsHandler)
		r.Post("/api/booths", service.handlers.addBoothHandler)
		r.Delete("/api/booths/{boothID}", service.handlers.removeBoothHandler)

		r.Get("/api/meetings", service.handlers.listMeetingsHandler)
		r.Post("/api/meetings", service.handlers.addMeetingHandler)
		r.Delete("/api/meetings/{meetingID}", service.handlers.removeMeetingHandler)

		r.Get("/api/notifications", service.handlers.listNotificationsHandler)
		r.Post("/api/notifications/read", service.handlers.markNotificationsReadHandler)

		r.Post("/api/import", service.handlers.importHandler)
		r.Post("/api/reset", service.handlers.resetHandler)
	})
	return router
}
