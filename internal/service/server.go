package service

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/Bessima/token-shipping/internal/handlers"
	middleware "github.com/Bessima/token-shipping/internal/middlewares"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/go-chi/chi/v5"
)

type ServerService struct {
	Server *http.Server
}

func NewServerService(rootContext context.Context, address string) ServerService {
	server := &http.Server{
		Addr: address,
		BaseContext: func(_ net.Listener) context.Context {
			return rootContext
		},
	}
	return ServerService{Server: server}
}

func (serverService *ServerService) SetRouter(authHandler *handlers.AuthHandler, shipmentsHandler *handlers.ShipmentsHandler) {
	serverService.Server.Handler = NewRouter(authHandler, shipmentsHandler)
}

func NewRouter(authHandler *handlers.AuthHandler, shipmentsHandler *handlers.ShipmentsHandler) chi.Router {
	authHandler.OnLogout(shipmentsHandler.ForgetSession)

	router := chi.NewRouter()

	router.Use(logger.RequestLogger)

	router.Post("/api/login", authHandler.LoginHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authHandler))

		r.Post("/api/logout", authHandler.LogoutHandler)
		r.Get("/api/platforms", shipmentsHandler.Platforms)
		r.Get("/api/history", shipmentsHandler.History)

		r.Route("/api/shipments", func(r chi.Router) {
			r.With(middleware.RequireRole(models.Role.CanCreate)).Post("/", shipmentsHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(models.Role.CanProcess))
				r.Get("/pending", shipmentsHandler.Pending)
				r.Post("/{position}/ship", shipmentsHandler.Ship)
				r.Post("/{position}/cancel", shipmentsHandler.Cancel)
				r.Get("/{position}/manifest", shipmentsHandler.Manifest)
			})
		})
	})

	return router
}

func (serverService *ServerService) RunServer(serverErr *chan error) {
	if err := serverService.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		*serverErr <- err
	} else {
		*serverErr <- nil
	}
}

func (serverService *ServerService) Shutdown() error {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	return serverService.Server.Shutdown(shutdownCtx)
}
