package routes

import (
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"
	v1 "workmatch/internal/delivery/http/routes/v1"
	"workmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	wsh    *ws.Handler
	authMW *middleware.AuthMiddleware
	v1     v1.Deps
}

func NewRegistry(health *handler.HealthHandler, wsh *ws.Handler, deps v1.Deps) *Registry {
	return &Registry{health: health, wsh: wsh, authMW: deps.AuthMW, v1: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		app.Get("/health", r.health.Handle)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.wsh == nil {
		return
	}
	if r.authMW != nil {
		app.Get("/ws", r.authMW.Middleware(), r.wsh.HandleScoreWS)
		return
	}
	app.Get("/ws", r.wsh.HandleScoreWS)
}
