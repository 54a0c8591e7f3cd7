package app

import (
	"fmt"
	"log"
	"strings"

	"workmatch/internal/config"
	"workmatch/internal/delivery/http/handler"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/delivery/http/routes"
	"workmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, the fiber app, and the route tree,
// and starts the websocket hub. The returned cleanup closes what the
// container opened.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(container.DB, container.Cache),
		ws.NewHandler(container.Hub, logger),
		container.V1Deps(),
	)
	registry.Register(f)

	go container.Hub.Run()

	return &App{Fiber: f, Container: container}, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
