package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"jobpilot/internal/config"
	"jobpilot/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, attaches the HTTP surface, warms the state
// container, and opens the realtime subscription.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go container.Hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, container.Logger)
	container.Registry.Register(f)

	warmCtx, cancelWarm := context.WithCancel(context.Background())
	go func() {
		report := container.Store.FetchAllData(warmCtx)
		if report.Partial() {
			container.Logger.Printf("[App] initial load partial | jobs=%v profiles=%v searches=%v",
				report.Jobs, report.Profiles, report.Searches)
		}
		container.Store.SubscribeToJobs(warmCtx)
	}()

	cleanup := func() error {
		cancelWarm()
		return container.Close()
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
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
