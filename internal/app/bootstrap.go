package app

import (
	"fmt"
	"strings"

	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/delivery/http/routes"
	"skillmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(c *Container) *App {
	f := fiber.New(fiber.Config{})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.Register(f, routes.Handlers{
		Match:          handler.NewMatchHandler(c.Matching),
		Recommendation: handler.NewRecommendationHandler(c.Recommendation),
		Skill:          handler.NewSkillHandler(c.Catalog),
		Recompute:      handler.NewRecomputeHandler(c.MatchStore),
		Health:         handler.NewHealthHandler(c.DB),
		WS:             ws.NewHandler(c.Hub, c.Logger),
	})

	return &App{Fiber: f, Container: c}
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
