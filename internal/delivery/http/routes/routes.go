package routes

import (
	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Match          *handler.MatchHandler
	Recommendation *handler.RecommendationHandler
	Skill          *handler.SkillHandler
	Recompute      *handler.RecomputeHandler
	Health         *handler.HealthHandler
	WS             *ws.Handler
}

func Register(app *fiber.App, h Handlers) {
	if app == nil {
		return
	}

	if h.Health != nil {
		h.Health.RegisterRoutes(app)
	}

	v1 := app.Group("/api/v1")
	if h.Match != nil {
		h.Match.RegisterRoutes(v1)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(v1)
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(v1)
	}
	if h.Recompute != nil {
		h.Recompute.RegisterRoutes(v1)
	}

	if h.WS != nil {
		app.Get("/ws/matches", h.WS.HandleMatchesWS)
	}
}
