package http

import (
	"context"

	"github.com/dkeye/Debate/internal/adapters/signal"
	"github.com/dkeye/Debate/internal/app"
	"github.com/dkeye/Debate/internal/config"
	handlers "github.com/dkeye/Debate/internal/transport/http"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const clientTokenKey = "ct"

// ClientTokenMiddleware keeps a stable per-browser token in the cookie
// session. It only tags logs; every WS connection still gets its own id.
func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		token, _ := s.Get(clientTokenKey).(string)
		if token == "" {
			token = uuid.NewString()
			s.Set(clientTokenKey, token)
			if err := s.Save(); err != nil {
				log.Warn().Err(err).Str("module", "adapters.http").Msg("save session")
			}
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, cfg *config.Config, orch *app.Orchestrator, limiter *signal.SessionRateLimiter) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600 * 24 * 7, HttpOnly: true})
	r.Use(sessions.Sessions("DebateSessions", store))
	r.Use(ClientTokenMiddleware())

	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api")
	handlers.NewRoomsHandler(orch.Rooms).Register(api)

	ctrl := signal.NewSignalWSController(orch, limiter, signal.Options{
		ReadLimit:  cfg.ReadLimit,
		SendBuffer: cfg.SendBuffer,
		PingPeriod: cfg.PingPeriod,
	})
	api.GET("/ws/signal", func(c *gin.Context) {
		log.Debug().Str("module", "adapters.http").Str("client", c.GetString("client_token")).Msg("ws signal endpoint hit")
		ctrl.HandleSignal(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Str("mode", cfg.Mode).Msg("router setup")
	return r
}
