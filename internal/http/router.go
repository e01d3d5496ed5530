package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/siphore/huddle-api/internal/config"
	"github.com/siphore/huddle-api/internal/http/handler"
	httpmiddleware "github.com/siphore/huddle-api/internal/http/middleware"
	"github.com/siphore/huddle-api/internal/middleware"
)

// Handlers groups the per-resource handlers the router mounts.
type Handlers struct {
	Users         *handler.UserHandler
	Events        *handler.EventHandler
	Articles      *handler.ArticleHandler
	Podcasts      *handler.PodcastHandler
	Opportunities *handler.OpportunityHandler
	Organizers    *handler.OrganizerHandler
}

// NewRouter wires Gin routes and middleware.
func NewRouter(cfg config.Config, h Handlers, auth *httpmiddleware.Auth, rateLimiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpmiddleware.RequestLogger(nil))
	if rateLimiter != nil {
		r.Use(rateLimiter.Handler())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.Group("/users")
	{
		users.POST("", h.Users.Register)
		users.POST("/login", h.Users.Login)
		users.POST("/logout", h.Users.Logout)

		users.GET("", auth.RequireAuth, h.Users.List)
		users.GET("/:id", auth.RequireAuth, h.Users.Get)
		users.PUT("/:id", auth.RequireAuth, h.Users.Update)
		users.DELETE("/:id", auth.RequireAuth, h.Users.Delete)
	}

	events := r.Group("/events")
	{
		events.GET("", h.Events.List)
		events.GET("/theme/:theme", h.Events.ListByTheme)
		events.GET("/id/:id", h.Events.Get)
		events.POST("", h.Events.Create)
		events.DELETE("/:id", auth.RequireAuth, h.Events.Delete)
	}

	articles := r.Group("/articles")
	{
		articles.GET("", h.Articles.List)
		articles.GET("/type/:type", h.Articles.ListByType)
		articles.GET("/id/:id", h.Articles.Get)
		articles.POST("", h.Articles.Create)
		articles.DELETE("/:id", auth.RequireAuth, h.Articles.Delete)
	}

	podcasts := r.Group("/podcasts")
	{
		podcasts.GET("", h.Podcasts.List)
		podcasts.GET("/:id", h.Podcasts.Get)
		podcasts.POST("", h.Podcasts.Create)
		podcasts.DELETE("/:id", auth.RequireAuth, h.Podcasts.Delete)
	}

	opportunities := r.Group("/opportunities")
	{
		opportunities.GET("", h.Opportunities.List)
		opportunities.GET("/:id", h.Opportunities.Get)
		opportunities.POST("", h.Opportunities.Create)
		opportunities.DELETE("/:id", auth.RequireAuth, h.Opportunities.Delete)
	}

	organizers := r.Group("/organizers")
	{
		organizers.GET("", h.Organizers.List)
		organizers.GET("/:id", h.Organizers.Get)
		organizers.POST("", h.Organizers.Create)
		organizers.DELETE("/:id", auth.RequireAuth, h.Organizers.Delete)
	}

	return r
}
