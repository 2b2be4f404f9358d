package docschat

import (
	"net/http"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/moralisweb3/docschat/internal/docschat/handler/middleware"
	v1 "github.com/moralisweb3/docschat/internal/docschat/handler/v1"
)

// routerDeps holds the dependencies needed for route registration.
type routerDeps struct {
	chatHandler       *v1.ChatHandler
	transcriptHandler *v1.TranscriptHandler
	profiling         bool
}

func initRouter(g *gin.Engine, deps *routerDeps) {
	installMiddleware(g, deps)
	installController(g, deps)
}

func installMiddleware(g *gin.Engine, deps *routerDeps) {
	g.Use(gin.Recovery())
	g.Use(middleware.CORS())

	if deps.profiling {
		pprof.Register(g)
	}
}

func installController(g *gin.Engine, deps *routerDeps) {
	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	g.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": Version})
	})

	// --- /v1 route group ---
	apiV1 := g.Group("/v1")
	{
		apiV1.POST("/chat", deps.chatHandler.Handle)
		apiV1.GET("/transcripts", deps.transcriptHandler.List)
		apiV1.GET("/transcripts/:id", deps.transcriptHandler.Get)
	}
}
