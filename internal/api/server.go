// Package api exposes discovery reads, catalog mutations and import source
// management over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	discovery DiscoveryService
	catalog   CatalogService
	sources   SourceStore
	publisher Publisher
	logger    *slog.Logger
}

func NewServer(
	discovery DiscoveryService,
	catalog CatalogService,
	sources SourceStore,
	publisher Publisher,
	logger *slog.Logger,
) *Server {
	return &Server{
		discovery: discovery,
		catalog:   catalog,
		sources:   sources,
		publisher: publisher,
		logger:    logger.With("component", "api"),
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/search/programs", s.searchPrograms)
		apiGroup.GET("/search/episodes", s.searchEpisodes)

		apiGroup.POST("/programs", s.createProgram)
		apiGroup.GET("/programs/:id", s.getProgram)
		apiGroup.PUT("/programs/:id", s.updateProgram)
		apiGroup.DELETE("/programs/:id", s.removeProgram)

		apiGroup.POST("/episodes", s.createEpisode)
		apiGroup.GET("/episodes/:id", s.getEpisode)
		apiGroup.PUT("/episodes/:id", s.updateEpisode)
		apiGroup.DELETE("/episodes/:id", s.removeEpisode)

		apiGroup.POST("/sources", s.createSource)
		apiGroup.GET("/sources", s.listSources)
		apiGroup.DELETE("/sources/:id", s.removeSource)
		apiGroup.POST("/sources/:id/sync", s.triggerSync)

		apiGroup.POST("/admin/resync/programs", s.resyncPrograms)
		apiGroup.POST("/admin/resync/episodes", s.resyncEpisodes)
	}

	return router
}
