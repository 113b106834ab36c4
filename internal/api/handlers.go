package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"podhub/internal/discovery"
	"podhub/internal/domain"
	"podhub/internal/queue"
	"podhub/internal/search"
)

func (s *Server) searchPrograms(c *gin.Context) {
	q := discovery.ProgramQuery{
		Text: c.Query("q"),
		Filters: search.ProgramFilters{
			Category:    c.Query("category"),
			Language:    c.Query("language"),
			Source:      c.Query("source"),
			Description: c.Query("description"),
		},
		Page:  intQuery(c, "page"),
		Limit: intQuery(c, "limit"),
	}

	docs, err := s.discovery.SearchPrograms(c.Request.Context(), q)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": docs, "total": len(docs)})
}

func (s *Server) searchEpisodes(c *gin.Context) {
	filters := search.EpisodeFilters{
		Title:         c.Query("title"),
		Description:   c.Query("description"),
		EpisodeNumber: intQuery(c, "episodeNumber"),
	}
	if raw := c.Query("publishDateFrom"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "publishDateFrom must be RFC 3339"})
			return
		}
		filters.PublishDateFrom = &t
	}

	q := discovery.EpisodeQuery{
		Text:    c.Query("q"),
		Filters: filters,
		Page:    intQuery(c, "page"),
		Limit:   intQuery(c, "limit"),
	}

	docs, err := s.discovery.SearchEpisodes(c.Request.Context(), q)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": docs, "total": len(docs)})
}

func (s *Server) createProgram(c *gin.Context) {
	var p domain.Program
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := s.catalog.CreateProgram(c.Request.Context(), &p); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) getProgram(c *gin.Context) {
	p, err := s.catalog.GetProgram(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProgram(c *gin.Context) {
	var p domain.Program
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")

	if err := s.catalog.UpdateProgram(c.Request.Context(), &p); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) removeProgram(c *gin.Context) {
	if err := s.catalog.RemoveProgram(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createEpisode(c *gin.Context) {
	var e domain.Episode
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if e.ProgramID == "" || e.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "programId and title are required"})
		return
	}

	if err := s.catalog.CreateEpisode(c.Request.Context(), &e); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) getEpisode(c *gin.Context) {
	id, ok := episodeID(c)
	if !ok {
		return
	}

	e, err := s.catalog.GetEpisode(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) updateEpisode(c *gin.Context) {
	id, ok := episodeID(c)
	if !ok {
		return
	}

	var e domain.Episode
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.ID = id

	if err := s.catalog.UpdateEpisode(c.Request.Context(), &e); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) removeEpisode(c *gin.Context) {
	id, ok := episodeID(c)
	if !ok {
		return
	}

	if err := s.catalog.RemoveEpisode(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) createSource(c *gin.Context) {
	var src domain.ImportSource
	if err := c.ShouldBindJSON(&src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if src.SourceType != domain.SourceTypeRSS && src.SourceType != domain.SourceTypeYouTube {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sourceType must be rss or youtube"})
		return
	}
	if src.Locator == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locator is required"})
		return
	}

	if err := s.sources.Create(c.Request.Context(), &src); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, src)
}

func (s *Server) listSources(c *gin.Context) {
	sources, err := s.sources.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": sources, "total": len(sources)})
}

func (s *Server) removeSource(c *gin.Context) {
	if err := s.sources.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// triggerSync enqueues a sync job; the import itself runs in the syncer.
func (s *Server) triggerSync(c *gin.Context) {
	id := c.Param("id")

	if _, err := s.sources.GetByID(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	payload := queue.SyncContentPayload{ID: id}
	if err := s.publisher.Publish(c.Request.Context(), queue.TopicSyncContent, payload); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "enqueued", "sourceId": id})
}

func (s *Server) resyncPrograms(c *gin.Context) {
	count, err := s.catalog.ResyncPrograms(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"indexed": count})
}

func (s *Server) resyncEpisodes(c *gin.Context) {
	count, err := s.catalog.ResyncEpisodes(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"indexed": count})
}

func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func episodeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	return v
}
