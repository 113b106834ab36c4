package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"podhub/internal/api/mocks"
	"podhub/internal/discovery"
	"podhub/internal/domain"
	"podhub/internal/queue"
	"podhub/internal/search"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	discovery *mocks.MockDiscoveryService
	catalog   *mocks.MockCatalogService
	sources   *mocks.MockSourceStore
	publisher *mocks.MockPublisher

	router *gin.Engine
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.discovery = mocks.NewMockDiscoveryService(s.ctrl)
	s.catalog = mocks.NewMockCatalogService(s.ctrl)
	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	server := NewServer(s.discovery, s.catalog, s.sources, s.publisher, logger)
	s.router = server.Router()
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestSearchPrograms() {
	s.discovery.EXPECT().SearchPrograms(gomock.Any(), discovery.ProgramQuery{
		Text:    "history",
		Filters: search.ProgramFilters{Category: "General"},
	}).Return([]search.ProgramDocument{{ID: "p1", Title: "History Hour"}}, nil)

	w := s.do(http.MethodGet, "/api/search/programs?q=history&category=General", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "History Hour")
}

func (s *ServerTestSuite) TestSearchEpisodes_BadDate() {
	w := s.do(http.MethodGet, "/api/search/episodes?publishDateFrom=yesterday", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestCreateProgram() {
	s.catalog.EXPECT().CreateProgram(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, p *domain.Program) error {
			s.Equal("New Program", p.Title)
			p.ID = "p1"
			return nil
		},
	)

	w := s.do(http.MethodPost, "/api/programs", gin.H{"title": "New Program", "sourceType": "rss"})

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"p1"`)
}

func (s *ServerTestSuite) TestCreateProgram_MissingTitle() {
	w := s.do(http.MethodPost, "/api/programs", gin.H{"sourceType": "rss"})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestCreateProgram_Conflict() {
	s.catalog.EXPECT().CreateProgram(gomock.Any(), gomock.Any()).Return(domain.ErrConflict)

	w := s.do(http.MethodPost, "/api/programs", gin.H{"title": "Duplicate", "sourceType": "rss"})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *ServerTestSuite) TestGetProgram_NotFound() {
	s.catalog.EXPECT().GetProgram(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

	w := s.do(http.MethodGet, "/api/programs/missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestRemoveProgram() {
	s.catalog.EXPECT().RemoveProgram(gomock.Any(), "p1").Return(nil)

	w := s.do(http.MethodDelete, "/api/programs/p1", nil)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *ServerTestSuite) TestGetEpisode_NonNumericID() {
	w := s.do(http.MethodGet, "/api/episodes/pilot", nil)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestCreateEpisode_NumberConflict() {
	s.catalog.EXPECT().CreateEpisode(gomock.Any(), gomock.Any()).Return(domain.ErrConflict)

	w := s.do(http.MethodPost, "/api/episodes", gin.H{
		"programId":     "p1",
		"title":         "Duplicate",
		"episodeNumber": 2,
	})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *ServerTestSuite) TestCreateSource_RejectsUnknownType() {
	w := s.do(http.MethodPost, "/api/sources", gin.H{
		"sourceType": "soundcloud",
		"locator":    "https://example.com",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ServerTestSuite) TestCreateSource() {
	s.sources.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, src *domain.ImportSource) error {
			src.ID = "src-1"
			return nil
		},
	)

	w := s.do(http.MethodPost, "/api/sources", gin.H{
		"sourceType": "rss",
		"locator":    "https://example.com/feed.xml",
	})

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), "src-1")
}

func (s *ServerTestSuite) TestTriggerSync() {
	s.sources.EXPECT().GetByID(gomock.Any(), "src-1").Return(&domain.ImportSource{ID: "src-1"}, nil)
	s.publisher.EXPECT().Publish(gomock.Any(), queue.TopicSyncContent, queue.SyncContentPayload{ID: "src-1"}).Return(nil)

	w := s.do(http.MethodPost, "/api/sources/src-1/sync", nil)

	s.Equal(http.StatusAccepted, w.Code)
}

func (s *ServerTestSuite) TestTriggerSync_UnknownSource() {
	s.sources.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrNotFound)

	w := s.do(http.MethodPost, "/api/sources/missing/sync", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *ServerTestSuite) TestResyncPrograms() {
	s.catalog.EXPECT().ResyncPrograms(gomock.Any()).Return(42, nil)

	w := s.do(http.MethodPost, "/api/admin/resync/programs", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "42")
}
