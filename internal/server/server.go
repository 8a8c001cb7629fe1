package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/openbiograph/biograph/internal/config"
	"github.com/openbiograph/biograph/internal/core"
	"github.com/openbiograph/biograph/internal/core/model"
	"github.com/openbiograph/biograph/internal/llm"
	"github.com/openbiograph/biograph/internal/source"
	"github.com/openbiograph/biograph/internal/store"
)

type Server struct {
	Resolver *core.Resolver
	Store    store.Store
}

func New(resolver *core.Resolver, st store.Store) *Server {
	return &Server{Resolver: resolver, Store: st}
}

// NewServer wires the whole service from config file and environment, in
// that order of precedence.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults with env overrides", cfgPath, err)
		cfg = config.Default()
	}
	applyEnvOverrides(cfg)

	st, err := store.NewBoltStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
	if err != nil {
		log.Fatalf("Failed to connect to graph store: %v", err)
	}
	if err := st.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	llmClient, embedder, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	wiki := source.NewWikipediaSource()
	fanOut := source.NewFanOut(
		wiki,
		source.NewFacebookSource(cfg.Sources.GoogleSearchAPIKey, cfg.Sources.GoogleSearchEngineID),
		source.NewWebSearchSource(cfg.Sources.GoogleSearchAPIKey, cfg.Sources.GoogleSearchEngineID),
		source.NewYouTubeSource(cfg.Sources.YouTubeAPIKey),
		source.NewLinkedInSource(cfg.Sources.GoogleSearchAPIKey, cfg.Sources.GoogleSearchEngineID),
		source.NewInstagramSource(cfg.Sources.GoogleSearchAPIKey, cfg.Sources.GoogleSearchEngineID),
	)

	resolver := core.NewResolver(st, fanOut, llm.NewPersonLookup(llmClient), embedder, wiki, cfg.Heuristics)

	return New(resolver, st)
}

func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_API_KEY"); v != "" {
		cfg.Sources.GoogleSearchAPIKey = v
	}
	if v := os.Getenv("GOOGLE_SEARCH_ENGINE_ID"); v != "" {
		cfg.Sources.GoogleSearchEngineID = v
	}
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		cfg.Sources.YouTubeAPIKey = v
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/search", s.Search)
	r.GET("/profiles/:id", s.GetProfile)
	r.GET("/profiles/:id/events", s.ListEvents)
	r.GET("/profiles/:id/biography", s.GetBiography)
	r.POST("/profiles/create-from-wikipedia", s.CreateFromWikipedia)

	return r
}

func (s *Server) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	res, err := s.Resolver.Resolve(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, core.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
			return
		}
		log.Printf("Search failed for %q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	switch res.Kind {
	case model.ResolutionExisting:
		c.JSON(http.StatusOK, gin.H{
			"profiles":   res.Profiles,
			"totalCount": len(res.Profiles),
		})
	case model.ResolutionCandidates:
		c.JSON(http.StatusOK, gin.H{
			"candidates": res.Candidates,
			"profiles":   []model.Profile{},
			"totalCount": 0,
			"message":    res.Message,
		})
	case model.ResolutionCreated:
		c.JSON(http.StatusOK, gin.H{
			"profiles":     res.Profiles,
			"totalCount":   len(res.Profiles),
			"isNewProfile": true,
			"message":      res.Message,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"profiles":   []model.Profile{},
			"totalCount": 0,
			"message":    res.Message,
		})
	}
}

func (s *Server) GetProfile(c *gin.Context) {
	profile, err := s.Store.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("Profile fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

type eventWithProvenance struct {
	model.StoredEvent
	Provenance []model.Provenance `json:"provenance"`
}

func (s *Server) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := s.Store.ListEvents(ctx, c.Param("id"))
	if err != nil {
		log.Printf("Events fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	out := make([]eventWithProvenance, 0, len(events))
	for _, ev := range events {
		prov, err := s.Store.ListProvenance(ctx, ev.ID)
		if err != nil {
			log.Printf("Provenance fetch failed for event %s: %v", ev.ID, err)
			prov = nil
		}
		if prov == nil {
			prov = []model.Provenance{}
		}
		out = append(out, eventWithProvenance{StoredEvent: ev, Provenance: prov})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

func (s *Server) GetBiography(c *gin.Context) {
	bio, err := s.Resolver.Biography(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, core.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		log.Printf("Biography generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"biography": bio})
}

type createFromWikipediaRequest struct {
	Title      string `json:"title" binding:"required"`
	SourceType string `json:"source_type"`
}

func (s *Server) CreateFromWikipedia(c *gin.Context) {
	var req createFromWikipediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title"})
		return
	}

	sourceType := model.SourceType(req.SourceType)
	if sourceType == "" {
		sourceType = model.SourceWikipedia
	}

	profile, events, err := s.Resolver.CreateFromSource(c.Request.Context(), req.Title, sourceType)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrPageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Wikipedia summary not found"})
		case errors.Is(err, core.ErrNotAPerson):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested page is not about a person"})
		case errors.Is(err, core.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing title"})
		default:
			log.Printf("Create-from-Wikipedia failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile, "events": events, "created": true})
}
