package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	fishdating "github.com/quinnjr/fish-dating-simulator"
	"github.com/quinnjr/fish-dating-simulator/internal/presentation/graph"
	"github.com/quinnjr/fish-dating-simulator/pkg/characters"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
)

// Character is the summary view of one dateable fish.
type Character struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Description  string  `json:"description"`
	Difficulty   float64 `json:"difficulty"`
	Color        string  `json:"color"`
	Pond         string  `json:"pond"`
	DateLocation string  `json:"date_location"`
	Dates        int     `json:"dates"`
	Plugin       bool    `json:"plugin"`
}

// CharacterDetail adds the art and dialogue titles to the summary.
type CharacterDetail struct {
	Character
	ArtHappy     string   `json:"art_happy"`
	ArtNeutral   string   `json:"art_neutral"`
	ArtSad       string   `json:"art_sad"`
	ArtSmall     string   `json:"art_small"`
	DateSceneArt string   `json:"date_scene_art"`
	DateTitles   []string `json:"date_titles"`
}

// Server exposes the character catalog read-only.
type Server struct {
	Catalog *characters.Catalog
	Metrics *observability.Metrics
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts the metrics registry under /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.Metrics = m
	}
}

// NewHandler creates the inspection API for a catalog.
func NewHandler(catalog *characters.Catalog, opts ...Option) http.Handler {
	s := &Server{
		Catalog: catalog,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/characters", func(r chi.Router) {
		r.Get("/", s.ListCharacters)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetCharacter)
			r.Get("/dates/{n}", s.GetDate)
			r.Get("/dates/{n}/mermaid", s.GetDateMermaid)
		})
	})
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics.Handler())
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"app":     "fishdating-http",
		"version": strings.TrimSpace(fishdating.Version),
		"plugins": s.Catalog.Registry().Count(),
	})
}

// ListCharacters handles GET /characters.
func (s *Server) ListCharacters(w http.ResponseWriter, r *http.Request) {
	ids := s.Catalog.All()
	out := make([]Character, 0, len(ids))
	for _, id := range ids {
		if def, ok := s.Catalog.Lookup(id); ok {
			out = append(out, summarize(id, def))
		}
	}
	s.writeJSON(w, out)
}

// GetCharacter handles GET /characters/{id}.
func (s *Server) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, def, ok := s.lookup(w, r)
	if !ok {
		return
	}

	detail := CharacterDetail{
		Character:    summarize(id, def),
		ArtHappy:     def.ArtHappy,
		ArtNeutral:   def.ArtNeutral,
		ArtSad:       def.ArtSad,
		ArtSmall:     def.ArtSmall,
		DateSceneArt: def.DateSceneArt,
		DateTitles:   make([]string, 0, len(def.Dialogues)),
	}
	for _, t := range def.Dialogues {
		detail.DateTitles = append(detail.DateTitles, t.Title())
	}
	s.writeJSON(w, detail)
}

// GetDate handles GET /characters/{id}/dates/{n}, returning the dialogue tree of date n.
func (s *Server) GetDate(w http.ResponseWriter, r *http.Request) {
	tree, ok := s.tree(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, tree)
}

// GetDateMermaid handles GET /characters/{id}/dates/{n}/mermaid.
func (s *Server) GetDateMermaid(w http.ResponseWriter, r *http.Request) {
	tree, ok := s.tree(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, graph.GenerateMermaid(tree, nil)); err != nil {
		s.Logger.Error("mermaid response write failed", "err", err)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (domain.FishID, *domain.FishDef, bool) {
	raw := chi.URLParam(r, "id")
	id, err := s.Catalog.Resolve(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return domain.FishID{}, nil, false
	}
	def, ok := s.Catalog.Lookup(id)
	if !ok {
		http.Error(w, "character not found: "+raw, http.StatusNotFound)
		return domain.FishID{}, nil, false
	}
	return id, def, true
}

func (s *Server) tree(w http.ResponseWriter, r *http.Request) (*domain.Tree, bool) {
	id, _, ok := s.lookup(w, r)
	if !ok {
		return nil, false
	}
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil || n < 0 {
		http.Error(w, "date number must be a non-negative integer", http.StatusBadRequest)
		return nil, false
	}
	return s.Catalog.Dialogue(id, n), true
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}

func summarize(id domain.FishID, def *domain.FishDef) Character {
	return Character{
		ID:           id.String(),
		Name:         def.Name,
		Species:      def.Species,
		Description:  def.Description,
		Difficulty:   def.Difficulty,
		Color:        def.Color.Hex(),
		Pond:         def.PondName,
		DateLocation: def.DateLocation,
		Dates:        len(def.Dialogues),
		Plugin:       id.IsPlugin(),
	}
}
