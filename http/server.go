package http

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/lessonmark"
	"github.com/fwojciec/lessonmark/chat"
	"github.com/fwojciec/lessonmark/markdown"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MaxBodySize is the largest request body the render endpoints accept.
const MaxBodySize = 1 << 20

const (
	kindLesson = "lesson"
	kindChat   = "chat"
)

// Server serves the lesson and chat renderers over HTTP.
type Server struct {
	router    chi.Router
	renderers map[markdown.Options]*markdown.Renderer
	cache     lessonmark.RenderCache
	cacheTTL  time.Duration
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *metrics
}

// ServerOption configures a [Server].
type ServerOption func(*Server)

// WithCache stores rendered fragments in cache for ttl. A zero ttl keeps
// entries until the cache evicts them.
func WithCache(cache lessonmark.RenderCache, ttl time.Duration) ServerOption {
	return func(s *Server) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithLogger sets the logger for request and cache failures.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a [Server]. Each server owns its metrics registry.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		renderers: make(map[markdown.Options]*markdown.Renderer),
		logger:    slog.New(slog.DiscardHandler),
		registry:  prometheus.NewRegistry(),
	}
	for _, o := range opts {
		o(s)
	}
	for _, escape := range []bool{false, true} {
		for _, sanitize := range []bool{false, true} {
			o := markdown.Options{EscapeProseText: escape, Sanitize: sanitize}
			s.renderers[o] = markdown.New(o)
		}
	}
	s.metrics = newMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Post("/render/lesson", s.handleRenderLesson)
	r.Post("/render/chat", s.handleRenderChat)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type renderLessonRequest struct {
	Content         string `json:"content"`
	EscapeProseText bool   `json:"escape_prose_text"`
	Sanitize        bool   `json:"sanitize"`
}

type renderChatRequest struct {
	Content string `json:"content"`
}

type renderResponse struct {
	HTML   string `json:"html"`
	Cached bool   `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRenderLesson(w http.ResponseWriter, r *http.Request) {
	var req renderLessonRequest
	if !s.decode(w, r, &req) {
		return
	}
	opts := markdown.Options{EscapeProseText: req.EscapeProseText, Sanitize: req.Sanitize}
	renderer := s.renderers[opts]
	html, cached := s.render(r.Context(), kindLesson, cacheKey(kindLesson, opts, req.Content), func() string {
		return renderer.Render(req.Content)
	})
	s.writeJSON(w, http.StatusOK, renderResponse{HTML: html, Cached: cached})
}

func (s *Server) handleRenderChat(w http.ResponseWriter, r *http.Request) {
	var req renderChatRequest
	if !s.decode(w, r, &req) {
		return
	}
	html, cached := s.render(r.Context(), kindChat, cacheKey(kindChat, markdown.Options{}, req.Content), func() string {
		return chat.HTML(req.Content)
	})
	s.writeJSON(w, http.StatusOK, renderResponse{HTML: html, Cached: cached})
}

// render returns the cached fragment for key or renders and stores it.
// Cache failures are logged and otherwise ignored.
func (s *Server) render(ctx context.Context, kind, key string, fn func() string) (string, bool) {
	if s.cache != nil {
		html, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("render cache get failed", "kind", kind, "error", err)
		case ok:
			s.metrics.cacheHits.WithLabelValues(kind).Inc()
			return html, true
		}
	}

	start := time.Now()
	html := fn()
	s.metrics.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	s.metrics.renders.WithLabelValues(kind).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, html, s.cacheTTL); err != nil {
			s.logger.Warn("render cache set failed", "kind", kind, "error", err)
		}
	}
	return html, false
}

// cacheKey identifies a render by its kind, options and content.
func cacheKey(kind string, opts markdown.Options, content string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	h.Write([]byte{0, flag(opts.EscapeProseText), flag(opts.Sanitize), 0})
	h.Write([]byte(content))
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

func flag(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body exceeds "+strconv.Itoa(MaxBodySize)+" bytes")
			return false
		}
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
