// Package server serves the rendered theme artifacts over HTTP.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/inkblue/themeconf/internal/render"
	"github.com/inkblue/themeconf/internal/tokens"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = "127.0.0.1:7420"

	shutdownGrace = 5 * time.Second
)

// ErrNotLoaded is returned by operations that need a loaded theme.
var ErrNotLoaded = errors.New("no theme loaded")

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithVersion sets the version reported by /healthz.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// Server serves the most recently loaded theme in every format.
type Server struct {
	logger    zerolog.Logger
	addr      string
	version   string
	startedAt time.Time

	current atomic.Pointer[snapshot]
	mux     *http.ServeMux
}

type artifact struct {
	format      render.Format
	body        []byte
	etag        string
	contentType string
}

type snapshot struct {
	artifacts map[string]artifact
	counts    map[string]int
	sources   []string
	loadedAt  time.Time
}

// New constructs a server. Artifacts answer 503 until the first Load.
func New(logger zerolog.Logger, opts ...Option) *Server {
	s := &Server{
		logger:    logger,
		addr:      DefaultAddr,
		version:   "dev",
		startedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	for _, f := range render.Formats() {
		path := "/" + render.FileName(f)
		mux.HandleFunc(path, s.handleArtifact(path))
	}
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	s.mux = mux
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Load validates cfg and renders every format into a new snapshot. An invalid
// record is rejected and the previous snapshot keeps being served.
func (s *Server) Load(cfg *tokens.Config, sources ...string) error {
	if err := tokens.Validate(cfg); err != nil {
		MetricReloads.WithLabelValues("rejected").Inc()
		return fmt.Errorf("validate theme: %w", err)
	}

	snap := &snapshot{
		artifacts: make(map[string]artifact, len(render.Formats())),
		counts:    make(map[string]int, len(tokens.Categories)),
		sources:   append([]string(nil), sources...),
		loadedAt:  time.Now(),
	}
	for _, f := range render.Formats() {
		body, err := render.Bytes(cfg, f)
		if err != nil {
			MetricReloads.WithLabelValues("error").Inc()
			return fmt.Errorf("render theme: %w", err)
		}
		sum := sha256.Sum256(body)
		snap.artifacts["/"+render.FileName(f)] = artifact{
			format:      f,
			body:        body,
			etag:        `"` + hex.EncodeToString(sum[:]) + `"`,
			contentType: render.ContentType(f),
		}
	}
	for _, category := range tokens.Categories {
		count := cfg.Theme.Extend.Count(category)
		snap.counts[category] = count
		MetricTokens.WithLabelValues(category).Set(float64(count))
	}

	s.current.Store(snap)
	MetricReloads.WithLabelValues("ok").Inc()
	MetricLastReload.Set(float64(snap.loadedAt.Unix()))

	s.logger.Info().
		Int("colors", snap.counts[tokens.CategoryColors]).
		Strs("sources", snap.sources).
		Msg("theme loaded")
	return nil
}

// ETag returns the entity tag currently served for path.
func (s *Server) ETag(path string) (string, error) {
	snap := s.current.Load()
	if snap == nil {
		return "", ErrNotLoaded
	}
	a, ok := snap.artifacts[path]
	if !ok {
		return "", fmt.Errorf("unknown artifact %s", path)
	}
	return a.etag, nil
}

func (s *Server) handleArtifact(path string) http.HandlerFunc {
	name := strings.TrimPrefix(path, "/")
	return func(w http.ResponseWriter, r *http.Request) {
		code := s.serveArtifact(w, r, path)
		MetricRequests.WithLabelValues(name, strconv.Itoa(code)).Inc()
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", path).
			Int("status", code).
			Msg("artifact request")
	}
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, path string) int {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}

	snap := s.current.Load()
	if snap == nil {
		w.Header().Set("Retry-After", "1")
		http.Error(w, ErrNotLoaded.Error(), http.StatusServiceUnavailable)
		return http.StatusServiceUnavailable
	}
	a := snap.artifacts[path]

	header := w.Header()
	header.Set("ETag", a.etag)
	header.Set("Cache-Control", "no-cache")
	header.Set("Last-Modified", snap.loadedAt.UTC().Format(http.TimeFormat))

	if etagMatches(r.Header.Get("If-None-Match"), a.etag) {
		w.WriteHeader(http.StatusNotModified)
		return http.StatusNotModified
	}

	header.Set("Content-Type", a.contentType)
	header.Set("Content-Length", strconv.Itoa(len(a.body)))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write(a.body)
	}
	return http.StatusOK
}

// etagMatches implements the weak comparison If-None-Match asks for.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

type healthResponse struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Uptime   string         `json:"uptime"`
	LoadedAt *time.Time     `json:"loaded_at,omitempty"`
	Sources  []string       `json:"sources,omitempty"`
	Tokens   map[string]int `json:"tokens,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:  "ok",
		Version: s.version,
		Uptime:  time.Since(s.startedAt).Truncate(time.Second).String(),
	}
	code := http.StatusOK
	if snap := s.current.Load(); snap != nil {
		loadedAt := snap.loadedAt
		resp.LoadedAt = &loadedAt
		resp.Sources = snap.sources
		resp.Tokens = snap.counts
	} else {
		resp.Status = "loading"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// Run serves until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info().
		Str("bind", listener.Addr().String()).
		Str("version", s.version).
		Msg("theme server starting")

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("theme server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
	}

	s.logger.Info().Msg("theme server stopped")
	return nil
}
