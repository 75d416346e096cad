package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/risk-atlas/internal/choropleth"
	"github.com/sells-group/risk-atlas/internal/dataset"
	"github.com/sells-group/risk-atlas/internal/fetcher"
	"github.com/sells-group/risk-atlas/internal/render"
	"github.com/sells-group/risk-atlas/internal/resolve"
)

var servePort int

// dashServer holds everything a render session needs. Each request is its
// own session: fresh fetches, a fresh memory target, isolated widget failures.
type dashServer struct {
	loader      *dataset.Loader
	fetch       fetcher.Fetcher
	geometryURL string
	renderer    *choropleth.Renderer
	theme       render.Theme
	clock       *render.Clock
	orch        *render.Orchestrator
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv, err := newDashServer()
		if err != nil {
			return err
		}
		srv.clock.Start(ctx, cfg.Server.ClockInterval())

		r := buildRouter(srv, cfg.Server.AllowedOrigins)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			httpSrv.Shutdown(context.Background())
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "serve: listen")
		}

		return nil
	},
}

func buildRouter(srv *dashServer, origins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/dashboard", srv.handleDashboard)
	r.Get("/api/map", srv.handleMap)

	return r
}

func newDashServer() (*dashServer, error) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: cfg.Fetch.UserAgent,
		Timeout:   cfg.Fetch.Timeout(),
	})

	aliases, err := resolve.LoadAliases(cfg.Map.AliasFile)
	if err != nil {
		return nil, err
	}

	theme := render.DefaultTheme()
	return &dashServer{
		loader:      dataset.NewLoader(f, cfg.Data.URL),
		fetch:       f,
		geometryURL: cfg.Map.GeometryURL,
		renderer:    choropleth.NewRenderer(resolve.NewResolver(aliases), theme),
		theme:       theme,
		clock:       render.NewClock(),
		orch:        render.NewOrchestrator(),
	}, nil
}

// loadSession fetches the statistics document and the geometry concurrently.
// The dataset is load-bearing: its failure fails the session. Geometry is
// not: a nil FeatureCollection means the map degrades to a placeholder while
// every statistics widget still renders.
func (s *dashServer) loadSession(ctx context.Context) (*dataset.Document, *geojson.FeatureCollection, error) {
	var (
		doc *dataset.Document
		fc  *geojson.FeatureCollection
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.loader.Load(gctx)
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	g.Go(func() error {
		f, err := choropleth.LoadGeometry(gctx, s.fetch, s.geometryURL)
		if err != nil {
			// Already logged; the map widget shows its placeholder.
			return nil
		}
		fc = f
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return doc, fc, nil
}

func (s *dashServer) mapPayload(doc *dataset.Document, fc *geojson.FeatureCollection) func(ctx context.Context) (any, error) {
	return func(ctx context.Context) (any, error) {
		if fc == nil {
			return choropleth.Placeholder(), nil
		}
		return s.renderer.Build(doc.MapData, fc), nil
	}
}

func (s *dashServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	session := uuid.NewString()
	log := zap.L().With(zap.String("session", session))

	doc, fc, err := s.loadSession(r.Context())
	if err != nil {
		log.Error("dashboard session failed", zap.Error(err))
		writeSessionError(w, err)
		return
	}

	target := render.NewMemTarget()
	tasks := render.BuildTasks(doc, s.theme, s.clock, s.mapPayload(doc, fc))
	results := s.orch.Run(r.Context(), target, tasks)

	writeJSON(w, http.StatusOK, map[string]any{
		"session": session,
		"widgets": target.Payloads(),
		"results": results,
	})
}

func (s *dashServer) handleMap(w http.ResponseWriter, r *http.Request) {
	session := uuid.NewString()
	log := zap.L().With(zap.String("session", session))

	doc, fc, err := s.loadSession(r.Context())
	if err != nil {
		log.Error("map session failed", zap.Error(err))
		writeSessionError(w, err)
		return
	}

	if fc == nil {
		writeJSON(w, http.StatusOK, choropleth.Placeholder())
		return
	}
	writeJSON(w, http.StatusOK, s.renderer.Build(doc.MapData, fc))
}

func writeSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, dataset.ErrDataUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "data unavailable"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
