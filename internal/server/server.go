// Package server hosts the single-page dashboard over the loaded table.
package server

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/KaramelBytes/tpdash-cli/internal/config"
	"github.com/KaramelBytes/tpdash-cli/internal/dataset"
)

// Server renders the dashboard for one loaded dataset. The table is
// read-only for the server's lifetime; every request rebuilds criteria
// from its query string, so there is no per-user state to hold.
type Server struct {
	cfg      *config.Global
	res      *dataset.Result
	profiles []dataset.ColumnProfile
	tmpl     *template.Template
	mux      *http.ServeMux
}

// New builds a Server over a load result. The result's table may be
// empty; requests then get the terminal no-data page.
func New(cfg *config.Global, res *dataset.Result) (*Server, error) {
	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	s := &Server{
		cfg:      cfg,
		res:      res,
		profiles: dataset.Profile(res.Table),
		tmpl:     tmpl,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/export.csv", s.handleExport)
	s.mux.HandleFunc("/chart/", s.handleChart)
	s.mux.HandleFunc("/reset", s.handleReset)
	return s, nil
}

// Handler returns the routed handler wrapped with access logging.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// ListenAndServe blocks serving the dashboard on the configured address.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// logRequests tags each request with a short id so interleaved access
// log lines stay attributable.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s (%s)", reqID, r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	// Reset restores default criteria; the cached table is untouched.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
