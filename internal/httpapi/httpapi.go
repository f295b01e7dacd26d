// Package httpapi exposes the catalog, registration pipeline, and
// remove/verify operations over HTTP, per spec.md §6's thin API contract.
// This surface is an external collaborator of the ingestion/catalog
// core (spec.md §1), not itself part of the spec'd invariants — it only
// translates requests into calls against internal/catalog,
// internal/register, internal/remove, and internal/importer, and maps
// their errors through internal/catalogerr.
//
// Grounded on the pack's go-chi/chi/v5 dependency (surfaced via
// AKJUS-bsc-erigon's go.mod) for routing, and go.uber.org/zap for
// structured logging per spec.md §7's debug/error log-level split.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/codeninja55/rudicom/internal/catalog"
	"github.com/codeninja55/rudicom/internal/register"
)

// Server holds the dependencies every handler needs.
type Server struct {
	Catalog  *catalog.Catalog
	Pipeline *register.Pipeline
	Log      *zap.Logger

	// UploadSizeLimitBytes bounds POST /instances request bodies; 0 means
	// unbounded.
	UploadSizeLimitBytes int64
}

// NewRouter builds the full route table spec.md §6 documents. Bulk import
// (internal/importer) is not exposed here — spec.md §6 puts it behind the
// CLI's import subcommand instead.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Post("/instances", s.handleCreateInstance)

	r.Route("/{table}/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetEntry)
		r.Get("/parents", s.handleGetParents)
		r.Get("/instances", s.handleGetInstances)
		r.Get("/series", s.handleGetSeries)
		r.Delete("/", s.handleDeleteEntry)
		r.Get("/verify", s.handleVerifyEntry)
	})

	r.Get("/instances/{id}/file", s.handleGetInstanceFile)
	r.Get("/instances/{id}/png", s.handleGetInstancePNG)

	r.Get("/statistics", s.handleStatistics)
	r.Get("/info", s.handleInfo)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.Log.Debug("request", zap.String("method", req.Method), zap.String("path", req.URL.Path))
		next.ServeHTTP(w, req)
	})
}
