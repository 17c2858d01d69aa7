// Package handler implements the HTTP handlers for the train line API.
// All handlers are methods on Server; Routes wires them onto a chi router.
// Methods are split into resource files (health.go, line.go, station.go,
// export.go) but share the Server struct and its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trainline/backend/internal/domain"
	"github.com/pkordes/trainline/backend/internal/metrics"
	"github.com/pkordes/trainline/backend/openapi"
)

// LineServicer defines the business operations the line and station
// handlers depend on. It is declared here, in the consumer, so handler tests
// can inject a mock without a database.
type LineServicer interface {
	Create(ctx context.Context, name string, initialStation *string) (domain.Line, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error)
	AppendStation(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error)
	Stations(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error)
	Summary(ctx context.Context, lineID uuid.UUID) (domain.Summary, error)
	Search(ctx context.Context, lineID uuid.UUID, name *string) (domain.SearchResult, error)
	Reverse(ctx context.Context, lineID uuid.UUID) (string, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	lines   LineServicer
	export  ExportServicer
	metrics *metrics.Metrics
}

// NewServer constructs the Server with all its dependencies.
func NewServer(lines LineServicer, export ExportServicer, m *metrics.Metrics) *Server {
	return &Server{lines: lines, export: export, metrics: m}
}

// Routes returns a chi router with every API endpoint registered.
// Cross-cutting middleware (logging, CORS, metrics) is applied by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)
	r.Get("/export", s.GetExport)

	r.Route("/lines", func(r chi.Router) {
		r.Get("/", s.ListLines)
		r.Post("/", s.CreateLine)

		r.Route("/{lineId}", func(r chi.Router) {
			r.Get("/", s.GetLine)
			r.Get("/stations", s.ListStations)
			r.Post("/stations", s.AppendStation)
			r.Get("/summary", s.GetSummary)
			r.Get("/search", s.SearchStation)
			r.Get("/reverse", s.ReverseStations)
		})
	})

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapi.Document)
}
