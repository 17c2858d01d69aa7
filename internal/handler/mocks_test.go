package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trainline/backend/internal/domain"
	"github.com/pkordes/trainline/backend/internal/handler"
	"github.com/pkordes/trainline/backend/internal/metrics"
)

// mockLineServicer is a test double for handler.LineServicer.
// Set only the method fields your test needs.
type mockLineServicer struct {
	create        func(ctx context.Context, name string, initialStation *string) (domain.Line, error)
	getByID       func(ctx context.Context, id uuid.UUID) (domain.Line, error)
	list          func(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error)
	appendStation func(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error)
	stations      func(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error)
	summary       func(ctx context.Context, lineID uuid.UUID) (domain.Summary, error)
	search        func(ctx context.Context, lineID uuid.UUID, name *string) (domain.SearchResult, error)
	reverse       func(ctx context.Context, lineID uuid.UUID) (string, error)
}

func (m *mockLineServicer) Create(ctx context.Context, name string, initialStation *string) (domain.Line, error) {
	return m.create(ctx, name, initialStation)
}
func (m *mockLineServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Line, error) {
	return m.getByID(ctx, id)
}
func (m *mockLineServicer) List(ctx context.Context, p domain.PaginationParams) ([]domain.Line, int64, error) {
	return m.list(ctx, p)
}
func (m *mockLineServicer) AppendStation(ctx context.Context, lineID uuid.UUID, name string) (domain.Station, error) {
	return m.appendStation(ctx, lineID, name)
}
func (m *mockLineServicer) Stations(ctx context.Context, lineID uuid.UUID) ([]domain.Station, error) {
	return m.stations(ctx, lineID)
}
func (m *mockLineServicer) Summary(ctx context.Context, lineID uuid.UUID) (domain.Summary, error) {
	return m.summary(ctx, lineID)
}
func (m *mockLineServicer) Search(ctx context.Context, lineID uuid.UUID, name *string) (domain.SearchResult, error) {
	return m.search(ctx, lineID, name)
}
func (m *mockLineServicer) Reverse(ctx context.Context, lineID uuid.UUID) (string, error) {
	return m.reverse(ctx, lineID)
}

// compile-time check: mockLineServicer must satisfy handler.LineServicer.
var _ handler.LineServicer = (*mockLineServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks and fresh metrics.
func newHTTPHandler(lines handler.LineServicer, export handler.ExportServicer) (http.Handler, *metrics.Metrics) {
	m := metrics.New()
	return handler.NewServer(lines, export, m).Routes(), m
}

// jsonBody marshals v into a request body.
func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// decodeBody decodes a JSON response body into a value of type T.
func decodeBody[T any](t *testing.T, r io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(r).Decode(&v))
	return v
}

// errorEnvelope mirrors the JSON error response.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
