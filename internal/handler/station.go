package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// appendStationRequest uses a pointer so a missing name (rejected) can be
// told apart from an empty one (a valid station name).
type appendStationRequest struct {
	Name *string `json:"name"`
}

type stationResponse struct {
	ID        openapi_types.UUID `json:"id"`
	LineID    openapi_types.UUID `json:"line_id"`
	Name      string             `json:"name"`
	Position  int                `json:"position"`
	CreatedAt time.Time          `json:"created_at"`
}

type searchResponse struct {
	Name     *string `json:"name,omitempty"`
	Contains bool    `json:"contains"`
	Index    int     `json:"index"`
}

// AppendStation handles POST /lines/{lineId}/stations.
func (s *Server) AppendStation(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}
	var req appendStationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == nil {
		writeBadRequest(w, "name is required")
		return
	}

	st, err := s.lines.AppendStation(r.Context(), id, *req.Name)
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	s.metrics.StationsAppended.Inc()
	writeJSON(w, http.StatusCreated, stationToResponse(st))
}

// ListStations handles GET /lines/{lineId}/stations.
// Stations are returned head to tail.
func (s *Server) ListStations(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}

	stations, err := s.lines.Stations(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	out := make([]stationResponse, len(stations))
	for i, st := range stations {
		out[i] = stationToResponse(st)
	}
	writeJSON(w, http.StatusOK, out)
}

// SearchStation handles GET /lines/{lineId}/search?name=.
// An absent name parameter is not an error; it reports contains=false and
// index=-1.
func (s *Server) SearchStation(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}

	res, err := s.lines.Search(r.Context(), id, optionalStringQuery(r, "name"))
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Name:     res.Name,
		Contains: res.Contains,
		Index:    res.Index,
	})
}

// ReverseStations handles GET /lines/{lineId}/reverse.
// The body is the station names from tail to head, one per line, with no
// trailing newline; an empty line yields an empty body.
func (s *Server) ReverseStations(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}

	reversed, err := s.lines.Reverse(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(reversed))
}

func stationToResponse(st domain.Station) stationResponse {
	return stationResponse{
		ID:        st.ID,
		LineID:    st.LineID,
		Name:      st.Name,
		Position:  st.Position,
		CreatedAt: st.CreatedAt,
	}
}
