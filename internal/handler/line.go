package handler

import (
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trainline/backend/internal/domain"
)

type createLineRequest struct {
	Name           string  `json:"name"`
	InitialStation *string `json:"initial_station,omitempty"`
}

type lineResponse struct {
	ID        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"created_at"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type lineListResponse struct {
	Data       []lineResponse `json:"data"`
	Pagination pagination     `json:"pagination"`
}

type summaryResponse struct {
	LineID openapi_types.UUID `json:"line_id"`
	Name   string             `json:"name"`
	Count  int                `json:"count"`
	Empty  bool               `json:"empty"`
}

// CreateLine handles POST /lines.
func (s *Server) CreateLine(w http.ResponseWriter, r *http.Request) {
	var req createLineRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := s.lines.Create(r.Context(), req.Name, req.InitialStation)
	if err != nil {
		writeError(w, r, err, "not found")
		return
	}
	writeJSON(w, http.StatusCreated, lineToResponse(created))
}

// ListLines handles GET /lines.
// Supports ?page= and ?limit= (defaults: page=1, limit=20, max=100).
func (s *Server) ListLines(w http.ResponseWriter, r *http.Request) {
	page, err := optionalIntQuery(r, "page")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	limit, err := optionalIntQuery(r, "limit")
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	lines, total, err := s.lines.List(r.Context(), params)
	if err != nil {
		writeError(w, r, err, "not found")
		return
	}

	data := make([]lineResponse, len(lines))
	for i, l := range lines {
		data[i] = lineToResponse(l)
	}
	writeJSON(w, http.StatusOK, lineListResponse{
		Data: data,
		Pagination: pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetLine handles GET /lines/{lineId}.
func (s *Server) GetLine(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}

	l, err := s.lines.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	writeJSON(w, http.StatusOK, lineToResponse(l))
}

// GetSummary handles GET /lines/{lineId}/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := lineIDParam(w, r)
	if !ok {
		return
	}

	sum, err := s.lines.Summary(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "line not found")
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		LineID: sum.LineID,
		Name:   sum.Name,
		Count:  sum.Count,
		Empty:  sum.Empty,
	})
}

func lineToResponse(l domain.Line) lineResponse {
	return lineResponse{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
	}
}
