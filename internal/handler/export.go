// Package handler: export.go implements GET /export, a flat table of every
// line and its stations. ?format=csv returns CSV; the default is JSON.
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trainline/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{"line_id", "line_name", "position", "station_name"}

type exportRowResponse struct {
	LineID      openapi_types.UUID `json:"line_id"`
	LineName    string             `json:"line_name"`
	Position    *int               `json:"position,omitempty"` // nil for a line with no stations
	StationName string             `json:"station_name"`
}

// GetExport handles GET /export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		writeBadRequest(w, "format must be json or csv")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, r, err, "not found")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]exportRowResponse, len(rows))
	for i, row := range rows {
		out[i] = exportRowToResponse(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV buffers the whole table so Content-Length can be set.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer writes never fail.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func exportRowToResponse(row domain.ExportRow) exportRowResponse {
	out := exportRowResponse{
		LineID:      row.LineID,
		LineName:    row.LineName,
		StationName: row.StationName,
	}
	if row.Position >= 0 {
		pos := row.Position
		out.Position = &pos
	}
	return out
}

// exportRowToCSVRecord encodes a row as a flat string slice. A line with no
// stations gets an empty position column.
func exportRowToCSVRecord(row domain.ExportRow) []string {
	pos := ""
	if row.Position >= 0 {
		pos = strconv.Itoa(row.Position)
	}
	return []string{row.LineID.String(), row.LineName, pos, row.StationName}
}
