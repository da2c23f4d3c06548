package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gitlab.ozon.dev/safariproxd/recovery/internal/domain"
)

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.stats.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	var (
		filter    domain.RecordStatus
		hasFilter bool
	)
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, ok := domain.ParseStatus(raw)
		if !ok {
			writeError(w, domain.InvalidEventError("unknown status "+raw))
			return
		}
		filter, hasFilter = st, true
	}

	records, err := s.records.Snapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		if hasFilter && rec.Status != filter {
			continue
		}
		out = append(out, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": out, "count": len(out)})
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}
