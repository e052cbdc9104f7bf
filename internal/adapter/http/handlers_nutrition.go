package adapthttp

import (
	"net/http"
)

// handleNutritionSnapshot computes and stores a snapshot for ?day=YYYY-MM-DD,
// today when omitted.
func (s *Server) handleNutritionSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	snap, err := s.svc.Nutrition.ComputeSnapshot(r.Context(), userFromContext(r).ID, r.URL.Query().Get("day"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"snapshot": snap})
}

func (s *Server) handleNutritionRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	items, err := s.svc.Nutrition.ListRecent(r.Context(), userFromContext(r).ID, intQuery(r, "limit", 14))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
