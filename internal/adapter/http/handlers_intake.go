package adapthttp

import (
	"net/http"

	"fitcore/internal/domain"
)

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		items, err := s.svc.Intake.ListFoods(ctx, intQuery(r, "limit", 100))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})

	case http.MethodPost:
		var body struct {
			Name   string        `json:"name"`
			Brand  string        `json:"brand"`
			Per100 domain.Macros `json:"per100"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		food, err := s.svc.Intake.AddFood(ctx, domain.FoodItem{Name: body.Name, Brand: body.Brand, Per100: body.Per100})
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"food": food})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleIngestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		MealNumber int `json:"mealNumber"`
		Lines      []struct {
			FoodID   int64   `json:"foodId"`
			Quantity float64 `json:"quantity"`
		} `json:"lines"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	lines := make([]domain.IngestionLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		lines = append(lines, domain.IngestionLine{FoodID: l.FoodID, Quantity: l.Quantity})
	}
	ev, err := s.svc.Intake.LogMeal(r.Context(), userFromContext(r).ID, body.MealNumber, lines)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"event": ev})
}

func (s *Server) handleIngestionsToday(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	lines, totals, today, err := s.svc.Intake.Today(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"today": today, "items": lines, "totals": totals})
}

func (s *Server) handleIngestionsUndoLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	deleted, err := s.svc.Intake.UndoLast(r.Context(), userFromContext(r).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": deleted})
}
