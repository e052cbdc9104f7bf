package adapthttp

import (
	"net/http"

	"fitcore/internal/app"
)

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		p, err := s.svc.Profiles.Get(ctx, user.ID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p})

	case http.MethodPut:
		var body app.ProfileUpdate
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		p, err := s.svc.Profiles.Update(ctx, user.ID, body)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"profile": p})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
