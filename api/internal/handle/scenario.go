package handle

import (
	"encoding/json"
	"io"
	"net/http"

	"sathi-ally/api/internal/coach"
)

func (h *Handle) GenerateScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	// Both fields are optional; an empty body is a valid request.
	var req coach.ScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}

	ctx, cancel := modelContext(r)
	defer cancel()

	out, err := h.svc.GenerateScenario(ctx, req)
	if err != nil {
		h.internalError(w, "generate_scenario", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
