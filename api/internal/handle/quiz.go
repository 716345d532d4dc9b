package handle

import (
	"encoding/json"
	"net/http"
	"strings"

	"sathi-ally/api/internal/coach"
)

func (h *Handle) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req coach.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "topic is required"})
		return
	}

	ctx, cancel := modelContext(r)
	defer cancel()

	out, err := h.svc.GenerateQuiz(ctx, req)
	if err != nil {
		h.internalError(w, "generate_quiz", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
