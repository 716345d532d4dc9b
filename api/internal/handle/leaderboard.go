package handle

import (
	"encoding/json"
	"net/http"
	"strings"
)

const leaderboardLimit = 50

type UpdateScoreRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XPGained int    `json:"xp_gained"`
}

func (h *Handle) UpdateScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id is required"})
		return
	}

	if err := h.board.UpsertAccumulate(r.Context(), req.UserID, req.Username, req.XPGained); err != nil {
		h.internalError(w, "update_score", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *Handle) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "GET only"})
		return
	}

	entries, err := h.board.TopN(r.Context(), leaderboardLimit)
	if err != nil {
		h.internalError(w, "leaderboard", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
