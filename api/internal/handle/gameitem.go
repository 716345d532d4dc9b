package handle

import "net/http"

func (h *Handle) GenerateGameItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}

	ctx, cancel := modelContext(r)
	defer cancel()

	out, err := h.svc.GenerateGameItem(ctx)
	if err != nil {
		h.internalError(w, "generate_game_item", err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
