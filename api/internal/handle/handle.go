package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sathi-ally/api/internal/coach"
	"sathi-ally/api/internal/store"
)

// modelTimeout bounds the completion call; the upstream has no deadline of
// its own.
const modelTimeout = 60 * time.Second

type Handle struct {
	svc   *coach.Service
	board store.Leaderboard
	log   *zap.Logger
}

func New(svc *coach.Service, board store.Leaderboard, log *zap.Logger) *Handle {
	return &Handle{
		svc:   svc,
		board: board,
		log:   log,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// internalError logs the real failure kind and collapses it to one opaque
// body for the caller.
func (h *Handle) internalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func modelContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), modelTimeout)
}
