package handle

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"sathi-ally/api/internal/coach"
)

// Telemetry accepts a session record and acknowledges immediately; the sink
// write happens off the request path and its failures stay internal. The
// record is validated whole at the boundary before anything is forwarded.
func (h *Handle) Telemetry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad body: " + err.Error()})
		return
	}
	data, err := coach.DecodeTelemetry(body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad telemetry: " + err.Error()})
		return
	}

	go func(d coach.TelemetryData) {
		h.log.Info("telemetry received",
			zap.String("scenario_id", d.ScenarioID),
			zap.Int("rubric_score_gain", d.RubricScoreGain),
			zap.Int("session_duration_seconds", d.SessionDurationSeconds),
			zap.Bool("was_skipped", d.WasSkipped),
			zap.Bool("was_flagged_distressing", d.WasFlaggedDistressing),
			zap.Bool("gentle_mode_active", d.GentleModeActive),
		)
	}(data)

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
