package coach

// Request and response shapes for the six capabilities. The response structs
// are the strict contracts the model's JSON output is mapped onto; nothing is
// returned to a caller unless the whole contract validated.

type ScoreRequest struct {
	ScenarioID string `json:"scenario_id"`
	UserReply  string `json:"user_reply"`
	Locale     string `json:"locale"` // e.g. "en" or "ne"
}

// CriterionScore is a single rubric criterion with its result.
type CriterionScore struct {
	Criterion string `json:"criterion"`
	Score     int    `json:"score"` // 0..3
	Rationale string `json:"rationale"`
}

type ScoreResponse struct {
	Scores           []CriterionScore `json:"scores"` // exactly 5, fixed order
	SuggestedRewrite string           `json:"suggested_rewrite"`
	SafetyFlags      []string         `json:"safety_flags"`
}

type ScenarioRequest struct {
	Topic      string `json:"topic,omitempty"`
	GentleMode bool   `json:"gentle_mode,omitempty"`
}

type ScenarioResponse struct {
	// ScenarioID is always assigned server-side. A model-supplied id is
	// discarded during mapping, never echoed back.
	ScenarioID        string `json:"scenario_id"`
	Context           string `json:"context"`
	CharacterPersona  string `json:"character_persona"`
	HateSpeechComment string `json:"hate_speech_comment"`
}

type LearnRequest struct {
	Topic string `json:"topic"`
}

type LearnResponse struct {
	Title   string   `json:"title"`
	Content []string `json:"content"` // exactly 3 paragraphs
	Example string   `json:"example"`
}

type QuizRequest struct {
	Topic string `json:"topic"`
}

type QuizQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"` // exactly 4
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

type QuizResponse struct {
	Questions []QuizQuestion `json:"questions"` // exactly 3
}

type GameItemResponse struct {
	Content     string `json:"content"`
	IsReal      bool   `json:"is_real"`
	Explanation string `json:"explanation"`
}

// TelemetryData is inbound-only: accepted at the boundary and handed to the
// metrics sink, never persisted here.
type TelemetryData struct {
	ScenarioID             string `json:"scenario_id"`
	RubricScoreGain        int    `json:"rubric_score_gain"`
	SessionDurationSeconds int    `json:"session_duration_seconds"`
	WasSkipped             bool   `json:"was_skipped"`
	WasFlaggedDistressing  bool   `json:"was_flagged_distressing"`
	GentleModeActive       bool   `json:"gentle_mode_active"`
}
