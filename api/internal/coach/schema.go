package coach

// Schema is a declarative JSON Schema describing one response contract.
// All six contracts share a single parse-then-validate path (validate.go)
// parameterized by these definitions instead of hand-written validators.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Criteria names, in the order the score contract requires them.
var scoreCriteria = []string{
	"De-escalation",
	"Accuracy and reframing",
	"Care for targets/bystanders",
	"Platform fit",
	"Self-protection",
}

var scoreSchema = &Schema{
	Name: "score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"criterion": map[string]any{"type": "string"},
						"score":     map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
						"rationale": map[string]any{"type": "string"},
					},
					"required": []any{"criterion", "score", "rationale"},
				},
			},
			"suggested_rewrite": map[string]any{"type": "string"},
			"safety_flags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"scores", "suggested_rewrite", "safety_flags"},
	},
}

var scenarioSchema = &Schema{
	Name: "scenario",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			// Tolerated if the model sends one, but always discarded:
			// the server assigns a fresh id (see Service.GenerateScenario).
			"scenario_id":         map[string]any{"type": "string"},
			"context":             map[string]any{"type": "string"},
			"character_persona":   map[string]any{"type": "string"},
			"hate_speech_comment": map[string]any{"type": "string"},
		},
		"required": []any{"context", "character_persona", "hate_speech_comment"},
	},
}

var learnSchema = &Schema{
	Name: "lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"content": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items":    map[string]any{"type": "string"},
			},
			"example": map[string]any{"type": "string"},
		},
		"required": []any{"title", "content", "example"},
	},
}

var quizSchema = &Schema{
	Name: "quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items":    map[string]any{"type": "string"},
						},
						"correct_answer_index": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
					},
					"required": []any{"question_text", "options", "correct_answer_index"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

// telemetrySchema guards the inbound telemetry boundary: every field of the
// record is required, all-or-nothing, so a zero-defaulted record never
// reaches the sink.
var telemetrySchema = &Schema{
	Name: "telemetry",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scenario_id":              map[string]any{"type": "string"},
			"rubric_score_gain":        map[string]any{"type": "integer"},
			"session_duration_seconds": map[string]any{"type": "integer", "minimum": 0},
			"was_skipped":              map[string]any{"type": "boolean"},
			"was_flagged_distressing":  map[string]any{"type": "boolean"},
			"gentle_mode_active":       map[string]any{"type": "boolean"},
		},
		"required": []any{
			"scenario_id", "rubric_score_gain", "session_duration_seconds",
			"was_skipped", "was_flagged_distressing", "gentle_mode_active",
		},
	},
}

var gameItemSchema = &Schema{
	Name: "game-item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content":     map[string]any{"type": "string"},
			"is_real":     map[string]any{"type": "boolean"},
			"explanation": map[string]any{"type": "string"},
		},
		"required": []any{"content", "is_real", "explanation"},
	},
}
