package coach

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

const scenarioReply = "```json\n" + `{
  "scenario_id": "model-made-this-up",
  "context": "In the replies under a local news post about new migrants...",
  "character_persona": "An account that blames newcomers for everything.",
  "hate_speech_comment": "These people are ruining our town."
}` + "\n```"

func TestScoreReply_EndToEnd(t *testing.T) {
	llm := NewMockCompleter().Reply(validScoreJSON)
	svc := NewService(llm)

	out, err := svc.ScoreReply(context.Background(), ScoreRequest{
		ScenarioID: "s1",
		UserReply:  "Calm down, that's not true.",
		Locale:     "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Scores) != 5 {
		t.Fatalf("expected 5 scores, got %d", len(out.Scores))
	}
	for i, want := range scoreCriteria {
		if out.Scores[i].Criterion != want {
			t.Errorf("criterion %d: got %q, want %q", i, out.Scores[i].Criterion, want)
		}
	}
	if out.SuggestedRewrite == "" {
		t.Error("expected non-empty suggested_rewrite")
	}
	if out.SafetyFlags == nil {
		t.Error("safety_flags must be a sequence, not null")
	}

	if len(llm.Prompts) != 1 {
		t.Fatalf("expected single completion attempt, got %d", len(llm.Prompts))
	}
	if !strings.Contains(llm.Prompts[0], `User Reply to analyze: "Calm down, that's not true."`) {
		t.Error("prompt does not carry the user reply verbatim")
	}
}

func TestScoreReply_SafetyFlagsCarried(t *testing.T) {
	raw := strings.Replace(validScoreJSON, `"safety_flags": []`, `"safety_flags": ["self_harm_mention"]`, 1)
	svc := NewService(NewMockCompleter().Reply(raw))
	out, err := svc.ScoreReply(context.Background(), ScoreRequest{UserReply: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.SafetyFlags) != 1 || out.SafetyFlags[0] != "self_harm_mention" {
		t.Errorf("safety_flags = %v", out.SafetyFlags)
	}
}

func TestScoreReply_UpstreamFailure(t *testing.T) {
	svc := NewService(NewMockCompleter().Fail(errors.New("connection refused")))
	_, err := svc.ScoreReply(context.Background(), ScoreRequest{UserReply: "x"})
	var up *ErrUpstreamUnavailable
	if !errors.As(err, &up) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %T: %v", err, err)
	}
}

func TestScoreReply_FencedReply(t *testing.T) {
	svc := NewService(NewMockCompleter().Reply("```json\n" + validScoreJSON + "\n```"))
	if _, err := svc.ScoreReply(context.Background(), ScoreRequest{UserReply: "x"}); err != nil {
		t.Fatalf("fenced reply should validate: %v", err)
	}
}

func TestGenerateScenario_ServerAssignedID(t *testing.T) {
	svc := NewService(NewMockCompleter().Reply(scenarioReply).Reply(scenarioReply))

	first, err := svc.GenerateScenario(context.Background(), ScenarioRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ScenarioID == "model-made-this-up" {
		t.Fatal("model-supplied scenario_id leaked into the contract")
	}
	if _, err := uuid.Parse(first.ScenarioID); err != nil {
		t.Fatalf("scenario_id %q is not a UUID: %v", first.ScenarioID, err)
	}

	second, err := svc.GenerateScenario(context.Background(), ScenarioRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ScenarioID == first.ScenarioID {
		t.Error("scenario_id must be fresh on every response")
	}
}

func TestGenerateScenario_PromptVariables(t *testing.T) {
	llm := NewMockCompleter().Reply(scenarioReply).Reply(scenarioReply).Reply(scenarioReply)
	svc := NewService(llm)

	_, _ = svc.GenerateScenario(context.Background(), ScenarioRequest{})
	_, _ = svc.GenerateScenario(context.Background(), ScenarioRequest{Topic: "football"})
	_, _ = svc.GenerateScenario(context.Background(), ScenarioRequest{GentleMode: true})

	if strings.Contains(llm.Prompts[0], "related to the topic") {
		t.Error("empty topic must not add a topic clause")
	}
	if !strings.Contains(llm.Prompts[1], "the topic of: 'football'") {
		t.Error("topic clause missing")
	}
	if !strings.Contains(llm.Prompts[2], "gentle mode") {
		t.Error("gentle mode clause missing")
	}
}

func TestGenerateLesson(t *testing.T) {
	raw := `{"title":"Spotting dog whistles","content":["a","b","c"],"example":"e"}`
	llm := NewMockCompleter().Reply(raw)
	svc := NewService(llm)

	out, err := svc.GenerateLesson(context.Background(), LearnRequest{Topic: "dog whistles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Content) != 3 {
		t.Fatalf("expected 3 content items, got %d", len(out.Content))
	}
	if !strings.Contains(llm.Prompts[0], "Topic for the lesson: dog whistles") {
		t.Error("topic not appended to lesson prompt")
	}
}

func TestGenerateQuiz(t *testing.T) {
	raw := `{"questions":[
	  {"question_text":"q1","options":["a","b","c","d"],"correct_answer_index":0},
	  {"question_text":"q2","options":["a","b","c","d"],"correct_answer_index":3},
	  {"question_text":"q3","options":["a","b","c","d"],"correct_answer_index":1}
	]}`
	svc := NewService(NewMockCompleter().Reply(raw))

	out, err := svc.GenerateQuiz(context.Background(), QuizRequest{Topic: "misinformation"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(out.Questions))
	}
}

func TestGenerateGameItem(t *testing.T) {
	raw := `{"content":"Breaking: ...","is_real":false,"explanation":"No source exists."}`
	llm := NewMockCompleter().Reply(raw)
	svc := NewService(llm)

	out, err := svc.GenerateGameItem(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.IsReal {
		t.Error("expected is_real=false")
	}
	if llm.Prompts[0] != buildGameItemPrompt() {
		t.Error("game item prompt must carry no caller variables")
	}
}

func TestService_NonJSONReply(t *testing.T) {
	svc := NewService(NewMockCompleter().Reply("I'm sorry, I can't help with that."))
	_, err := svc.GenerateGameItem(context.Background())
	var mj *ErrMalformedJSON
	if !errors.As(err, &mj) {
		t.Fatalf("expected ErrMalformedJSON, got %T: %v", err, err)
	}
}

func TestService_WrongShapeReply(t *testing.T) {
	svc := NewService(NewMockCompleter().Reply(`{"totally":"different"}`))
	_, err := svc.GenerateScenario(context.Background(), ScenarioRequest{})
	var sm *ErrSchemaMismatch
	if !errors.As(err, &sm) {
		t.Fatalf("expected ErrSchemaMismatch, got %T: %v", err, err)
	}
}
