package coach

import (
	"context"

	"github.com/google/uuid"
)

// Completer is the external generative-language model: prompt in, text out.
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service dispatches the five model-backed capabilities. Each follows the
// same skeleton: build prompt, call the completer once (no retries), strip
// fences, validate against the contract schema, return the typed value.
type Service struct {
	llm Completer
}

func NewService(llm Completer) *Service {
	return &Service{llm: llm}
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", &ErrUpstreamUnavailable{Err: err}
	}
	return raw, nil
}

func (s *Service) ScoreReply(ctx context.Context, req ScoreRequest) (*ScoreResponse, error) {
	raw, err := s.complete(ctx, buildScorePrompt(req.UserReply))
	if err != nil {
		return nil, err
	}
	out, err := decodeContract[ScoreResponse](scoreSchema, extractJSON(raw))
	if err != nil {
		return nil, err
	}
	if err := checkScoreCriteria(out.Scores); err != nil {
		return nil, err
	}
	if out.SafetyFlags == nil {
		out.SafetyFlags = []string{}
	}
	return &out, nil
}

func (s *Service) GenerateScenario(ctx context.Context, req ScenarioRequest) (*ScenarioResponse, error) {
	raw, err := s.complete(ctx, buildScenarioPrompt(req.Topic, req.GentleMode))
	if err != nil {
		return nil, err
	}
	out, err := decodeContract[ScenarioResponse](scenarioSchema, extractJSON(raw))
	if err != nil {
		return nil, err
	}
	// Fresh id on every response; anything the model sent is overwritten.
	out.ScenarioID = uuid.NewString()
	return &out, nil
}

func (s *Service) GenerateLesson(ctx context.Context, req LearnRequest) (*LearnResponse, error) {
	raw, err := s.complete(ctx, buildLearnPrompt(req.Topic))
	if err != nil {
		return nil, err
	}
	out, err := decodeContract[LearnResponse](learnSchema, extractJSON(raw))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) GenerateQuiz(ctx context.Context, req QuizRequest) (*QuizResponse, error) {
	raw, err := s.complete(ctx, buildQuizPrompt(req.Topic))
	if err != nil {
		return nil, err
	}
	out, err := decodeContract[QuizResponse](quizSchema, extractJSON(raw))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) GenerateGameItem(ctx context.Context) (*GameItemResponse, error) {
	raw, err := s.complete(ctx, buildGameItemPrompt())
	if err != nil {
		return nil, err
	}
	out, err := decodeContract[GameItemResponse](gameItemSchema, extractJSON(raw))
	if err != nil {
		return nil, err
	}
	return &out, nil
}
