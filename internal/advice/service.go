package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/certlab/examgrade/internal/exam"
	"github.com/certlab/examgrade/internal/llm"
)

// StudyPlan is the elaborated guidance attached to a set of
// recommendations.
type StudyPlan struct {
	Summary string      `json:"summary"`
	Focus   []FocusArea `json:"focus_areas"`
}

// FocusArea is one area-specific study activity.
type FocusArea struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
}

// Config tunes plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.4}
}

// Service turns recommendations into a narrative study plan. A nil
// provider is valid: the service then falls back to the rule-based text
// instead of failing, keeping the results page available.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advice service. provider may be nil.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Plan builds a study plan for the result. When no provider is
// configured or generation fails, it returns the fallback plan and a
// nil error; the caller never has to handle a degraded path.
func (s *Service) Plan(ctx context.Context, result *exam.DetailedResult) (*StudyPlan, []Recommendation) {
	recs := Recommend(result)
	if s.provider == nil || len(recs) == 0 {
		return fallbackPlan(result, recs), recs
	}

	plan, err := s.generate(ctx, result, recs)
	if err != nil {
		return fallbackPlan(result, recs), recs
	}
	return plan, recs
}

func (s *Service) generate(ctx context.Context, result *exam.DetailedResult, recs []Recommendation) (*StudyPlan, error) {
	req := llm.Request{
		System:      studyPlanSystemPrompt,
		Prompt:      buildPlanPrompt(result, recs),
		Schema:      StudyPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("study plan generation: %w", err)
	}

	var plan StudyPlan
	if err := json.Unmarshal(resp.Content, &plan); err != nil {
		return nil, fmt.Errorf("decode study plan: %w", err)
	}
	return &plan, nil
}

const studyPlanSystemPrompt = `You are a supportive exam coach. A learner just finished a certification practice exam and you are writing their study plan. Be specific, encouraging, and brief.`

func buildPlanPrompt(result *exam.DetailedResult, recs []Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall score: %d%% (%d of %d correct). Performance level: %s. Passed: %v.\n",
		result.ScorePercentage, result.CorrectAnswers, result.TotalQuestions, result.Performance, result.Passed)
	fmt.Fprintf(&b, "Time efficiency: %s.\n\n", result.Efficiency)

	b.WriteString("Weak areas, most important first:\n")
	for _, r := range recs {
		if r.AreaName == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s: scored %s\n", r.AreaName, r.Level)
	}

	b.WriteString("\nWrite a summary and one concrete study activity per weak area. Use the area names exactly as listed.")
	return b.String()
}

// fallbackPlan assembles a plan from the rule-based recommendations
// alone.
func fallbackPlan(result *exam.DetailedResult, recs []Recommendation) *StudyPlan {
	plan := &StudyPlan{}

	if result.Passed {
		plan.Summary = fmt.Sprintf("You passed with %d%%. Review the areas below to consolidate before the real exam.", result.ScorePercentage)
	} else {
		plan.Summary = fmt.Sprintf("You scored %d%%, below the passing threshold. Focus on the areas below and retake the practice exam.", result.ScorePercentage)
	}

	for _, r := range recs {
		if r.AreaName == "" {
			continue
		}
		plan.Focus = append(plan.Focus, FocusArea{Area: r.AreaName, Suggestion: r.Text})
	}
	return plan
}
