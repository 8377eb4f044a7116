package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/certlab/examgrade/internal/exam"
)

var (
	areaSecurity = exam.KnowledgeArea{ID: "sec", Name: "Data Security", WeightPercentage: 40}
	areaNetworks = exam.KnowledgeArea{ID: "net", Name: "Networking", WeightPercentage: 35}
	areaGov      = exam.KnowledgeArea{ID: "gov", Name: "Governance", WeightPercentage: 25}
)

// singleChoice builds a four-option single-choice question whose correct
// option id is "<id>-a".
func singleChoice(id string, num int, area exam.KnowledgeArea, diff exam.DifficultyLevel) exam.Question {
	return exam.Question{
		ID:                 id,
		Number:             num,
		Area:               area,
		Difficulty:         diff,
		RequiredSelections: 1,
		Options: []exam.AnswerOption{
			{ID: id + "-a", Correct: true},
			{ID: id + "-b"},
			{ID: id + "-c"},
			{ID: id + "-d"},
		},
	}
}

func pick(qid, optID string, secs int) exam.UserAnswer {
	return exam.UserAnswer{QuestionID: qid, OptionID: &optID, TimeSpentSeconds: secs}
}

// quietEngine avoids log noise in test output.
func quietEngine() *Engine {
	return New(WithLogger(nil))
}

// Five single-choice questions, three answered correctly, threshold 65.
func TestCalculateExamResults_FiveQuestionScenario(t *testing.T) {
	questions := []exam.Question{
		singleChoice("q1", 1, areaSecurity, exam.DifficultyEasy),
		singleChoice("q2", 2, areaSecurity, exam.DifficultyEasy),
		singleChoice("q3", 3, areaNetworks, exam.DifficultyMedium),
		singleChoice("q4", 4, areaNetworks, exam.DifficultyMedium),
		singleChoice("q5", 5, areaGov, exam.DifficultyHard),
	}
	answers := []exam.UserAnswer{
		pick("q1", "q1-a", 60),
		pick("q2", "q2-a", 45),
		pick("q3", "q3-a", 80),
		pick("q4", "q4-b", 90), // wrong
		// q5 unanswered
	}
	attempt := exam.Attempt{ID: "att-1", TimeSpentMinutes: 6, QuestionCount: 5, AnswerCount: 4}

	res := quietEngine().CalculateExamResults(questions, answers, attempt, 65)

	if res.ScorePercentage != 60 {
		t.Errorf("ScorePercentage = %d, want 60", res.ScorePercentage)
	}
	if res.CorrectAnswers != 3 {
		t.Errorf("CorrectAnswers = %d, want 3", res.CorrectAnswers)
	}
	if res.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", res.TotalQuestions)
	}
	if res.Passed {
		t.Error("Passed = true, want false at threshold 65")
	}
	if res.Performance != exam.PerformanceNeedsImprovement {
		t.Errorf("Performance = %q, want needs_improvement", res.Performance)
	}
	if res.AttemptID != "att-1" {
		t.Errorf("AttemptID = %q, want att-1", res.AttemptID)
	}
	if len(res.Questions) != 5 {
		t.Fatalf("question results = %d, want 5", len(res.Questions))
	}
	if res.Questions[4].Correct {
		t.Error("unanswered q5 graded correct; must count as wrong")
	}
	if res.Questions[4].UserAnswerID != nil {
		t.Error("unanswered q5 has a user answer id")
	}
}

func TestCalculateExamResults_PassAtExactThreshold(t *testing.T) {
	questions := []exam.Question{
		singleChoice("q1", 1, areaSecurity, exam.DifficultyEasy),
		singleChoice("q2", 2, areaSecurity, exam.DifficultyEasy),
	}
	answers := []exam.UserAnswer{pick("q1", "q1-a", 30)}

	res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 50)
	if res.ScorePercentage != 50 || !res.Passed {
		t.Errorf("score %d passed %v, want 50 and passed (threshold is inclusive)", res.ScorePercentage, res.Passed)
	}
}

func TestCalculateExamResults_RoundsHalfUp(t *testing.T) {
	// 1/8 = 12.5% rounds to 13.
	questions := make([]exam.Question, 8)
	for i := range questions {
		questions[i] = singleChoice(string(rune('a'+i)), i+1, areaSecurity, exam.DifficultyEasy)
	}
	answers := []exam.UserAnswer{pick("a", "a-a", 10)}

	res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 65)
	if res.ScorePercentage != 13 {
		t.Errorf("ScorePercentage = %d, want 13 (round half up)", res.ScorePercentage)
	}
}

func TestCalculateExamResults_KnowledgeAreas(t *testing.T) {
	questions := []exam.Question{
		singleChoice("q1", 1, areaGov, exam.DifficultyEasy),
		singleChoice("q2", 2, areaSecurity, exam.DifficultyEasy),
		singleChoice("q3", 3, areaSecurity, exam.DifficultyMedium),
		singleChoice("q4", 4, areaNetworks, exam.DifficultyMedium),
	}
	answers := []exam.UserAnswer{
		pick("q1", "q1-a", 30),
		pick("q2", "q2-a", 30),
		pick("q3", "q3-x", 30), // wrong
	}

	res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 65)

	if len(res.AreaScores) != 3 {
		t.Fatalf("area scores = %d, want 3", len(res.AreaScores))
	}

	// Sorted by weight descending.
	wantOrder := []string{"sec", "net", "gov"}
	for i, want := range wantOrder {
		if res.AreaScores[i].ID != want {
			t.Errorf("area[%d] = %q, want %q", i, res.AreaScores[i].ID, want)
		}
	}

	// Partition invariant: area totals sum to the exam total.
	sum := 0
	for _, a := range res.AreaScores {
		sum += a.TotalQuestions
	}
	if sum != res.TotalQuestions {
		t.Errorf("sum of area totals = %d, want %d", sum, res.TotalQuestions)
	}

	sec := res.AreaScores[0]
	if sec.CorrectAnswers != 1 || sec.TotalQuestions != 2 || sec.ScorePercentage != 50 {
		t.Errorf("security area = %d/%d (%d%%), want 1/2 (50%%)", sec.CorrectAnswers, sec.TotalQuestions, sec.ScorePercentage)
	}
	if sec.Performance != exam.PerformancePoor {
		t.Errorf("security performance = %q, want poor", sec.Performance)
	}
	gov := res.AreaScores[2]
	if gov.ScorePercentage != 100 || gov.Performance != exam.PerformanceExcellent {
		t.Errorf("governance = %d%% %q, want 100%% excellent", gov.ScorePercentage, gov.Performance)
	}
}

func TestCalculateExamResults_DifficultyBreakdown(t *testing.T) {
	questions := []exam.Question{
		singleChoice("q1", 1, areaSecurity, exam.DifficultyEasy),
		singleChoice("q2", 2, areaSecurity, exam.DifficultyEasy),
		singleChoice("q3", 3, areaNetworks, exam.DifficultyHard),
	}
	answers := []exam.UserAnswer{
		pick("q1", "q1-a", 30),
		pick("q3", "q3-a", 120),
	}

	res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 65)

	easy := res.Difficulty[exam.DifficultyEasy]
	if easy.Correct != 1 || easy.Total != 2 || easy.Percentage != 50 {
		t.Errorf("easy = %+v, want 1/2 50%%", easy)
	}
	hard := res.Difficulty[exam.DifficultyHard]
	if hard.Correct != 1 || hard.Total != 1 || hard.Percentage != 100 {
		t.Errorf("hard = %+v, want 1/1 100%%", hard)
	}
	// Empty tiers still present.
	medium, ok := res.Difficulty[exam.DifficultyMedium]
	if !ok {
		t.Fatal("medium tier missing from breakdown")
	}
	if medium.Total != 0 || medium.Correct != 0 || medium.Percentage != 0 {
		t.Errorf("medium = %+v, want zeroes", medium)
	}
}

func TestCalculateExamResults_MultiSelectNoPartialCredit(t *testing.T) {
	q := exam.Question{
		ID:                 "q1",
		Number:             1,
		Area:               areaSecurity,
		Difficulty:         exam.DifficultyMedium,
		RequiredSelections: 3,
		Options: []exam.AnswerOption{
			{ID: "a", Correct: true},
			{ID: "b", Correct: true},
			{ID: "c", Correct: true},
			{ID: "d"},
		},
	}
	// Two of the three correct options, no wrong picks.
	answers := []exam.UserAnswer{
		pick("q1", "a", 20),
		pick("q1", "b", 25),
	}

	res := quietEngine().CalculateExamResults([]exam.Question{q}, answers, exam.Attempt{}, 65)

	if res.CorrectAnswers != 0 {
		t.Errorf("CorrectAnswers = %d, want 0 (incomplete selection, no partial credit)", res.CorrectAnswers)
	}
	if len(res.Questions) != 1 {
		t.Fatalf("question results = %d, want 1", len(res.Questions))
	}
	qr := res.Questions[0]
	if qr.Correct {
		t.Error("incomplete multi-select graded correct")
	}
	if qr.UserAnswerID == nil || *qr.UserAnswerID != "a" {
		t.Errorf("UserAnswerID = %v, want first selection a", qr.UserAnswerID)
	}
	if qr.TimeSpentSeconds != 45 {
		t.Errorf("TimeSpentSeconds = %d, want 45 (summed across selections)", qr.TimeSpentSeconds)
	}
	if qr.CorrectAnswerID != "a" {
		t.Errorf("CorrectAnswerID = %q, want first correct option a", qr.CorrectAnswerID)
	}
}

func TestCalculateExamResults_UnscoreableQuestion(t *testing.T) {
	broken := exam.Question{
		ID:                 "q1",
		Number:             1,
		Area:               areaSecurity,
		Difficulty:         exam.DifficultyEasy,
		RequiredSelections: 1,
		Options:            []exam.AnswerOption{{ID: "a"}, {ID: "b"}},
	}
	questions := []exam.Question{
		broken,
		singleChoice("q2", 2, areaSecurity, exam.DifficultyEasy),
	}
	answers := []exam.UserAnswer{
		pick("q1", "a", 30),
		pick("q2", "q2-a", 30),
	}

	res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 65)

	// Excluded from the tally, kept in the denominator.
	if res.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", res.CorrectAnswers)
	}
	if res.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2 (broken question still counts)", res.TotalQuestions)
	}
	if res.ScorePercentage != 50 {
		t.Errorf("ScorePercentage = %d, want 50", res.ScorePercentage)
	}
	// No per-question row for the unscoreable question.
	if len(res.Questions) != 1 || res.Questions[0].QuestionID != "q2" {
		t.Errorf("question results = %+v, want only q2", res.Questions)
	}
	if len(res.Diagnostics) != 1 || !strings.Contains(res.Diagnostics[0], "no correct option") {
		t.Errorf("Diagnostics = %v, want one no-correct-option warning", res.Diagnostics)
	}
	// The area denominator keeps it too.
	if res.AreaScores[0].TotalQuestions != 2 {
		t.Errorf("area total = %d, want 2", res.AreaScores[0].TotalQuestions)
	}
}

func TestCalculateExamResults_RequiredCountMismatchDiagnostic(t *testing.T) {
	q := exam.Question{
		ID:                 "q1",
		Number:             1,
		Area:               areaSecurity,
		Difficulty:         exam.DifficultyEasy,
		RequiredSelections: 2,
		Options: []exam.AnswerOption{
			{ID: "a", Correct: true},
			{ID: "b"},
		},
	}
	res := quietEngine().CalculateExamResults([]exam.Question{q}, nil, exam.Attempt{}, 65)

	if len(res.Diagnostics) != 1 || !strings.Contains(res.Diagnostics[0], "required selections") {
		t.Errorf("Diagnostics = %v, want one required-selections mismatch warning", res.Diagnostics)
	}
	// Scoring proceeds using the actual correct set.
	if len(res.Questions) != 1 {
		t.Fatalf("question results = %d, want 1", len(res.Questions))
	}
}

func TestCalculateExamResults_MonotonicInCorrectCount(t *testing.T) {
	questions := make([]exam.Question, 10)
	for i := range questions {
		questions[i] = singleChoice(string(rune('a'+i)), i+1, areaSecurity, exam.DifficultyEasy)
	}

	prev := -1
	for n := 0; n <= 10; n++ {
		var answers []exam.UserAnswer
		for i := 0; i < n; i++ {
			qid := string(rune('a' + i))
			answers = append(answers, pick(qid, qid+"-a", 10))
		}
		res := quietEngine().CalculateExamResults(questions, answers, exam.Attempt{}, 65)
		if res.ScorePercentage < prev {
			t.Fatalf("score dropped from %d to %d as correct count rose to %d", prev, res.ScorePercentage, n)
		}
		prev = res.ScorePercentage
	}
}

func TestCalculateExamResults_Idempotent(t *testing.T) {
	questions := []exam.Question{
		singleChoice("q1", 1, areaSecurity, exam.DifficultyEasy),
		singleChoice("q2", 2, areaNetworks, exam.DifficultyMedium),
		singleChoice("q3", 3, areaGov, exam.DifficultyHard),
	}
	answers := []exam.UserAnswer{
		pick("q1", "q1-a", 55),
		pick("q2", "q2-c", 70),
	}
	attempt := exam.Attempt{ID: "att-9", TimeSpentMinutes: 4}

	e := quietEngine()
	first := e.CalculateExamResults(questions, answers, attempt, 70)
	second := e.CalculateExamResults(questions, answers, attempt, 70)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestCalculateExamResults_EmptyExam(t *testing.T) {
	res := quietEngine().CalculateExamResults(nil, nil, exam.Attempt{TimeSpentMinutes: 10}, 65)

	if res.ScorePercentage != 0 || res.Passed {
		t.Errorf("empty exam: score %d passed %v, want 0 and not passed", res.ScorePercentage, res.Passed)
	}
	if res.Efficiency != exam.EfficiencyAdequate {
		t.Errorf("Efficiency = %q, want adequate guard for zero questions", res.Efficiency)
	}
}
