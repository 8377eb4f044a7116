package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/certlab/examgrade/internal/advice"
	"github.com/certlab/examgrade/internal/catalog"
	"github.com/certlab/examgrade/internal/exam"
	"github.com/certlab/examgrade/internal/llm"
	"github.com/certlab/examgrade/internal/report"
	"github.com/certlab/examgrade/internal/scoring"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a completed exam attempt",
	Long: `Grade a completed attempt against a question catalog.

Questions come from either a JSON catalog file (--questions) or a SQLite
question bank (--bank with --exam). The passing threshold defaults to
the catalog's own threshold; --threshold overrides it.`,
	RunE: runGrade,
}

func init() {
	gradeCmd.Flags().String("questions", "", "Path to a JSON question catalog")
	gradeCmd.Flags().String("bank", "", "Path to a SQLite question bank")
	gradeCmd.Flags().String("exam", "", "Exam id within the question bank")
	gradeCmd.Flags().String("answers", "", "Path to the submitted session JSON (required)")
	gradeCmd.Flags().Int("threshold", 65, "Passing threshold as a score percentage")
	gradeCmd.Flags().Bool("json", false, "Emit the result as JSON instead of a styled report")
	gradeCmd.Flags().Bool("advice", false, "Append study recommendations (terminal output only)")
	_ = gradeCmd.MarkFlagRequired("answers")
}

func runGrade(cmd *cobra.Command, args []string) error {
	questionsPath, _ := cmd.Flags().GetString("questions")
	bankDSN, _ := cmd.Flags().GetString("bank")
	examID, _ := cmd.Flags().GetString("exam")
	answersPath, _ := cmd.Flags().GetString("answers")
	threshold, _ := cmd.Flags().GetInt("threshold")
	jsonOut, _ := cmd.Flags().GetBool("json")
	withAdvice, _ := cmd.Flags().GetBool("advice")

	questions, catalogThreshold, err := loadQuestions(cmd, questionsPath, bankDSN, examID)
	if err != nil {
		return err
	}
	// Flag wins over the catalog's own threshold.
	if !cmd.Flags().Changed("threshold") && catalogThreshold > 0 {
		threshold = catalogThreshold
	}

	session, err := catalog.LoadSession(answersPath)
	if err != nil {
		return err
	}

	engine := scoring.New(scoring.WithLogger(log.New(os.Stderr, "examgrade: ", 0)))
	result := engine.CalculateExamResults(questions, session.Answers, session.Attempt, threshold)

	if jsonOut {
		return report.WriteJSON(os.Stdout, &result)
	}

	fmt.Println(report.Render(&result))

	if withAdvice {
		provider, err := llm.NewProviderFromEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, "no LLM provider configured; using rule-based recommendations:", err)
		}
		svc := advice.NewService(provider, advice.DefaultConfig())
		plan, recs := svc.Plan(cmd.Context(), &result)
		fmt.Println(report.RenderAdvice(plan, recs))
	}
	return nil
}

// loadQuestions resolves the question source: JSON catalog file or
// SQLite bank. Returns the questions plus the catalog's own passing
// threshold (0 when it has none).
func loadQuestions(cmd *cobra.Command, questionsPath, bankDSN, examID string) ([]exam.Question, int, error) {
	switch {
	case questionsPath != "" && bankDSN != "":
		return nil, 0, fmt.Errorf("--questions and --bank are mutually exclusive")

	case questionsPath != "":
		c, err := catalog.LoadCatalog(questionsPath)
		if err != nil {
			return nil, 0, err
		}
		return c.Questions, c.Exam.PassingThreshold, nil

	case bankDSN != "":
		if examID == "" {
			return nil, 0, fmt.Errorf("--exam is required with --bank")
		}
		bank, err := catalog.OpenBank(bankDSN)
		if err != nil {
			return nil, 0, err
		}
		defer bank.Close()

		ctx := cmd.Context()
		info, err := bank.Exam(ctx, examID)
		if err != nil {
			return nil, 0, err
		}
		questions, err := bank.Questions(ctx, examID)
		if err != nil {
			return nil, 0, err
		}
		return questions, info.PassingThreshold, nil

	default:
		return nil, 0, fmt.Errorf("one of --questions or --bank is required")
	}
}
