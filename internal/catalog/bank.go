package catalog

import (
	"context"
	"database/sql"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/certlab/examgrade/internal/exam"
)

// Bank is a read-only SQLite question bank. It serves catalog snapshots
// to the engine; nothing here ever writes.
type Bank struct {
	db *sql.DB
}

// OpenBank opens the question bank at dsn in query-only mode.
func OpenBank(dsn string) (*Bank, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	// Pragmas are per-connection; pin the pool to one.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA query_only = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	return &Bank{db: db}, nil
}

// Close closes the database connection.
func (b *Bank) Close() error {
	return b.db.Close()
}

// Exam loads the exam metadata row for examID.
func (b *Bank) Exam(ctx context.Context, examID string) (*ExamInfo, error) {
	var info ExamInfo
	err := b.db.QueryRowContext(ctx,
		`SELECT id, title, passing_threshold FROM exams WHERE id = ?`, examID,
	).Scan(&info.ID, &info.Title, &info.PassingThreshold)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("exam %q not found", examID)
	}
	if err != nil {
		return nil, fmt.Errorf("load exam %q: %w", examID, err)
	}
	return &info, nil
}

// Questions loads the full question snapshot for examID, options
// included, ordered by question number.
func (b *Bank) Questions(ctx context.Context, examID string) ([]exam.Question, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT q.id, q.text, q.question_number, q.required_selections, q.difficulty_level,
		       a.id, a.name, a.weight_percentage
		FROM questions q
		JOIN knowledge_areas a ON a.id = q.area_id
		WHERE q.exam_id = ?
		ORDER BY q.question_number`, examID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []exam.Question
	index := make(map[string]int)
	for rows.Next() {
		var q exam.Question
		var level string
		if err := rows.Scan(
			&q.ID, &q.Text, &q.Number, &q.RequiredSelections, &level,
			&q.Area.ID, &q.Area.Name, &q.Area.WeightPercentage,
		); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.Difficulty = exam.DifficultyLevel(level)
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	if err := b.attachOptions(ctx, examID, questions, index); err != nil {
		return nil, err
	}
	return questions, nil
}

// attachOptions loads every option for the exam in one query and fans
// them out to their questions.
func (b *Bank) attachOptions(ctx context.Context, examID string, questions []exam.Question, index map[string]int) error {
	rows, err := b.db.QueryContext(ctx, `
		SELECT o.question_id, o.id, o.text, o.is_correct
		FROM answer_options o
		JOIN questions q ON q.id = o.question_id
		WHERE q.exam_id = ?
		ORDER BY o.question_id, o.id`, examID)
	if err != nil {
		return fmt.Errorf("load options: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questionID string
		var opt exam.AnswerOption
		if err := rows.Scan(&questionID, &opt.ID, &opt.Text, &opt.Correct); err != nil {
			return fmt.Errorf("scan option: %w", err)
		}
		i, ok := index[questionID]
		if !ok {
			continue
		}
		questions[i].Options = append(questions[i].Options, opt)
	}
	return rows.Err()
}
