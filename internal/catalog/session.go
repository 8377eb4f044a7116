package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/certlab/examgrade/internal/exam"
)

// Session is a learner's completed attempt: the answer events plus the
// attempt record produced by the exam-session collaborator.
type Session struct {
	Attempt exam.Attempt      `json:"attempt"`
	Answers []exam.UserAnswer `json:"answers"`
}

// LoadSession reads and validates a session file.
func LoadSession(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return ParseSession(raw)
}

// ParseSession validates raw session JSON and decodes it. A missing
// attempt id gets a generated UUID; a zero answer count is derived from
// the answer list.
func ParseSession(raw []byte) (*Session, error) {
	if err := validateDocument("exam-session", sessionSchema, raw); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	if s.Attempt.ID == "" {
		s.Attempt.ID = uuid.NewString()
	}
	if s.Attempt.AnswerCount == 0 {
		s.Attempt.AnswerCount = len(s.Answers)
	}
	return &s, nil
}
