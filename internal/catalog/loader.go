// Package catalog supplies the scoring engine's inputs: question
// catalogs and submitted sessions, loaded from JSON files or a SQLite
// question bank, shape-validated on the way in.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/certlab/examgrade/internal/exam"
)

// ExamInfo is the catalog-level exam metadata.
type ExamInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// PassingThreshold is the score percentage required to pass.
	// Zero means the caller decides.
	PassingThreshold int `json:"passing_threshold"`
}

// Catalog is a fixed snapshot of an exam's questions.
type Catalog struct {
	Exam      ExamInfo        `json:"exam"`
	Questions []exam.Question `json:"questions"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog validates raw catalog JSON and decodes it.
func ParseCatalog(raw []byte) (*Catalog, error) {
	if err := validateDocument("exam-catalog", catalogSchema, raw); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}
