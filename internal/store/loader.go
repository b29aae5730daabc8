package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/prepstack/prepsearch/internal/models"
)

// datasetFile matches the exam dataset layout: either a bare array of
// questions or an object wrapping one under "questions".
type datasetFile struct {
	Provider  string                   `json:"provider,omitempty"`
	Exam      string                   `json:"exam,omitempty"`
	Questions []*models.QuestionRecord `json:"questions"`
}

// LoadDatasetFile parses a JSON dataset file into question records.
// Questions without an ID get a generated one; file-level provider/exam
// values fill in blanks on each question.
func LoadDatasetFile(path string) ([]*models.QuestionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var questions []*models.QuestionRecord
	var provider, exam string

	if err := json.Unmarshal(data, &questions); err != nil {
		var file datasetFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse dataset %s: %w", path, err)
		}
		questions = file.Questions
		provider = file.Provider
		exam = file.Exam
	}

	for _, q := range questions {
		if q.ID == "" {
			q.ID = uuid.New().String()
		}
		if q.Provider == "" {
			q.Provider = provider
		}
		if q.Exam == "" {
			q.Exam = exam
		}
	}
	return questions, nil
}

// LoadDirectory loads every .json dataset file under dir into dst.
// Returns the number of questions loaded.
func LoadDirectory(ctx context.Context, dir string, dst WritableStore) (int, error) {
	total := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(strings.ToLower(path), ".json") {
			return nil
		}
		questions, err := LoadDatasetFile(path)
		if err != nil {
			return err
		}
		if err := dst.PutQuestions(ctx, questions); err != nil {
			return fmt.Errorf("failed to store %s: %w", path, err)
		}
		total += len(questions)
		return nil
	})
	return total, err
}
