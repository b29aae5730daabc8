// Package store defines the question corpus persistence interface and its
// SQLite, DynamoDB, and in-memory implementations.
package store

import (
	"context"
	"errors"

	"github.com/prepstack/prepsearch/internal/models"
)

// ErrNotFound is returned when a question or corpus slice does not exist.
// The search engine treats it as an empty corpus, not a failure.
var ErrNotFound = errors.New("question not found")

// QuestionStore is the corpus collaborator consumed by the search engine.
// Fetch operations return snapshots; callers must not assume exclusive
// ownership of the returned records.
type QuestionStore interface {
	// FetchCorpusSlice returns all questions for a provider/exam combination.
	// Empty provider or exam widens the slice; both empty returns everything.
	FetchCorpusSlice(ctx context.Context, provider, exam string) ([]*models.QuestionRecord, error)

	// FetchQuestionByID returns a single question, or ErrNotFound.
	FetchQuestionByID(ctx context.Context, id string) (*models.QuestionRecord, error)

	Close() error
}

// WritableStore extends QuestionStore with bulk ingestion, used by the
// dataset loader and the seed command.
type WritableStore interface {
	QuestionStore

	// PutQuestions upserts the given questions.
	PutQuestions(ctx context.Context, questions []*models.QuestionRecord) error
}
