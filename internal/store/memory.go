package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/prepstack/prepsearch/internal/models"
)

// MemoryStore is an in-memory WritableStore. Insertion order is preserved so
// corpus order (and therefore sort tie-breaking) is deterministic.
// Safe for concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	questions []*models.QuestionRecord
	idIndex   map[string]int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		idIndex: make(map[string]int),
	}
}

// FetchCorpusSlice returns the stored questions matching provider/exam,
// in insertion order.
func (s *MemoryStore) FetchCorpusSlice(_ context.Context, provider, exam string) ([]*models.QuestionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var slice []*models.QuestionRecord
	for _, q := range s.questions {
		if provider != "" && q.Provider != provider {
			continue
		}
		if exam != "" && q.Exam != exam {
			continue
		}
		slice = append(slice, q)
	}
	return slice, nil
}

// FetchQuestionByID returns a question by ID, or ErrNotFound.
func (s *MemoryStore) FetchQuestionByID(_ context.Context, id string) (*models.QuestionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.idIndex[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.questions[idx], nil
}

// PutQuestions upserts questions, keeping first-insertion order for updates.
func (s *MemoryStore) PutQuestions(_ context.Context, questions []*models.QuestionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range questions {
		if idx, exists := s.idIndex[q.ID]; exists {
			s.questions[idx] = q
			continue
		}
		s.idIndex[q.ID] = len(s.questions)
		s.questions = append(s.questions, q)
	}
	return nil
}

// Len returns the number of stored questions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
