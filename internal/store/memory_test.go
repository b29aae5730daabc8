package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prepstack/prepsearch/internal/models"
)

func TestMemoryStore_PutAndFetch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	questions := []*models.QuestionRecord{
		{ID: "a1", Provider: "aws", Exam: "saa-c03", QuestionText: "first"},
		{ID: "a2", Provider: "aws", Exam: "saa-c03", QuestionText: "second"},
		{ID: "a3", Provider: "aws", Exam: "dva-c02", QuestionText: "third"},
		{ID: "g1", Provider: "gcp", Exam: "ace", QuestionText: "fourth"},
	}
	if err := s.PutQuestions(ctx, questions); err != nil {
		t.Fatalf("PutQuestions: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}

	tests := []struct {
		name     string
		provider string
		exam     string
		wantIDs  []string
	}{
		{"provider and exam", "aws", "saa-c03", []string{"a1", "a2"}},
		{"provider only", "aws", "", []string{"a1", "a2", "a3"}},
		{"everything", "", "", []string{"a1", "a2", "a3", "g1"}},
		{"no matches", "azure", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, err := s.FetchCorpusSlice(ctx, tt.provider, tt.exam)
			if err != nil {
				t.Fatalf("FetchCorpusSlice: %v", err)
			}
			if len(slice) != len(tt.wantIDs) {
				t.Fatalf("got %d questions, want %d", len(slice), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if slice[i].ID != want {
					t.Errorf("slice[%d] = %s, want %s (insertion order)", i, slice[i].ID, want)
				}
			}
		})
	}
}

func TestMemoryStore_FetchQuestionByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.PutQuestions(ctx, []*models.QuestionRecord{
		{ID: "a1", QuestionText: "first"},
	}); err != nil {
		t.Fatalf("PutQuestions: %v", err)
	}

	q, err := s.FetchQuestionByID(ctx, "a1")
	if err != nil {
		t.Fatalf("FetchQuestionByID: %v", err)
	}
	if q.QuestionText != "first" {
		t.Errorf("QuestionText = %q, want first", q.QuestionText)
	}

	if _, err := s.FetchQuestionByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FetchQuestionByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_UpsertKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.PutQuestions(ctx, []*models.QuestionRecord{
		{ID: "a1", QuestionText: "one"},
		{ID: "a2", QuestionText: "two"},
	}); err != nil {
		t.Fatalf("PutQuestions: %v", err)
	}

	// Rewriting a1 must update in place, not append.
	if err := s.PutQuestions(ctx, []*models.QuestionRecord{
		{ID: "a1", QuestionText: "one updated"},
	}); err != nil {
		t.Fatalf("PutQuestions: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len after upsert = %d, want 2", s.Len())
	}

	slice, err := s.FetchCorpusSlice(ctx, "", "")
	if err != nil {
		t.Fatalf("FetchCorpusSlice: %v", err)
	}
	if slice[0].ID != "a1" || slice[0].QuestionText != "one updated" {
		t.Errorf("first slot = %s %q, want updated a1 in place", slice[0].ID, slice[0].QuestionText)
	}
}
