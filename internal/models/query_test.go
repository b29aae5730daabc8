package models

import (
	"errors"
	"strings"
	"testing"
)

func TestSearchQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     SearchQuery
		wantErr   string // validation error field, empty for valid
		wantLimit int
		wantSort  SortStrategy
	}{
		{
			name:      "minimal valid query fills defaults",
			query:     SearchQuery{Query: "ec2"},
			wantLimit: 10,
			wantSort:  SortRelevance,
		},
		{
			name:      "explicit values preserved",
			query:     SearchQuery{Query: "ec2", Limit: 25, Sort: SortDifficultyDesc},
			wantLimit: 25,
			wantSort:  SortDifficultyDesc,
		},
		{
			name:    "empty query rejected",
			query:   SearchQuery{},
			wantErr: "query",
		},
		{
			name:    "overlong query rejected",
			query:   SearchQuery{Query: strings.Repeat("x", MaxQueryLength+1)},
			wantErr: "query",
		},
		{
			name:      "query at max length accepted",
			query:     SearchQuery{Query: strings.Repeat("x", MaxQueryLength)},
			wantLimit: 10,
			wantSort:  SortRelevance,
		},
		{
			name:    "limit above range rejected",
			query:   SearchQuery{Query: "ec2", Limit: 101},
			wantErr: "limit",
		},
		{
			name:    "negative limit rejected",
			query:   SearchQuery{Query: "ec2", Limit: -1},
			wantErr: "limit",
		},
		{
			name:    "negative offset rejected",
			query:   SearchQuery{Query: "ec2", Offset: -1},
			wantErr: "offset",
		},
		{
			name:    "unknown sort rejected",
			query:   SearchQuery{Query: "ec2", Sort: "alphabetical"},
			wantErr: "sort",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr != "" {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Validate() error = %v, want ValidationError", err)
				}
				if verr.Field != tt.wantErr {
					t.Errorf("ValidationError.Field = %q, want %q", verr.Field, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tt.query.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", tt.query.Limit, tt.wantLimit)
			}
			if tt.query.Sort != tt.wantSort {
				t.Errorf("Sort = %q, want %q", tt.query.Sort, tt.wantSort)
			}
		})
	}
}

func TestDifficulty_Ordinal(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{DifficultyEasy, 1},
		{"beginner", 1},
		{DifficultyMedium, 2},
		{"intermediate", 2},
		{DifficultyHard, 3},
		{"advanced", 3},
		{"expert", 3},
		{"", 2},
		{"nonsense", 2},
	}

	for _, tt := range tests {
		if got := tt.difficulty.Ordinal(); got != tt.want {
			t.Errorf("Difficulty(%q).Ordinal() = %d, want %d", tt.difficulty, got, tt.want)
		}
	}
}
