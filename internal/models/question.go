// Package models defines core data structures for questions, search queries, and results.
package models

import "time"

// Difficulty is the ordinal difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Ordinal returns the sort ordinal for a difficulty. Unknown values map to the
// middle ordinal so they sort between easy and hard rather than at an edge.
// Legacy datasets use beginner/intermediate/advanced/expert labels, handled here.
func (d Difficulty) Ordinal() int {
	switch d {
	case DifficultyEasy, "beginner":
		return 1
	case DifficultyMedium, "intermediate":
		return 2
	case DifficultyHard, "advanced", "expert":
		return 3
	default:
		return 2
	}
}

// QuestionRecord represents a single exam-style question. Records are owned by
// the question store; the search engine only reads a snapshot per query.
type QuestionRecord struct {
	ID            string                 `json:"id" db:"id" dynamodbav:"id"`
	Provider      string                 `json:"provider" db:"provider" dynamodbav:"provider"`
	Exam          string                 `json:"exam" db:"exam" dynamodbav:"exam"`
	Topic         string                 `json:"topic,omitempty" db:"topic" dynamodbav:"topic"`
	QuestionText  string                 `json:"question_text" db:"question_text" dynamodbav:"question_text"`
	Options       []string               `json:"options" db:"options" dynamodbav:"options"`
	CorrectAnswer string                 `json:"correct_answer,omitempty" db:"correct_answer" dynamodbav:"correct_answer"`
	Explanation   string                 `json:"explanation,omitempty" db:"explanation" dynamodbav:"explanation"`
	Tags          []string               `json:"tags,omitempty" db:"tags" dynamodbav:"tags"`
	Difficulty    Difficulty             `json:"difficulty,omitempty" db:"difficulty" dynamodbav:"difficulty"`
	Type          string                 `json:"type,omitempty" db:"type" dynamodbav:"type"`
	Metadata      map[string]interface{} `json:"metadata,omitempty" db:"metadata" dynamodbav:"metadata"`
	CreatedAt     time.Time              `json:"created_at,omitempty" db:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at,omitempty" db:"updated_at" dynamodbav:"updated_at"`
}
