package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/prepstack/prepsearch/internal/models"
)

// SQLiteStore implements WritableStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS questions (
		id TEXT PRIMARY KEY,
		provider TEXT NOT NULL,
		exam TEXT NOT NULL,
		topic TEXT,
		question_text TEXT NOT NULL,
		options TEXT,
		correct_answer TEXT,
		explanation TEXT,
		tags TEXT,
		difficulty TEXT,
		type TEXT,
		metadata TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_questions_provider_exam ON questions(provider, exam);
	`
	_, err := db.Exec(schema)
	return err
}

// FetchCorpusSlice returns questions filtered by provider and/or exam,
// in insertion (rowid) order so downstream tie-breaking is deterministic.
func (s *SQLiteStore) FetchCorpusSlice(ctx context.Context, provider, exam string) ([]*models.QuestionRecord, error) {
	query := `SELECT id, provider, exam, topic, question_text, options, correct_answer,
	          explanation, tags, difficulty, type, metadata, created_at, updated_at
	          FROM questions`
	var args []interface{}
	switch {
	case provider != "" && exam != "":
		query += ` WHERE provider = ? AND exam = ?`
		args = append(args, provider, exam)
	case provider != "":
		query += ` WHERE provider = ?`
		args = append(args, provider)
	case exam != "":
		query += ` WHERE exam = ?`
		args = append(args, exam)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []*models.QuestionRecord
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// FetchQuestionByID returns a question by ID, or ErrNotFound.
func (s *SQLiteStore) FetchQuestionByID(ctx context.Context, id string) (*models.QuestionRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, provider, exam, topic, question_text, options, correct_answer,
		 explanation, tags, difficulty, type, metadata, created_at, updated_at
		 FROM questions WHERE id = ?`, id,
	)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// PutQuestions upserts questions in a single transaction.
func (s *SQLiteStore) PutQuestions(ctx context.Context, questions []*models.QuestionRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (id, provider, exam, topic, question_text, options, correct_answer,
		 explanation, tags, difficulty, type, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		 provider=excluded.provider, exam=excluded.exam, topic=excluded.topic,
		 question_text=excluded.question_text, options=excluded.options,
		 correct_answer=excluded.correct_answer, explanation=excluded.explanation,
		 tags=excluded.tags, difficulty=excluded.difficulty, type=excluded.type,
		 metadata=excluded.metadata, updated_at=excluded.updated_at`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, q := range questions {
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}
		q.UpdatedAt = now

		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options: %w", err)
		}
		tagsJSON, err := json.Marshal(q.Tags)
		if err != nil {
			return fmt.Errorf("failed to marshal tags: %w", err)
		}
		metadataJSON, err := json.Marshal(q.Metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal metadata: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			q.ID, q.Provider, q.Exam, q.Topic, q.QuestionText,
			string(optionsJSON), q.CorrectAnswer, q.Explanation,
			string(tagsJSON), string(q.Difficulty), q.Type,
			string(metadataJSON), q.CreatedAt, q.UpdatedAt,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner abstracts sql.Row and sql.Rows for scanQuestion.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanQuestion(row scanner) (*models.QuestionRecord, error) {
	var q models.QuestionRecord
	var optionsJSON, tagsJSON, metadataJSON sql.NullString
	var topic, correctAnswer, explanation, difficulty, qType sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(&q.ID, &q.Provider, &q.Exam, &topic, &q.QuestionText,
		&optionsJSON, &correctAnswer, &explanation, &tagsJSON,
		&difficulty, &qType, &metadataJSON, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	q.Topic = topic.String
	q.CorrectAnswer = correctAnswer.String
	q.Explanation = explanation.String
	q.Difficulty = models.Difficulty(difficulty.String)
	q.Type = qType.String
	q.CreatedAt = createdAt.Time
	q.UpdatedAt = updatedAt.Time

	if optionsJSON.String != "" {
		if err := json.Unmarshal([]byte(optionsJSON.String), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal options: %w", err)
		}
	}
	if tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &q.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if metadataJSON.String != "" && metadataJSON.String != "null" {
		if err := json.Unmarshal([]byte(metadataJSON.String), &q.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
	}
	return &q, nil
}
