package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing dataset fixture: %v", err)
	}
}

func TestLoadDatasetFile_BareArray(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "questions.json", `[
		{"id": "q1", "provider": "aws", "exam": "saa-c03", "question_text": "first", "options": ["a", "b"]},
		{"provider": "aws", "exam": "saa-c03", "question_text": "second", "options": ["a", "b"]}
	]`)

	questions, err := LoadDatasetFile(filepath.Join(dir, "questions.json"))
	if err != nil {
		t.Fatalf("LoadDatasetFile: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].ID != "q1" {
		t.Errorf("explicit ID replaced: %s", questions[0].ID)
	}
	if questions[1].ID == "" {
		t.Error("missing ID should be generated")
	}
	if questions[0].Options[1] != "b" {
		t.Errorf("options = %v", questions[0].Options)
	}
}

func TestLoadDatasetFile_WrappedObject(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "saa.json", `{
		"provider": "aws",
		"exam": "saa-c03",
		"questions": [
			{"id": "q1", "question_text": "inherits provider"},
			{"id": "q2", "provider": "gcp", "exam": "ace", "question_text": "keeps own"}
		]
	}`)

	questions, err := LoadDatasetFile(filepath.Join(dir, "saa.json"))
	if err != nil {
		t.Fatalf("LoadDatasetFile: %v", err)
	}
	if questions[0].Provider != "aws" || questions[0].Exam != "saa-c03" {
		t.Errorf("file-level provider/exam not inherited: %s/%s", questions[0].Provider, questions[0].Exam)
	}
	if questions[1].Provider != "gcp" || questions[1].Exam != "ace" {
		t.Errorf("per-question provider/exam overwritten: %s/%s", questions[1].Provider, questions[1].Exam)
	}
}

func TestLoadDatasetFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "bad.json", `{not json at all`)

	if _, err := LoadDatasetFile(filepath.Join(dir, "bad.json")); err == nil {
		t.Error("expected parse error for malformed JSON")
	}
	if _, err := LoadDatasetFile(filepath.Join(dir, "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "aws")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeDataset(t, dir, "one.json", `[{"id": "q1", "question_text": "a"}]`)
	writeDataset(t, sub, "two.json", `[{"id": "q2", "question_text": "b"}, {"id": "q3", "question_text": "c"}]`)
	writeDataset(t, dir, "notes.txt", "ignored")

	dst := NewMemoryStore()
	total, err := LoadDirectory(context.Background(), dir, dst)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if total != 3 {
		t.Errorf("loaded %d questions, want 3", total)
	}
	if dst.Len() != 3 {
		t.Errorf("store holds %d questions, want 3", dst.Len())
	}
	if _, err := dst.FetchQuestionByID(context.Background(), "q3"); err != nil {
		t.Errorf("nested dataset not loaded: %v", err)
	}
}
