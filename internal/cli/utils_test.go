package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prepstack/prepsearch/internal/models"
)

func sampleResponse() *models.SearchResponse {
	return &models.SearchResponse{
		Query:        "ec2",
		Total:        12,
		SearchTimeMs: 3,
		Limit:        2,
		Offset:       0,
		HasMore:      true,
		Items: []*models.ScoredResult{
			{
				Question: &models.QuestionRecord{
					ID:           "q1",
					Provider:     "aws",
					Exam:         "saa-c03",
					QuestionText: "You have an EC2 instance in a private subnet.",
					Difficulty:   models.DifficultyMedium,
					Tags:         []string{"ec2", "vpc"},
				},
				Score:      0.6061,
				Highlights: models.Highlights{"question_text": {"ec2"}},
			},
			{
				Question: &models.QuestionRecord{
					ID:           "q2",
					Provider:     "aws",
					Exam:         "saa-c03",
					QuestionText: "Which instance family suits burstable workloads?",
				},
				Score: 0.3788,
			},
		},
	}
}

func TestWriteSearchResults_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, sampleResponse(), OutputText); err != nil {
		t.Fatalf("WriteSearchResults: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Found 12 results",
		"Rank: 1 | Score: 0.6061",
		"ID: q1 | aws/saa-c03 | medium",
		"Tags: ec2, vpc",
		"matched question_text: ec2",
		"Rank: 2 | Score: 0.3788",
		"More results available (offset 2)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestWriteSearchResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSearchResults(&buf, sampleResponse(), OutputJSON); err != nil {
		t.Fatalf("WriteSearchResults: %v", err)
	}

	var decoded models.SearchResponse
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output not parseable: %v", err)
	}
	if decoded.Total != 12 || len(decoded.Items) != 2 {
		t.Errorf("decoded %d/%d, want 12 total with 2 items", decoded.Total, len(decoded.Items))
	}
	if decoded.Items[0].Question.ID != "q1" {
		t.Errorf("first item = %s", decoded.Items[0].Question.ID)
	}
}
