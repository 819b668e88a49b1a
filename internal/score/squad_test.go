package score

import (
	"math"
	"testing"

	"github.com/ovasilenko/textdigest/internal/model"
)

func TestExactMatch_Normalization(t *testing.T) {
	cases := []struct {
		predicted, reference string
		want                 float64
	}{
		{"Denver Broncos", "Denver Broncos", 100},
		{"the Denver Broncos", "Denver Broncos", 100},
		{"denver broncos.", "Denver Broncos", 100},
		{"Carolina Panthers", "Denver Broncos", 0},
		{"", "", 100},
	}

	for _, c := range cases {
		if got := ExactMatch(c.predicted, c.reference); got != c.want {
			t.Errorf("ExactMatch(%q, %q) = %v, want %v", c.predicted, c.reference, got, c.want)
		}
	}
}

func TestAnswerF1(t *testing.T) {
	if got := AnswerF1("Denver Broncos", "Denver Broncos"); got != 100 {
		t.Errorf("Expected F1 100 for exact answer, got %v", got)
	}

	if got := AnswerF1("completely wrong", "Denver Broncos"); got != 0 {
		t.Errorf("Expected F1 0 for disjoint answer, got %v", got)
	}

	// One of two tokens shared: precision 0.5, recall 0.5, F1 50
	got := AnswerF1("Denver team", "Denver Broncos")
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("Expected F1 50, got %v", got)
	}
}

func TestAnswerF1_EmptyAnswers(t *testing.T) {
	if got := AnswerF1("", ""); got != 100 {
		t.Errorf("Expected F1 100 for both empty, got %v", got)
	}
	if got := AnswerF1("", "something"); got != 0 {
		t.Errorf("Expected F1 0 for empty prediction, got %v", got)
	}
	// "the" normalizes away entirely
	if got := AnswerF1("the", "something"); got != 0 {
		t.Errorf("Expected F1 0 for article-only prediction, got %v", got)
	}
}

func TestAggregate(t *testing.T) {
	samples := []model.SampleResult{
		{Predicted: "Denver Broncos", Reference: "Denver Broncos"},
		{Predicted: "wrong", Reference: "Denver Broncos"},
	}

	em, f1 := Aggregate(samples)
	if em != 50 {
		t.Errorf("Expected EM 50, got %v", em)
	}
	if f1 != 50 {
		t.Errorf("Expected F1 50, got %v", f1)
	}
}

func TestAggregate_Empty(t *testing.T) {
	em, f1 := Aggregate(nil)
	if em != 0 || f1 != 0 {
		t.Errorf("Expected 0/0 for no samples, got %v/%v", em, f1)
	}
}
