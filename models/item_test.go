package models

import "testing"

func TestApplyRating_RunningMean(t *testing.T) {
	item := &Item{}

	steps := []struct {
		score       float64
		wantAverage float64
		wantCount   int
	}{
		{4, 4.00, 1},
		{2, 3.00, 2},
		{5, 3.67, 3},
	}

	for _, step := range steps {
		if err := item.ApplyRating(step.score); err != nil {
			t.Fatalf("ApplyRating(%v) returned error: %v", step.score, err)
		}
		if item.Rating.Average != step.wantAverage {
			t.Errorf("after score %v: average = %v, want %v", step.score, item.Rating.Average, step.wantAverage)
		}
		if item.Rating.Count != step.wantCount {
			t.Errorf("after score %v: count = %d, want %d", step.score, item.Rating.Count, step.wantCount)
		}
	}
}

func TestApplyRating_RejectsOutOfRange(t *testing.T) {
	item := &Item{Rating: Rating{Average: 3.5, Count: 2}}

	for _, score := range []float64{0, 6, -1, 5.01} {
		if err := item.ApplyRating(score); err == nil {
			t.Errorf("ApplyRating(%v) = nil, want error", score)
		}
	}

	if item.Rating.Average != 3.5 || item.Rating.Count != 2 {
		t.Errorf("rating changed on rejected score: %+v", item.Rating)
	}
}
