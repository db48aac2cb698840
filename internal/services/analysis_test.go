package services

import "testing"

func TestDetailedAnalysisFormat(t *testing.T) {
	got := DetailedAnalysis("happy", 0.92)
	want := "Happy (92%). You're expressing positive feelings. Keep noting what made your day better."
	if got != want {
		t.Errorf("DetailedAnalysis = %q, want %q", got, want)
	}
}

func TestDetailedAnalysisMessages(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"positive", "You're expressing positive feelings. Keep noting what made your day better."},
		{"sad", "I'm sensing sadness. Consider writing what might help you feel a bit better."},
		{"negative", "I'm sensing sadness. Consider writing what might help you feel a bit better."},
		{"angry", "There's anger in your words. A short break or deep breaths could help."},
		{"fear", "I see some fear/anxiety. Identifying one small step can reduce it."},
		{"disgust", "You might be feeling aversion. Noting triggers can provide clarity."},
		{"surprise", "Surprise detected. Capture what was unexpected and how you felt."},
		{"neutral", "Neutral tone detected. Add more detail to capture your feelings."},
		{"excitement", "Neutral tone detected. Add more detail to capture your feelings."},
	}

	for _, tc := range cases {
		if got := suggestionFor(tc.label); got != tc.want {
			t.Errorf("suggestionFor(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"happy":   "Happy",
		"SAD":     "Sad",
		"neutral": "Neutral",
		"":        "",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
