package services

import "testing"

func TestNormalizeLabelMappings(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"LABEL_0", "negative"},
		{"LABEL_1", "neutral"},
		{"LABEL_2", "positive"},
		{"NEGATIVE", "negative"},
		{"NEUTRAL", "neutral"},
		{"POSITIVE", "positive"},
		{"JOY", "happy"},
		{"SADNESS", "sad"},
		{"ANGER", "angry"},
		{"FEAR", "fear"},
		{"DISGUST", "disgust"},
		{"SURPRISE", "surprise"},
		// case-insensitive
		{"joy", "happy"},
		{"Positive", "positive"},
		{"label_2", "positive"},
		// unknown labels fall back to lowercase
		{"EXCITEMENT", "excitement"},
		{"Boredom", "boredom"},
		// empty falls back to neutral
		{"", "neutral"},
	}

	for _, tc := range cases {
		if got := NormalizeLabel(tc.raw); got != tc.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeLabelIdempotent(t *testing.T) {
	vocabulary := []string{"happy", "sad", "angry", "fear", "disgust", "surprise", "positive", "neutral", "negative"}

	for _, label := range vocabulary {
		if got := NormalizeLabel(label); got != label {
			t.Errorf("NormalizeLabel(%q) = %q, want unchanged", label, got)
		}
	}

	// normalize(normalize(x)) == normalize(x) holds for arbitrary input too
	for _, raw := range []string{"JOY", "label_0", "weird-label", ""} {
		once := NormalizeLabel(raw)
		if twice := NormalizeLabel(once); twice != once {
			t.Errorf("NormalizeLabel not idempotent for %q: %q != %q", raw, twice, once)
		}
	}
}
