package services

import (
	"fmt"
	"strings"
)

// suggestionFor returns the short coaching line shown with each analysis.
func suggestionFor(label string) string {
	switch label {
	case "happy", "joy", "positive":
		return "You're expressing positive feelings. Keep noting what made your day better."
	case "sad", "negative":
		return "I'm sensing sadness. Consider writing what might help you feel a bit better."
	case "angry":
		return "There's anger in your words. A short break or deep breaths could help."
	case "fear":
		return "I see some fear/anxiety. Identifying one small step can reduce it."
	case "disgust":
		return "You might be feeling aversion. Noting triggers can provide clarity."
	case "surprise":
		return "Surprise detected. Capture what was unexpected and how you felt."
	default:
		return "Neutral tone detected. Add more detail to capture your feelings."
	}
}

// DetailedAnalysis renders the human-readable summary for an analysis result,
// e.g. "Happy (92%). You're expressing positive feelings. ...".
func DetailedAnalysis(label string, score float64) string {
	return fmt.Sprintf("%s (%.0f%%). %s", titleCase(label), score*100, suggestionFor(label))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
