package services

import "strings"

// labelMap maps the raw labels the hosted classifiers emit to our canonical
// vocabulary. The LABEL_n entries cover models that return positional labels.
var labelMap = map[string]string{
	"LABEL_0":  "negative",
	"LABEL_1":  "neutral",
	"LABEL_2":  "positive",
	"NEGATIVE": "negative",
	"NEUTRAL":  "neutral",
	"POSITIVE": "positive",
	"JOY":      "happy",
	"SADNESS":  "sad",
	"ANGER":    "angry",
	"FEAR":     "fear",
	"DISGUST":  "disgust",
	"SURPRISE": "surprise",
}

// NormalizeLabel maps a raw classifier label (case-insensitive) to a canonical
// lowercase emotion tag. Unknown labels fall back to their lowercased form and
// an empty label falls back to "neutral", so normalization never fails.
func NormalizeLabel(raw string) string {
	upper := strings.ToUpper(raw)
	if upper == "" {
		return "neutral"
	}
	if canonical, ok := labelMap[upper]; ok {
		return canonical
	}
	return strings.ToLower(upper)
}
