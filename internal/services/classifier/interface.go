package classifier

import "context"

// Prediction is one ranked classification outcome. Score is a probability
// in [0,1]; predictions come back sorted best first.
type Prediction struct {
	Label string
	Score float64
}

// Classifier turns free-text symptom descriptions into ranked disease
// labels. Implementations signal a missing or unloadable model with a
// MODEL_UNAVAILABLE error so callers can fall back to keyword matching.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Prediction, error)
}

// Logger is the minimal logging surface this package needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}
