package classifier

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// artifactConfig mirrors the config.json shipped with the pretrained model:
// a mapping from class index to disease label.
type artifactConfig struct {
	ID2Label map[string]string `json:"id2label"`
}

// artifactWeights holds the linear model parameters: one bias per label and
// one weight vector per vocabulary token, each of length len(labels).
type artifactWeights struct {
	Bias  []float64            `json:"bias"`
	Vocab map[string][]float64 `json:"vocab"`
}

// ArtifactClassifier runs bag-of-words inference over a pretrained linear
// text-classification artifact stored on disk. The artifact is re-read on
// every call: model availability is a per-request question, and a model
// directory that appears later starts being used without a restart.
type ArtifactClassifier struct {
	config *Config
	logger Logger
}

func NewArtifactClassifier(config *Config, logger Logger) (*ArtifactClassifier, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, NewValidationError("constructor", err.Error())
	}
	return &ArtifactClassifier{config: config, logger: logger}, nil
}

// Classify scores the text against every label and returns the TopK best,
// sorted by descending probability. A missing or unloadable artifact yields
// a MODEL_UNAVAILABLE error; there is no retry.
func (c *ArtifactClassifier) Classify(ctx context.Context, text string) ([]Prediction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewValidationError("classify", "input text cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	labels, weights, err := c.loadArtifact()
	if err != nil {
		return nil, err
	}

	logits := make([]float64, len(labels))
	copy(logits, weights.Bias)

	for _, token := range tokenize(text) {
		vec, ok := weights.Vocab[token]
		if !ok {
			continue
		}
		for i := range logits {
			if i < len(vec) {
				logits[i] += vec[i]
			}
		}
	}

	scores := softmax(logits)

	predictions := make([]Prediction, len(labels))
	for i, label := range labels {
		predictions[i] = Prediction{Label: label, Score: scores[i]}
	}
	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	if len(predictions) > c.config.TopK {
		predictions = predictions[:c.config.TopK]
	}

	c.logger.Debug("classification complete",
		"labels", len(labels),
		"returned", len(predictions))
	return predictions, nil
}

// loadArtifact reads and validates the model directory. Mirrors the
// availability contract of the original deployment: no directory or no
// config.json means the model was never downloaded.
func (c *ArtifactClassifier) loadArtifact() ([]string, *artifactWeights, error) {
	info, err := os.Stat(c.config.ModelDir)
	if err != nil || !info.IsDir() {
		return nil, nil, NewUnavailableError("load", "model directory not found", err)
	}

	configPath := filepath.Join(c.config.ModelDir, "config.json")
	rawConfig, err := os.ReadFile(configPath)
	if err != nil {
		return nil, nil, NewUnavailableError("load", "model config.json not found", err)
	}

	var artifact artifactConfig
	if err := json.Unmarshal(rawConfig, &artifact); err != nil {
		return nil, nil, NewUnavailableError("load", "model config.json is invalid", err)
	}
	if len(artifact.ID2Label) == 0 {
		return nil, nil, NewUnavailableError("load", "model config.json has no labels", nil)
	}

	labels, err := orderedLabels(artifact.ID2Label)
	if err != nil {
		return nil, nil, NewArtifactError("load", "model label indices are invalid", err)
	}

	rawWeights, err := os.ReadFile(filepath.Join(c.config.ModelDir, "weights.json"))
	if err != nil {
		return nil, nil, NewUnavailableError("load", "model weights.json not found", err)
	}

	var weights artifactWeights
	if err := json.Unmarshal(rawWeights, &weights); err != nil {
		return nil, nil, NewUnavailableError("load", "model weights.json is invalid", err)
	}
	if len(weights.Bias) != len(labels) {
		return nil, nil, NewArtifactError("load", "bias length does not match label count", nil)
	}

	return labels, &weights, nil
}

// orderedLabels turns the index-keyed label map into a dense slice.
func orderedLabels(id2label map[string]string) ([]string, error) {
	labels := make([]string, len(id2label))
	for key, label := range id2label {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(labels) {
			return nil, strconv.ErrRange
		}
		labels[idx] = label
	}
	return labels, nil
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func softmax(logits []float64) []float64 {
	if len(logits) == 0 {
		return nil
	}

	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}

	sum := 0.0
	scores := make([]float64, len(logits))
	for i, l := range logits {
		scores[i] = math.Exp(l - max)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}
