package prediction

import (
	"strings"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// heuristicConfidence is the fixed score assigned to every keyword match.
// It is a deliberate simplification of the product, not a measurement.
const heuristicConfidence = 85

// HeuristicMatcher is the non-ML fallback: plain case-insensitive substring
// and token matching between the input text and the catalog.
type HeuristicMatcher struct {
	logger Logger
}

func NewHeuristicMatcher(logger Logger) *HeuristicMatcher {
	return &HeuristicMatcher{logger: logger}
}

// Match returns every catalog record the input text matches, in catalog
// order. A record matches when any of these holds (all case-insensitive):
//
//   - the input is a substring of the disease name
//   - the disease name is a substring of the input
//   - the description contains any whitespace-delimited token of the input
//   - the input contains any whitespace-delimited token of the disease name
//
// An empty result means no match, which is not an error.
func (m *HeuristicMatcher) Match(text string, catalog []domain.DiseaseRecord) []MatchResult {
	input := strings.ToLower(text)
	inputTokens := strings.Fields(input)

	var matched []MatchResult
	for i := range catalog {
		record := catalog[i]
		name := strings.ToLower(record.Name)
		description := strings.ToLower(record.Description)

		if matches(input, inputTokens, name, description) {
			matched = append(matched, MatchResult{
				DiseaseRecord: record,
				Confidence:    heuristicConfidence,
			})
		}
	}

	m.logger.Debug("heuristic matching complete",
		"catalog_size", len(catalog),
		"matched", len(matched))
	return matched
}

func matches(input string, inputTokens []string, name, description string) bool {
	if strings.Contains(name, input) || strings.Contains(input, name) {
		return true
	}
	for _, token := range inputTokens {
		if strings.Contains(description, token) {
			return true
		}
	}
	for _, token := range strings.Fields(name) {
		if strings.Contains(input, token) {
			return true
		}
	}
	return false
}
