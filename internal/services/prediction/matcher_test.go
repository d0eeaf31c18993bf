package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func testCatalog() []domain.DiseaseRecord {
	return []domain.DiseaseRecord{
		{Name: "Flu", Description: "fever, chills, headache, fatigue"},
		{Name: "Common Cold", Description: "runny nose, sneezing, congestion"},
		{Name: "Eczema", Description: "dry itchy inflamed skin patches"},
	}
}

func TestMatchInputSubstringOfName(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("czem", testCatalog())
	require.Len(t, results, 1)
	assert.Equal(t, "Eczema", results[0].Name)
}

func TestMatchNameSubstringOfInput(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("i think i caught the flu yesterday", testCatalog())
	require.NotEmpty(t, results)
	assert.Equal(t, "Flu", results[0].Name)
}

func TestMatchDescriptionContainsInputToken(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("constant sneezing", testCatalog())
	require.Len(t, results, 1)
	assert.Equal(t, "Common Cold", results[0].Name)
}

func TestMatchInputContainsNameToken(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	// "cold" is one token of "Common Cold".
	results := m.Match("woke up cold and shivering", testCatalog())
	require.NotEmpty(t, results)
	assert.Equal(t, "Common Cold", results[0].Name)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("FEVER and CHILLS", testCatalog())
	require.NotEmpty(t, results)
	assert.Equal(t, "Flu", results[0].Name)
}

func TestMatchFixedConfidence(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("I have a headache and fever", testCatalog())
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, float64(85), r.Confidence)
	}
}

func TestMatchPreservesCatalogOrder(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})
	catalog := []domain.DiseaseRecord{
		{Name: "Bronchitis", Description: "persistent cough with mucus"},
		{Name: "Pneumonia", Description: "cough with phlegm and fever"},
	}

	results := m.Match("bad cough", catalog)
	require.Len(t, results, 2)
	assert.Equal(t, "Bronchitis", results[0].Name)
	assert.Equal(t, "Pneumonia", results[1].Name)
}

func TestMatchNoResults(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	results := m.Match("xyzzy quux", testCatalog())
	assert.Empty(t, results)
}

func TestMatchEmptyCatalog(t *testing.T) {
	m := NewHeuristicMatcher(noopLogger{})

	assert.Empty(t, m.Match("fever", nil))
}
