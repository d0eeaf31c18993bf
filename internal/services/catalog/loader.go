package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// Logger is the minimal logging surface this package needs.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Loader reads the static disease reference catalog from disk. Several
// candidate locations are tried in order; the first file that exists and
// decodes wins.
type Loader struct {
	paths  []string
	logger Logger
}

// NewLoader builds a loader. primaryPath, when non-empty, is tried before
// the conventional locations.
func NewLoader(primaryPath string, logger Logger) *Loader {
	paths := []string{}
	if primaryPath != "" {
		paths = append(paths, primaryPath)
	}
	paths = append(paths,
		filepath.Join("data", "24-Disease.json"),
		filepath.Join("static", "chat", "data", "24-Disease.json"),
	)
	return &Loader{paths: paths, logger: logger}
}

// Load reads and decodes the catalog. A candidate that exists but fails to
// decode is remembered: if no later candidate succeeds the result is a
// CORRUPT error, otherwise NOT_FOUND when no candidate exists at all.
func (l *Loader) Load() ([]domain.DiseaseRecord, error) {
	var corrupt *CatalogError

	for _, path := range l.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				l.logger.Warn("could not read disease data file", "path", path, "error", err)
			}
			continue
		}

		var records []domain.DiseaseRecord
		if err := json.Unmarshal(raw, &records); err != nil {
			l.logger.Warn("disease data file failed to decode", "path", path, "error", err)
			corrupt = NewCorruptError(path, err)
			continue
		}

		l.logger.Debug("disease catalog loaded", "path", path, "entries", len(records))
		return records, nil
	}

	if corrupt != nil {
		return nil, corrupt
	}
	return nil, NewNotFoundError(l.paths)
}
