package catalog

import (
	"sync"

	"github.com/V8FS1/Automated-Disease-Diagnosis-from-Symptom-Descriptions/internal/domain"
)

// Service is the process-wide read-only catalog cache. The catalog is static
// reference data, so once a load succeeds the result is kept for the life of
// the process and never invalidated. Failed loads are not cached: a catalog
// file that appears later starts being served without a restart.
type Service struct {
	loader *Loader

	mu      sync.Mutex
	loaded  bool
	records []domain.DiseaseRecord
}

func NewService(loader *Loader) *Service {
	return &Service{loader: loader}
}

// Catalog returns the cached disease records, loading them on first use.
func (s *Service) Catalog() ([]domain.DiseaseRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.records, nil
	}

	records, err := s.loader.Load()
	if err != nil {
		return nil, err
	}

	s.records = records
	s.loaded = true
	return s.records, nil
}
