package lookup

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

const maxResults = 15

// Fallback lists keep autocomplete functional when the CSV datasets are not
// deployed alongside the server.
var (
	fallbackMedicines = []string{"Paracetamol", "Aspirin", "Ibuprofen", "Amoxicillin", "Ciprofloxacin"}
	fallbackCities    = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune", "Ahmedabad"}
	fallbackStates    = []string{"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "West Bengal", "Telangana", "Gujarat", "Rajasthan"}
)

// Service answers autocomplete queries against the reference datasets.
// Lookup failures never surface to the caller: a missing dataset degrades to
// the built-in fallback list, anything else to an empty result.
type Service struct {
	repo DatasetRepository
	log  zerolog.Logger
}

func NewService(repo DatasetRepository, log zerolog.Logger) *Service {
	return &Service{repo: repo, log: log.With().Str("component", "lookup").Logger()}
}

// SearchMedicines returns up to maxResults medicine names matching the prefix.
// An empty query returns the head of the dataset.
func (s *Service) SearchMedicines(query string) []string {
	return s.search(s.repo.Medicines, fallbackMedicines, query, true)
}

// SearchCities returns up to maxResults city names matching the prefix.
func (s *Service) SearchCities(query string) []string {
	return s.search(s.repo.Cities, fallbackCities, query, false)
}

// SearchStates returns up to maxResults state names matching the prefix.
func (s *Service) SearchStates(query string) []string {
	return s.search(s.repo.States, fallbackStates, query, false)
}

func (s *Service) search(load func() ([]string, error), fallback []string, query string, allowEmpty bool) []string {
	query = strings.TrimSpace(query)
	if query == "" && !allowEmpty {
		return []string{}
	}

	values, err := load()
	if err != nil {
		if errors.Is(err, ErrDatasetMissing) {
			values = fallback
		} else {
			s.log.Warn().Err(err).Msg("dataset lookup failed")
			return []string{}
		}
	}

	prefix := strings.ToLower(query)
	results := make([]string, 0, maxResults)
	for _, v := range values {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(v), prefix) {
			continue
		}
		results = append(results, v)
		if len(results) == maxResults {
			break
		}
	}
	return results
}
