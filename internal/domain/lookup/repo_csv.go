package lookup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	medicinesFile = "medicines.csv"
	citiesFile    = "cities.csv"
	statesFile    = "states.csv"
)

type repoCSV struct{ dir string }

// NewRepoCSV reads reference datasets from single-column CSV files under dir.
func NewRepoCSV(dir string) DatasetRepository { return &repoCSV{dir: dir} }

func (r *repoCSV) Medicines() ([]string, error) {
	// Exported pharmacy datasets name this column inconsistently; fall back
	// to the first column when neither header is present.
	return r.load(medicinesFile, []string{"Medicine Name", "name"}, true)
}

func (r *repoCSV) Cities() ([]string, error) {
	return r.load(citiesFile, []string{"City"}, false)
}

func (r *repoCSV) States() ([]string, error) {
	return r.load(statesFile, []string{"State"}, false)
}

// load reads one CSV file and returns the values of the first header column
// matching candidates. When anyColumn is set and no candidate matches, the
// first column is used instead.
func (r *repoCSV) load(filename string, candidates []string, anyColumn bool) ([]string, error) {
	f, err := os.Open(filepath.Join(r.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDatasetMissing
		}
		return nil, fmt.Errorf("open dataset %s: %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header %s: %w", filename, err)
	}

	col := -1
	for _, candidate := range candidates {
		for i, name := range header {
			if strings.TrimSpace(name) == candidate {
				col = i
				break
			}
		}
		if col >= 0 {
			break
		}
	}
	if col < 0 {
		if !anyColumn {
			return nil, fmt.Errorf("dataset %s has none of the expected columns %v", filename, candidates)
		}
		col = 0
	}

	var values []string
	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", filename, err)
		}
		if col >= len(record) {
			continue
		}
		value := strings.TrimSpace(record[col])
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}
	return values, nil
}
