package lookup

import "errors"

// ErrDatasetMissing reports that a reference dataset file is absent. Callers
// fall back to a built-in list; every other load failure yields an empty
// suggestion set.
var ErrDatasetMissing = errors.New("reference dataset missing")

// DatasetRepository loads the static reference datasets backing autocomplete.
type DatasetRepository interface {
	Medicines() ([]string, error)
	Cities() ([]string, error)
	States() ([]string, error)
}
