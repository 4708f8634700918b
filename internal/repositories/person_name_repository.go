package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/models"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/random"
)

// PersonNameRepository serves random entries from the JSON name corpus. The
// corpus is read once at startup; a missing or empty file is a fatal error.
type PersonNameRepository struct {
	persons []models.PersonName
	rng     random.Source
}

type personNamesFile struct {
	Persons []models.PersonName `json:"persons"`
}

// NewPersonNameRepository loads the name corpus from path.
func NewPersonNameRepository(path string, rng random.Source) (*PersonNameRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read person names file: %w", err)
	}

	var file personNamesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse person names file: %w", err)
	}

	if len(file.Persons) == 0 {
		return nil, fmt.Errorf("person names file %s contains no persons", path)
	}

	return &PersonNameRepository{persons: file.Persons, rng: rng}, nil
}

// RandomPersonName returns a uniformly random corpus entry.
func (r *PersonNameRepository) RandomPersonName() (*models.PersonName, error) {
	person := r.persons[r.rng.Pick(len(r.persons))]
	return &person, nil
}
