package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/internal/models"
	"github.com/1-Mandatory-testing/mandatory-fake-info-backend/pkg/random"
)

// PostalCodeRepository serves random rows from the postal_code table.
type PostalCodeRepository struct {
	db  *sql.DB
	rng random.Source

	// The table is static, so the row count is fetched once per process and
	// reused for every random-offset lookup.
	countOnce sync.Once
	count     int
	countErr  error
}

func NewPostalCodeRepository(db *sql.DB, rng random.Source) *PostalCodeRepository {
	return &PostalCodeRepository{db: db, rng: rng}
}

func (r *PostalCodeRepository) townCount() (int, error) {
	r.countOnce.Do(func() {
		r.countErr = r.db.QueryRow(`SELECT COUNT(*) FROM postal_code`).Scan(&r.count)
	})
	if r.countErr != nil {
		return 0, fmt.Errorf("failed to count postal codes: %w", r.countErr)
	}
	return r.count, nil
}

// RandomTown returns a uniformly random postal-code/town pair.
func (r *PostalCodeRepository) RandomTown() (*models.Town, error) {
	count, err := r.townCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("postal_code table is empty")
	}

	offset := r.rng.Pick(count)

	query := `
		SELECT postal_code, town_name
		FROM postal_code
		LIMIT 1 OFFSET ?
	`

	town := &models.Town{}
	if err := r.db.QueryRow(query, offset).Scan(&town.PostalCode, &town.TownName); err != nil {
		return nil, fmt.Errorf("failed to fetch random town: %w", err)
	}

	return town, nil
}
