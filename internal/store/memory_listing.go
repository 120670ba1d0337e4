package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/auctions-api/internal/logger"
	"github.com/MKhiriev/auctions-api/models"
	"github.com/google/uuid"
)

// memoryListingRepository keeps listings in process memory. It backs the
// API when no database DSN is configured.
type memoryListingRepository struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]models.Listing

	logger *logger.Logger
}

// NewMemoryListingRepository returns an empty in-memory [ListingRepository].
func NewMemoryListingRepository(logger *logger.Logger) ListingRepository {
	logger.Debug().Msg("creating in-memory listing repository")
	return &memoryListingRepository{
		listings: make(map[uuid.UUID]models.Listing),
		logger:   logger,
	}
}

func (m *memoryListingRepository) Add(_ context.Context, listing models.Listing) (models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[listing.ID]; ok {
		return models.Listing{}, ErrListingAlreadyExists
	}
	m.listings[listing.ID] = listing

	return listing, nil
}

func (m *memoryListingRepository) Get(_ context.Context, id uuid.UUID) (models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listing, ok := m.listings[id]
	if !ok {
		return models.Listing{}, ErrListingNotFound
	}

	return listing, nil
}

func (m *memoryListingRepository) List(_ context.Context) ([]models.Listing, error) {
	m.mu.RLock()
	listings := make([]models.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		listings = append(listings, l)
	}
	m.mu.RUnlock()

	// same order as the SQL repository: newest first, ties by id
	slices.SortFunc(listings, func(a, b models.Listing) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	return listings, nil
}

func (m *memoryListingRepository) Remove(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[id]; !ok {
		return ErrListingNotFound
	}
	delete(m.listings, id)

	return nil
}
