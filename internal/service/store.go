package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/Bessima/token-shipping/internal/repository"
)

// ShipmentStore owns the in-memory shipment collection. It is loaded once and
// flushed in full through the repository after every mutation.
type ShipmentStore struct {
	repository repository.ShipmentStorageRepositoryI
	shipments  []models.Shipment
	mu         sync.Mutex
}

func NewShipmentStore(ctx context.Context, repo repository.ShipmentStorageRepositoryI) (*ShipmentStore, error) {
	shipments, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load shipments: %w", err)
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}
	return &ShipmentStore{repository: repo, shipments: shipments}, nil
}

func (store *ShipmentStore) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()

	return len(store.shipments)
}

// All returns copies of every record in collection order.
func (store *ShipmentStore) All() []models.StoredShipment {
	return store.Filter(func(models.Shipment) bool { return true })
}

func (store *ShipmentStore) Filter(keep func(models.Shipment) bool) []models.StoredShipment {
	store.mu.Lock()
	defer store.mu.Unlock()

	result := []models.StoredShipment{}
	for position, shipment := range store.shipments {
		if keep(shipment) {
			result = append(result, models.StoredShipment{Position: position, Shipment: shipment.Clone()})
		}
	}
	return result
}

func (store *ShipmentStore) Get(position int) (models.StoredShipment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkPosition(position); err != nil {
		return models.StoredShipment{}, err
	}
	return models.StoredShipment{Position: position, Shipment: store.shipments[position].Clone()}, nil
}

// Append adds the record and saves. When the save fails the record is dropped
// again so memory keeps matching what was last persisted.
func (store *ShipmentStore) Append(ctx context.Context, shipment models.Shipment) (models.StoredShipment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	position := len(store.shipments)
	store.shipments = append(store.shipments, shipment.Clone())

	if err := store.repository.Save(ctx, store.shipments); err != nil {
		store.shipments = store.shipments[:position]
		return models.StoredShipment{}, fmt.Errorf("save shipments: %w", err)
	}

	return models.StoredShipment{Position: position, Shipment: shipment.Clone()}, nil
}

// Update applies mutate to the record at position and saves. If mutate
// returns an error nothing is written.
func (store *ShipmentStore) Update(ctx context.Context, position int, mutate func(*models.Shipment) error) (models.StoredShipment, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkPosition(position); err != nil {
		return models.StoredShipment{}, err
	}

	previous := store.shipments[position].Clone()
	if err := mutate(&store.shipments[position]); err != nil {
		store.shipments[position] = previous
		return models.StoredShipment{}, err
	}

	if err := store.repository.Save(ctx, store.shipments); err != nil {
		store.shipments[position] = previous
		return models.StoredShipment{}, fmt.Errorf("save shipments: %w", err)
	}

	return models.StoredShipment{Position: position, Shipment: store.shipments[position].Clone()}, nil
}

func (store *ShipmentStore) checkPosition(position int) error {
	if position < 0 || position >= len(store.shipments) {
		return customerror.NewNotFoundError(fmt.Sprintf("shipment %d", position))
	}
	return nil
}
