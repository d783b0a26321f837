package repository

import (
	"context"

	"github.com/Bessima/token-shipping/internal/models"
)

// ShipmentStorageRepositoryI persists the whole shipment collection at once.
// Load on an empty store returns an empty, non-nil slice.
type ShipmentStorageRepositoryI interface {
	Load(ctx context.Context) ([]models.Shipment, error)
	Save(ctx context.Context, shipments []models.Shipment) error
}
