package repository

import (
	"github.com/Bessima/token-shipping/internal/config/db"
	"github.com/Bessima/token-shipping/internal/models"
)

func NewTestDB(pool db.PgxPoolInterface) *db.DB {
	return &db.DB{
		Pool: pool,
	}
}

func sampleShipments() []models.Shipment {
	return []models.Shipment{
		{
			TrackingID:      "T100",
			AdminName:       "A",
			RequestPlatform: "AA",
			CompanyName:     "Acme",
			Users:           []string{"alice", "bob"},
			TokenNumbers:    []string{"T1", "T2"},
			Status:          models.PendingStatus,
			Date:            "2024-05-01 10:00:00",
		},
		{
			TrackingID:      "T200",
			AdminName:       "B",
			RequestPlatform: "Internal Portal",
			CompanyName:     "Globex Corp/EU",
			Users:           []string{"carol"},
			TokenNumbers:    []string{"T9"},
			Status:          models.ShippedStatus,
			Date:            "2024-05-02 11:30:00",
		},
	}
}
