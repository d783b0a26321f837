package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/handlers/schemas"
	"github.com/Bessima/token-shipping/internal/middlewares/logger"
	"github.com/Bessima/token-shipping/internal/models"
	"go.uber.org/zap"
)

// MaxUsersPerShipment matches the upper bound of the creation form.
const MaxUsersPerShipment = 50

type ShipmentStoreI interface {
	Filter(keep func(models.Shipment) bool) []models.StoredShipment
	Get(position int) (models.StoredShipment, error)
	Append(ctx context.Context, shipment models.Shipment) (models.StoredShipment, error)
	Update(ctx context.Context, position int, mutate func(*models.Shipment) error) (models.StoredShipment, error)
}

// ShipmentService drives the Pending -> Shipped / Cancelled lifecycle.
type ShipmentService struct {
	store ShipmentStoreI
	now   func() time.Time
}

func NewShipmentService(store ShipmentStoreI) *ShipmentService {
	return &ShipmentService{store: store, now: time.Now}
}

func (service *ShipmentService) Create(ctx context.Context, request schemas.CreateShipmentRequest) (models.StoredShipment, error) {
	shipment, err := buildShipment(request)
	if err != nil {
		return models.StoredShipment{}, err
	}
	shipment.Status = models.PendingStatus
	shipment.Date = service.now().Format(models.DateLayout)

	stored, err := service.store.Append(ctx, shipment)
	if err != nil {
		return models.StoredShipment{}, err
	}

	logger.Log.Info("shipment created",
		zap.Int("position", stored.Position),
		zap.String("tracking_id", shipment.TrackingID),
		zap.Int("users", len(shipment.Users)),
	)
	return stored, nil
}

func (service *ShipmentService) Ship(ctx context.Context, position int) (models.StoredShipment, error) {
	return service.transition(ctx, position, models.ShippedStatus)
}

func (service *ShipmentService) Cancel(ctx context.Context, position int) (models.StoredShipment, error) {
	return service.transition(ctx, position, models.CancelledStatus)
}

// transition only leaves Pending; terminal records are rejected untouched.
func (service *ShipmentService) transition(ctx context.Context, position int, target models.ShipmentStatus) (models.StoredShipment, error) {
	stored, err := service.store.Update(ctx, position, func(shipment *models.Shipment) error {
		if !shipment.IsPending() {
			return customerror.NewTransitionError(string(shipment.Status), string(target))
		}
		shipment.Status = target
		return nil
	})
	if err != nil {
		return models.StoredShipment{}, err
	}

	logger.Log.Info("shipment status changed",
		zap.Int("position", position),
		zap.String("tracking_id", stored.Shipment.TrackingID),
		zap.String("status", string(target)),
	)
	return stored, nil
}

func (service *ShipmentService) Get(position int) (models.StoredShipment, error) {
	return service.store.Get(position)
}

// Pending is the processor worklist.
func (service *ShipmentService) Pending() []models.StoredShipment {
	return service.store.Filter(models.Shipment.IsPending)
}

// History flattens every record into one row per user. The admin column is
// only filled in for the creator tier.
func (service *ShipmentService) History(role models.Role) []models.HistoryRow {
	rows := []models.HistoryRow{}
	for _, stored := range service.store.Filter(func(models.Shipment) bool { return true }) {
		shipment := stored.Shipment
		for _, assignment := range shipment.Assignments() {
			row := models.HistoryRow{
				TrackingID:      shipment.TrackingID,
				RequestPlatform: shipment.RequestPlatform,
				CompanyName:     shipment.CompanyName,
				User:            assignment.User,
				TokenNumber:     assignment.TokenNumber,
				Status:          shipment.Status,
				Date:            shipment.Date,
			}
			if role.CanCreate() {
				row.AdminName = shipment.AdminName
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func buildShipment(request schemas.CreateShipmentRequest) (models.Shipment, error) {
	var messages []string
	// Blank means empty after trimming; values are stored as entered.
	required := func(value, name string) string {
		if strings.TrimSpace(value) == "" {
			messages = append(messages, fmt.Sprintf("Please fill in the %s.", name))
		}
		return value
	}

	shipment := models.Shipment{
		TrackingID: required(request.TrackingID, "Tracking ID"),
		AdminName:  required(request.AdminName, "Admin Name"),
	}

	platform := required(request.RequestPlatform, "Request Platform")
	switch choice := strings.TrimSpace(platform); {
	case choice == "":
	case choice == models.OtherPlatform:
		platform = required(request.OtherPlatform, "Other Platform")
	case !models.IsKnownPlatform(choice):
		messages = append(messages, fmt.Sprintf("Request Platform must be one of %s.", strings.Join(models.Platforms, ", ")))
	}
	shipment.RequestPlatform = platform

	shipment.CompanyName = required(request.CompanyName, "Company Name")

	switch {
	case len(request.Users) == 0:
		messages = append(messages, "At least one user is required.")
	case len(request.Users) > MaxUsersPerShipment:
		messages = append(messages, fmt.Sprintf("No more than %d users are allowed.", MaxUsersPerShipment))
	}
	if len(request.Users) != len(request.TokenNumbers) {
		messages = append(messages, "All users and token numbers must be provided.")
	}

	for i, user := range request.Users {
		shipment.Users = append(shipment.Users, required(user, fmt.Sprintf("User %d Name", i+1)))
	}
	for i, token := range request.TokenNumbers {
		shipment.TokenNumbers = append(shipment.TokenNumbers, required(token, fmt.Sprintf("Token Number %d", i+1)))
	}

	if len(messages) > 0 {
		return models.Shipment{}, customerror.NewValidationError(messages)
	}
	return shipment, nil
}
