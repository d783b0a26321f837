package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bessima/token-shipping/internal/config/db"
	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	selectShipmentsQuery = `SELECT tracking_id, admin_name, request_platform, company_name, users, token_numbers, status, date FROM shipments ORDER BY position`
	deleteShipmentsQuery = `DELETE FROM shipments`
	insertShipmentQuery  = `INSERT INTO shipments (position, tracking_id, admin_name, request_platform, company_name, users, token_numbers, status, date) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
)

// PostgresRepository stores the collection in the shipments table. Like the
// file store it rewrites every row on Save, inside one transaction.
type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(dbObj *db.DB) *PostgresRepository {
	return &PostgresRepository{db: dbObj}
}

func (repository *PostgresRepository) Load(ctx context.Context) ([]models.Shipment, error) {
	rows, err := repository.db.Pool.Query(ctx, selectShipmentsQuery)
	if err != nil {
		return nil, mapPGError(err)
	}
	defer rows.Close()

	shipments := []models.Shipment{}
	for rows.Next() {
		var shipment models.Shipment
		var status string
		err = rows.Scan(
			&shipment.TrackingID,
			&shipment.AdminName,
			&shipment.RequestPlatform,
			&shipment.CompanyName,
			&shipment.Users,
			&shipment.TokenNumbers,
			&status,
			&shipment.Date,
		)
		if err != nil {
			return nil, mapPGError(err)
		}
		shipment.Status = models.ShipmentStatus(status)
		shipments = append(shipments, shipment)
	}

	if err = rows.Err(); err != nil {
		return nil, mapPGError(err)
	}

	return shipments, nil
}

func (repository *PostgresRepository) Save(ctx context.Context, shipments []models.Shipment) (err error) {
	tx, err := repository.db.Pool.Begin(ctx)
	if err != nil {
		return mapPGError(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, deleteShipmentsQuery); err != nil {
		return mapPGError(err)
	}

	for position, shipment := range shipments {
		_, err = tx.Exec(
			ctx,
			insertShipmentQuery,
			position,
			shipment.TrackingID,
			shipment.AdminName,
			shipment.RequestPlatform,
			shipment.CompanyName,
			shipment.Users,
			shipment.TokenNumbers,
			string(shipment.Status),
			shipment.Date,
		)
		if err != nil {
			return mapPGError(err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return mapPGError(err)
	}
	return nil
}

func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			return customerror.NewUniqueViolationError(pgErr.Detail)
		}
		if pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return customerror.NewValidationError([]string{fmt.Sprintf("shipment rejected by database: %s", pgErr.ConstraintName)})
		}
	}
	return customerror.NewCommonStorageError(err.Error())
}
