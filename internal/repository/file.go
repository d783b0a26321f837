package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Bessima/token-shipping/internal/customerror"
	"github.com/Bessima/token-shipping/internal/models"
)

// FileRepository keeps shipments in a single JSON document. Save overwrites
// the document in place; a crash mid-write can leave it truncated.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (repository *FileRepository) Path() string {
	return repository.path
}

func (repository *FileRepository) Load(ctx context.Context) ([]models.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(repository.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Shipment{}, nil
		}
		return nil, customerror.NewCommonStorageError(fmt.Sprintf("read %s: %v", repository.path, err))
	}

	shipments := []models.Shipment{}
	if err = json.Unmarshal(data, &shipments); err != nil {
		return nil, fmt.Errorf("malformed shipments file %s: %w", repository.path, err)
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}

	return shipments, nil
}

func (repository *FileRepository) Save(ctx context.Context, shipments []models.Shipment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if shipments == nil {
		shipments = []models.Shipment{}
	}

	data, err := json.MarshalIndent(shipments, "", "    ")
	if err != nil {
		return customerror.NewCommonStorageError(fmt.Sprintf("encode shipments: %v", err))
	}

	if dir := filepath.Dir(repository.path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return customerror.NewCommonStorageError(fmt.Sprintf("create %s: %v", dir, err))
		}
	}

	if err = os.WriteFile(repository.path, data, 0o644); err != nil {
		return customerror.NewCommonStorageError(fmt.Sprintf("write %s: %v", repository.path, err))
	}
	return nil
}
