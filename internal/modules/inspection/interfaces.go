package inspection

import (
	"context"

	"apiaryadmin/internal/domain"
)

// InspectionRepositoryInterface — only the methods the inspection service uses
type InspectionRepositoryInterface interface {
	Create(ctx context.Context, i *domain.Inspection) error
	GetByID(ctx context.Context, hiveID, id int64) (*domain.Inspection, error)
	ListByHiveID(ctx context.Context, hiveID int64) ([]domain.Inspection, error)
	Update(ctx context.Context, i *domain.Inspection) error
	Delete(ctx context.Context, id int64) error
}

// HiveReader resolves the parent hive of a nested inspection route.
type HiveReader interface {
	GetByID(ctx context.Context, apiaryID, id int64) (*domain.Hive, error)
}
