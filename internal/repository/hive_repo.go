package repository

import (
	"context"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type HiveRepository struct {
	db *gorm.DB
}

func NewHiveRepository(db *gorm.DB) *HiveRepository {
	return &HiveRepository{db: db}
}

func (r *HiveRepository) Create(ctx context.Context, h *domain.Hive) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// GetByID scopes the lookup to an apiary so hives are only reachable through
// their own nested route.
func (r *HiveRepository) GetByID(ctx context.Context, apiaryID, id int64) (*domain.Hive, error) {
	var h domain.Hive
	tx := r.db.WithContext(ctx).
		Where("id = ? AND apiary_id = ?", id, apiaryID).
		First(&h)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

func (r *HiveRepository) ListByApiaryID(ctx context.Context, apiaryID int64) ([]domain.Hive, error) {
	var hives []domain.Hive
	tx := r.db.WithContext(ctx).Where("apiary_id = ?", apiaryID).Order("id").Find(&hives)
	return hives, tx.Error
}

func (r *HiveRepository) Update(ctx context.Context, h *domain.Hive) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HiveRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Hive{}, id).Error
}
