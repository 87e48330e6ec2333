package repository

import (
	"context"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) Create(ctx context.Context, i *domain.Inspection) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InspectionRepository) GetByID(ctx context.Context, hiveID, id int64) (*domain.Inspection, error) {
	var i domain.Inspection
	tx := r.db.WithContext(ctx).
		Where("id = ? AND hive_id = ?", id, hiveID).
		First(&i)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &i, nil
}

func (r *InspectionRepository) ListByHiveID(ctx context.Context, hiveID int64) ([]domain.Inspection, error) {
	var inspections []domain.Inspection
	tx := r.db.WithContext(ctx).Where("hive_id = ?", hiveID).Order("id").Find(&inspections)
	return inspections, tx.Error
}

func (r *InspectionRepository) Update(ctx context.Context, i *domain.Inspection) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *InspectionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Inspection{}, id).Error
}
