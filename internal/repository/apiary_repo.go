package repository

import (
	"context"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type ApiaryRepository struct {
	db *gorm.DB
}

func NewApiaryRepository(db *gorm.DB) *ApiaryRepository {
	return &ApiaryRepository{db: db}
}

func (r *ApiaryRepository) Create(ctx context.Context, a *domain.Apiary) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApiaryRepository) GetByID(ctx context.Context, id int64) (*domain.Apiary, error) {
	var a domain.Apiary
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

func (r *ApiaryRepository) ListAll(ctx context.Context) ([]domain.Apiary, error) {
	var apiaries []domain.Apiary
	tx := r.db.WithContext(ctx).Order("id").Find(&apiaries)
	return apiaries, tx.Error
}

func (r *ApiaryRepository) ListByUserID(ctx context.Context, userID int64) ([]domain.Apiary, error) {
	var apiaries []domain.Apiary
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&apiaries)
	return apiaries, tx.Error
}

func (r *ApiaryRepository) Update(ctx context.Context, a *domain.Apiary) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApiaryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Apiary{}, id).Error
}
