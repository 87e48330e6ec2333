package hive

import (
	"context"

	"apiaryadmin/internal/domain"
)

// HiveRepositoryInterface — only the methods the hive service uses
type HiveRepositoryInterface interface {
	Create(ctx context.Context, h *domain.Hive) error
	GetByID(ctx context.Context, apiaryID, id int64) (*domain.Hive, error)
	ListByApiaryID(ctx context.Context, apiaryID int64) ([]domain.Hive, error)
	Update(ctx context.Context, h *domain.Hive) error
	Delete(ctx context.Context, id int64) error
}

// ApiaryReader resolves the parent apiary of a nested hive route.
type ApiaryReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Apiary, error)
}
