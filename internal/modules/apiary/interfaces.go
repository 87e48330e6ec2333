package apiary

import (
	"context"

	"apiaryadmin/internal/domain"
)

// ApiaryRepositoryInterface — only the methods the apiary service uses
type ApiaryRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Apiary) error
	GetByID(ctx context.Context, id int64) (*domain.Apiary, error)
	ListAll(ctx context.Context) ([]domain.Apiary, error)
	ListByUserID(ctx context.Context, userID int64) ([]domain.Apiary, error)
	Update(ctx context.Context, a *domain.Apiary) error
	Delete(ctx context.Context, id int64) error
}
