package apiary

import (
	"context"
	"errors"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	apiaries ApiaryRepositoryInterface
}

func NewService(apiaries ApiaryRepositoryInterface) *Service {
	return &Service{apiaries: apiaries}
}

func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Apiary, error) {
	if actor.IsAdmin() {
		return s.apiaries.ListAll(ctx)
	}
	return s.apiaries.ListByUserID(ctx, actor.UserID)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Apiary, error) {
	a, err := s.apiaries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(a.UserID) {
		return nil, ErrForbidden
	}
	return a, nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateApiaryRequest) (*domain.Apiary, error) {
	a := &domain.Apiary{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		UserID:      actor.UserID,
	}
	if err := s.apiaries.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req UpdateApiaryRequest) (*domain.Apiary, error) {
	a, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	a.Name = req.Name
	a.Location = req.Location
	a.Description = req.Description

	if err := s.apiaries.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	a, err := s.Get(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.apiaries.Delete(ctx, a.ID)
}
