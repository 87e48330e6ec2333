package hive

import (
	"context"
	"errors"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	hives    HiveRepositoryInterface
	apiaries ApiaryReader
}

func NewService(hives HiveRepositoryInterface, apiaries ApiaryReader) *Service {
	return &Service{hives: hives, apiaries: apiaries}
}

// resolveApiary checks the parent exists and the actor may touch it.
// Every hive operation goes through here first; a hive is never reachable
// outside its own apiary.
func (s *Service) resolveApiary(ctx context.Context, actor domain.Actor, apiaryID int64) (*domain.Apiary, error) {
	a, err := s.apiaries.GetByID(ctx, apiaryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApiaryNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(a.UserID) {
		return nil, ErrForbidden
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, apiaryID int64) ([]domain.Hive, error) {
	if _, err := s.resolveApiary(ctx, actor, apiaryID); err != nil {
		return nil, err
	}
	return s.hives.ListByApiaryID(ctx, apiaryID)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, apiaryID, id int64) (*domain.Hive, error) {
	if _, err := s.resolveApiary(ctx, actor, apiaryID); err != nil {
		return nil, err
	}

	h, err := s.hives.GetByID(ctx, apiaryID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, apiaryID int64, req CreateHiveRequest) (*domain.Hive, error) {
	a, err := s.resolveApiary(ctx, actor, apiaryID)
	if err != nil {
		return nil, err
	}

	h := &domain.Hive{
		Name:        req.Name,
		Description: req.Description,
		ApiaryID:    a.ID,
		UserID:      a.UserID,
	}
	if err := s.hives.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, apiaryID, id int64, req UpdateHiveRequest) (*domain.Hive, error) {
	h, err := s.Get(ctx, actor, apiaryID, id)
	if err != nil {
		return nil, err
	}

	h.Name = req.Name
	h.Description = req.Description

	if err := s.hives.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, apiaryID, id int64) error {
	h, err := s.Get(ctx, actor, apiaryID, id)
	if err != nil {
		return err
	}
	return s.hives.Delete(ctx, h.ID)
}
