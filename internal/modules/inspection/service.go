package inspection

import (
	"context"
	"errors"

	"apiaryadmin/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	inspections InspectionRepositoryInterface
	hives       HiveReader
}

func NewService(inspections InspectionRepositoryInterface, hives HiveReader) *Service {
	return &Service{inspections: inspections, hives: hives}
}

// resolveHive checks the apiary/hive chain exists and the actor may touch it.
// The hive lookup is already scoped to its apiary, so a hive id under the
// wrong apiary resolves to not found rather than leaking across owners.
func (s *Service) resolveHive(ctx context.Context, actor domain.Actor, apiaryID, hiveID int64) (*domain.Hive, error) {
	h, err := s.hives.GetByID(ctx, apiaryID, hiveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHiveNotFound
		}
		return nil, err
	}
	if !actor.CanAccess(h.UserID) {
		return nil, ErrForbidden
	}
	return h, nil
}

func (s *Service) List(ctx context.Context, actor domain.Actor, apiaryID, hiveID int64) ([]domain.Inspection, error) {
	if _, err := s.resolveHive(ctx, actor, apiaryID, hiveID); err != nil {
		return nil, err
	}
	return s.inspections.ListByHiveID(ctx, hiveID)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, apiaryID, hiveID, id int64) (*domain.Inspection, error) {
	if _, err := s.resolveHive(ctx, actor, apiaryID, hiveID); err != nil {
		return nil, err
	}

	i, err := s.inspections.GetByID(ctx, hiveID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
}

func (s *Service) Create(ctx context.Context, actor domain.Actor, apiaryID, hiveID int64, req CreateInspectionRequest) (*domain.Inspection, error) {
	h, err := s.resolveHive(ctx, actor, apiaryID, hiveID)
	if err != nil {
		return nil, err
	}

	i := &domain.Inspection{
		Title:  req.Title,
		Date:   req.Date,
		Notes:  req.Notes,
		HiveID: h.ID,
		UserID: h.UserID,
	}
	if err := s.inspections.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, apiaryID, hiveID, id int64, req UpdateInspectionRequest) (*domain.Inspection, error) {
	i, err := s.Get(ctx, actor, apiaryID, hiveID, id)
	if err != nil {
		return nil, err
	}

	i.Title = req.Title
	i.Date = req.Date
	i.Notes = req.Notes

	if err := s.inspections.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, apiaryID, hiveID, id int64) error {
	i, err := s.Get(ctx, actor, apiaryID, hiveID, id)
	if err != nil {
		return err
	}
	return s.inspections.Delete(ctx, i.ID)
}
