package inspection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"apiaryadmin/internal/domain"
)

type mockInspectionRepo struct {
	mock.Mock
}

func (m *mockInspectionRepo) Create(ctx context.Context, i *domain.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *mockInspectionRepo) GetByID(ctx context.Context, hiveID, id int64) (*domain.Inspection, error) {
	args := m.Called(ctx, hiveID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}

func (m *mockInspectionRepo) ListByHiveID(ctx context.Context, hiveID int64) ([]domain.Inspection, error) {
	args := m.Called(ctx, hiveID)
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

func (m *mockInspectionRepo) Update(ctx context.Context, i *domain.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *mockInspectionRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockHiveReader struct {
	mock.Mock
}

func (m *mockHiveReader) GetByID(ctx context.Context, apiaryID, id int64) (*domain.Hive, error) {
	args := m.Called(ctx, apiaryID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hive), args.Error(1)
}

var (
	keeper = domain.Actor{UserID: 10, Username: "jonas", Roles: []string{string(domain.RoleBeekeeper)}}
	other  = domain.Actor{UserID: 20, Username: "ruta", Roles: []string{string(domain.RoleBeekeeper)}}
	admin  = domain.Actor{UserID: 1, Username: "adminas", Roles: []string{string(domain.RoleAdmin), string(domain.RoleBeekeeper)}}
)

func TestService_Get_ThroughOwnedHive(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)
	inspections.On("GetByID", mock.Anything, int64(5), int64(9)).Return(&domain.Inspection{ID: 9, Title: "Spring check", HiveID: 5, UserID: 10}, nil)

	service := NewService(inspections, hives)

	i, err := service.Get(context.Background(), keeper, 1, 5, 9)

	require.NoError(t, err)
	assert.Equal(t, "Spring check", i.Title)
}

func TestService_Get_ForeignHiveForbidden(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)

	service := NewService(inspections, hives)

	_, err := service.Get(context.Background(), other, 1, 5, 9)

	assert.ErrorIs(t, err, ErrForbidden)
	inspections.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Get_AdminAllowed(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)
	inspections.On("GetByID", mock.Anything, int64(5), int64(9)).Return(&domain.Inspection{ID: 9, HiveID: 5, UserID: 10}, nil)

	service := NewService(inspections, hives)

	_, err := service.Get(context.Background(), admin, 1, 5, 9)

	assert.NoError(t, err)
}

func TestService_Get_HiveUnderWrongApiary(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	// The hive exists but not under this apiary; the scoped lookup misses.
	hives.On("GetByID", mock.Anything, int64(2), int64(5)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(inspections, hives)

	_, err := service.Get(context.Background(), keeper, 2, 5, 9)

	assert.ErrorIs(t, err, ErrHiveNotFound)
}

func TestService_Get_MissingInspection(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)
	inspections.On("GetByID", mock.Anything, int64(5), int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(inspections, hives)

	_, err := service.Get(context.Background(), keeper, 1, 5, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Create_InheritsHiveOwner(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)
	inspections.On("Create", mock.Anything, mock.MatchedBy(func(i *domain.Inspection) bool {
		return i.HiveID == 5 && i.UserID == 10
	})).Return(nil)

	service := NewService(inspections, hives)

	i, err := service.Create(context.Background(), keeper, 1, 5, CreateInspectionRequest{
		Title: "Spring check",
		Date:  time.Now(),
		Notes: "Brood pattern looks healthy",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), i.UserID)
	inspections.AssertExpectations(t)
}

func TestService_Delete_ForeignHiveForbidden(t *testing.T) {
	inspections := new(mockInspectionRepo)
	hives := new(mockHiveReader)
	hives.On("GetByID", mock.Anything, int64(1), int64(5)).Return(&domain.Hive{ID: 5, ApiaryID: 1, UserID: 10}, nil)

	service := NewService(inspections, hives)

	err := service.Delete(context.Background(), other, 1, 5, 9)

	assert.ErrorIs(t, err, ErrForbidden)
	inspections.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
