package activities

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	activityRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/activity"
	"github.com/m04kA/CC-ScheduleService/internal/service/activities/models"
	"github.com/m04kA/CC-ScheduleService/pkg/ptr"
)

type stubActivityRepo struct {
	activity  *domain.Activity
	getErr    error
	deleteErr error
	deleted   bool
}

func (s *stubActivityRepo) Create(_ context.Context, act *domain.Activity) (*domain.Activity, error) {
	created := *act
	created.ID = 1
	return &created, nil
}

func (s *stubActivityRepo) GetByID(_ context.Context, _ int64) (*domain.Activity, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.activity
	return &copied, nil
}

func (s *stubActivityRepo) List(_ context.Context) ([]*domain.Activity, error) {
	if s.activity == nil {
		return nil, nil
	}
	return []*domain.Activity{s.activity}, nil
}

func (s *stubActivityRepo) Update(_ context.Context, act *domain.Activity) (*domain.Activity, error) {
	copied := *act
	return &copied, nil
}

func (s *stubActivityRepo) Delete(_ context.Context, _ int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = true
	return nil
}

func (s *stubActivityRepo) Count(_ context.Context) (int64, error) {
	if s.activity == nil {
		return 0, nil
	}
	return 1, nil
}

type stubScheduleRepo struct {
	refs int64
}

func (s *stubScheduleRepo) CountByActivityID(_ context.Context, _ int64) (int64, error) {
	return s.refs, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateActivityRequiresName(t *testing.T) {
	svc := NewService(&stubActivityRepo{}, &stubScheduleRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateActivityRequest{Name: ""})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateActivitySuccess(t *testing.T) {
	svc := NewService(&stubActivityRepo{}, &stubScheduleRepo{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateActivityRequest{
		Name:            "Archery",
		DurationMinutes: 60,
		Materials:       []string{"Bows", "Targets"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, []string{"Bows", "Targets"}, resp.Materials)
}

func TestUpdateActivityPatchesOnlyProvidedFields(t *testing.T) {
	repo := &stubActivityRepo{activity: &domain.Activity{
		ID:              1,
		Name:            "Archery",
		Description:     "Target practice",
		DurationMinutes: 60,
	}}
	svc := NewService(repo, &stubScheduleRepo{}, nopLogger{})

	resp, err := svc.Update(context.Background(), 1, &models.UpdateActivityRequest{
		DurationMinutes: ptr.Ptr(90),
	})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, "Archery", resp.Name)
	assert.Equal(t, "Target practice", resp.Description)
}

func TestUpdateActivityNotFound(t *testing.T) {
	repo := &stubActivityRepo{getErr: activityRepo.ErrActivityNotFound}
	svc := NewService(repo, &stubScheduleRepo{}, nopLogger{})

	_, err := svc.Update(context.Background(), 1, &models.UpdateActivityRequest{})
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestDeleteActivityBlockedWhenReferenced(t *testing.T) {
	repo := &stubActivityRepo{activity: &domain.Activity{ID: 1, Name: "Archery"}}
	svc := NewService(repo, &stubScheduleRepo{refs: 3}, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrActivityInUse)
	assert.False(t, repo.deleted)
}

func TestDeleteActivityUnreferenced(t *testing.T) {
	repo := &stubActivityRepo{activity: &domain.Activity{ID: 1, Name: "Archery"}}
	svc := NewService(repo, &stubScheduleRepo{}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, repo.deleted)
}

func TestDeleteActivityNotFound(t *testing.T) {
	repo := &stubActivityRepo{deleteErr: activityRepo.ErrActivityNotFound}
	svc := NewService(repo, &stubScheduleRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrActivityNotFound)
}
