package update_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	scheduleRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/CC-ScheduleService/pkg/ptr"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

type stubScheduleRepo struct {
	current   *domain.ScheduleEntry
	getErr    error
	updateErr error
	updated   *domain.ScheduleEntry
}

func (s *stubScheduleRepo) GetByID(_ context.Context, _ int64) (*domain.ScheduleEntry, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	copied := *s.current
	return &copied, nil
}

func (s *stubScheduleRepo) Update(_ context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	copied := *entry
	s.updated = &copied
	return &copied, nil
}

type stubDetector struct {
	existing    *domain.ScheduleEntry
	gotCand     conflict.Candidate
	gotExclude  *int64
	invocations int
}

func (s *stubDetector) FindConflict(_ context.Context, cand conflict.Candidate, excludeID *int64) (*domain.ScheduleEntry, error) {
	s.invocations++
	s.gotCand = cand
	s.gotExclude = excludeID
	return s.existing, nil
}

type stubTxManager struct {
	invocations int
}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.invocations++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingEntry() *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ID:            5,
		ActivityID:    1,
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("11:00"),
		AgeGroup:      "juniors",
		Location:      "Field A",
		AssignedCoach: "Sasha",
		CreatedBy:     "camp_director",
	}
}

func TestUpdateScheduleNotFound(t *testing.T) {
	repo := &stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
	uc := NewUseCase(repo, &stubDetector{}, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 5, &Request{Notes: ptr.Ptr("new notes")})
	require.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUpdateScheduleNotesOnlySkipsConflictCheck(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	det := &stubDetector{}
	tx := &stubTxManager{}
	uc := NewUseCase(repo, det, tx, nopLogger{})

	resp, err := uc.Execute(context.Background(), 5, &Request{Notes: ptr.Ptr("bring water")})
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "bring water", *resp.Notes)

	// Патч не трогает дату, время и площадку
	assert.Zero(t, det.invocations)
	assert.Zero(t, tx.invocations)
}

func TestUpdateScheduleTimeChangeChecksConflictExcludingSelf(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	det := &stubDetector{}
	tx := &stubTxManager{}
	uc := NewUseCase(repo, det, tx, nopLogger{})

	start := types.TimeString("14:00")
	end := types.TimeString("15:00")
	resp, err := uc.Execute(context.Background(), 5, &Request{StartTime: &start, EndTime: &end})
	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.StartTime.String())

	assert.Equal(t, 1, det.invocations)
	assert.Equal(t, 1, tx.invocations)
	require.NotNil(t, det.gotExclude)
	assert.Equal(t, int64(5), *det.gotExclude)
}

func TestUpdateScheduleConflictOnMove(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	det := &stubDetector{existing: &domain.ScheduleEntry{
		ID:        9,
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("15:00"),
		Location:  "Field A",
	}}
	uc := NewUseCase(repo, det, &stubTxManager{}, nopLogger{})

	start := types.TimeString("14:30")
	_, err := uc.Execute(context.Background(), 5, &Request{StartTime: &start, EndTime: ptr.Ptr(types.TimeString("15:30"))})
	require.ErrorIs(t, err, ErrScheduleConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(9), conflictErr.ConflictingID)
	assert.Nil(t, repo.updated)
}

func TestUpdateScheduleMergedValidation(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	uc := NewUseCase(repo, &stubDetector{}, &stubTxManager{}, nopLogger{})

	// Новое начало позже существующего окончания
	start := types.TimeString("12:00")
	_, err := uc.Execute(context.Background(), 5, &Request{StartTime: &start})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateScheduleLocationChangeChecksConflict(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	det := &stubDetector{}
	uc := NewUseCase(repo, det, &stubTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), 5, &Request{Location: ptr.Ptr("Field B")})
	require.NoError(t, err)

	assert.Equal(t, 1, det.invocations)
	assert.Equal(t, "Field B", det.gotCand.Location)
	// Остальные конфликтные поля берутся из текущей записи
	assert.Equal(t, "10:00", det.gotCand.Start.String())
}

func TestUpdateSchedulePreservesCreationMetadata(t *testing.T) {
	repo := &stubScheduleRepo{current: existingEntry()}
	uc := NewUseCase(repo, &stubDetector{}, &stubTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), 5, &Request{AgeGroup: ptr.Ptr("seniors")})
	require.NoError(t, err)

	assert.Equal(t, "seniors", resp.AgeGroup)
	assert.Equal(t, "camp_director", resp.CreatedBy)
	assert.Equal(t, int64(1), resp.ActivityID)
}
