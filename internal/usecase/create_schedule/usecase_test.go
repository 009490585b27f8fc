package create_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/conflict"
	"github.com/m04kA/CC-ScheduleService/internal/domain"
	activityRepo "github.com/m04kA/CC-ScheduleService/internal/infra/storage/activity"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

type stubScheduleRepo struct {
	created *domain.ScheduleEntry
	err     error
}

func (s *stubScheduleRepo) Create(_ context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	created := *entry
	created.ID = 42
	s.created = &created
	return &created, nil
}

type stubActivityRepo struct {
	activity *domain.Activity
	err      error
}

func (s *stubActivityRepo) GetByID(_ context.Context, _ int64) (*domain.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.activity, nil
}

type stubDetector struct {
	existing    *domain.ScheduleEntry
	err         error
	gotCand     conflict.Candidate
	gotExclude  *int64
	invocations int
}

func (s *stubDetector) FindConflict(_ context.Context, cand conflict.Candidate, excludeID *int64) (*domain.ScheduleEntry, error) {
	s.invocations++
	s.gotCand = cand
	s.gotExclude = excludeID
	return s.existing, s.err
}

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		ActivityID:    1,
		Date:          time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:30"),
		EndTime:       types.TimeString("11:30"),
		AgeGroup:      "juniors",
		Location:      "Field A",
		AssignedCoach: "Sasha",
		CreatedBy:     "camp_director",
	}
}

func newUseCase(schedRepo *stubScheduleRepo, actRepo *stubActivityRepo, det *stubDetector) *UseCase {
	return NewUseCase(schedRepo, actRepo, det, &stubTxManager{}, nopLogger{})
}

func TestCreateScheduleSuccess(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1, Name: "Archery"}}
	det := &stubDetector{}

	uc := newUseCase(schedRepo, actRepo, det)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "camp_director", resp.CreatedBy)

	// Детектор вызывается без исключаемого ID
	assert.Equal(t, 1, det.invocations)
	assert.Nil(t, det.gotExclude)
	assert.Equal(t, "Field A", det.gotCand.Location)
}

func TestCreateScheduleConflict(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1}}
	det := &stubDetector{existing: &domain.ScheduleEntry{
		ID:        7,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		Location:  "Field A",
	}}

	uc := newUseCase(schedRepo, actRepo, det)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrScheduleConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, int64(7), conflictErr.ConflictingID)

	// Запись не создается
	assert.Nil(t, schedRepo.created)
}

func TestCreateScheduleActivityNotFound(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{err: activityRepo.ErrActivityNotFound}
	det := &stubDetector{}

	uc := newUseCase(schedRepo, actRepo, det)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrActivityNotFound)
	assert.Zero(t, det.invocations)
}

func TestCreateScheduleInvalidTimes(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1}}
	det := &stubDetector{}

	uc := newUseCase(schedRepo, actRepo, det)

	// Начало после окончания
	req := validRequest()
	req.StartTime = types.TimeString("12:00")
	req.EndTime = types.TimeString("11:00")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	// Совпадающие начало и окончание тоже отвергаются
	req = validRequest()
	req.EndTime = req.StartTime

	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateScheduleInvalidTimeFormat(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1}}

	uc := newUseCase(schedRepo, actRepo, &stubDetector{})

	req := validRequest()
	req.StartTime = types.TimeString("25:99")

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateScheduleDetectorError(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1}}
	det := &stubDetector{err: errors.New("connection refused")}

	uc := newUseCase(schedRepo, actRepo, det)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
}

func TestCreateScheduleNormalizesDate(t *testing.T) {
	schedRepo := &stubScheduleRepo{}
	actRepo := &stubActivityRepo{activity: &domain.Activity{ID: 1}}
	det := &stubDetector{}

	uc := newUseCase(schedRepo, actRepo, det)

	req := validRequest()
	req.Date = time.Date(2026, 6, 15, 17, 42, 3, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), resp.Date)
}
