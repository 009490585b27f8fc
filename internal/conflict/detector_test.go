package conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

type stubScheduleRepo struct {
	entries    []*domain.ScheduleEntry
	err        error
	lastFilter domain.ScheduleFilter
}

func (s *stubScheduleRepo) GetByFilter(_ context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleEntry, error) {
	s.lastFilter = filter

	if s.err != nil {
		return nil, s.err
	}

	// Повторяем фильтрацию репозитория по ExcludeID, чтобы стаб вел себя
	// как настоящий слой хранения
	result := make([]*domain.ScheduleEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if filter.ExcludeID != nil && entry.ID == *filter.ExcludeID {
			continue
		}
		result = append(result, entry)
	}
	return result, nil
}

func entry(id int64, start, end string) *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ID:        id,
		Date:      time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Location:  "Field A",
	}
}

func candidate(start, end string) Candidate {
	return Candidate{
		Date:     time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Location: "Field A",
		Start:    types.TimeString(start),
		End:      types.TimeString(end),
	}
}

func TestFindConflictReturnsOverlappingEntry(t *testing.T) {
	repo := &stubScheduleRepo{entries: []*domain.ScheduleEntry{entry(7, "10:00", "11:00")}}
	detector := NewDetector(repo)

	found, err := detector.FindConflict(context.Background(), candidate("10:30", "11:30"), nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(7), found.ID)
}

func TestFindConflictNoOverlap(t *testing.T) {
	repo := &stubScheduleRepo{entries: []*domain.ScheduleEntry{entry(7, "10:00", "11:00")}}
	detector := NewDetector(repo)

	found, err := detector.FindConflict(context.Background(), candidate("13:00", "14:00"), nil)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindConflictTouchingBoundariesAllowed(t *testing.T) {
	repo := &stubScheduleRepo{entries: []*domain.ScheduleEntry{entry(7, "10:00", "11:00")}}
	detector := NewDetector(repo)

	// Конец существующей записи совпадает с началом кандидата
	found, err := detector.FindConflict(context.Background(), candidate("11:00", "12:00"), nil)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindConflictExcludesSelf(t *testing.T) {
	repo := &stubScheduleRepo{entries: []*domain.ScheduleEntry{entry(7, "10:00", "11:00")}}
	detector := NewDetector(repo)

	selfID := int64(7)
	found, err := detector.FindConflict(context.Background(), candidate("10:00", "11:00"), &selfID)
	require.NoError(t, err)
	assert.Nil(t, found)
	require.NotNil(t, repo.lastFilter.ExcludeID)
	assert.Equal(t, selfID, *repo.lastFilter.ExcludeID)
}

func TestFindConflictFiltersByDateAndLocation(t *testing.T) {
	repo := &stubScheduleRepo{}
	detector := NewDetector(repo)

	cand := candidate("10:00", "11:00")
	cand.Date = time.Date(2026, 6, 15, 14, 45, 0, 0, time.UTC)

	_, err := detector.FindConflict(context.Background(), cand, nil)
	require.NoError(t, err)

	// Время суток в дате кандидата не должно влиять на выборку
	require.NotNil(t, repo.lastFilter.StartDate)
	require.NotNil(t, repo.lastFilter.EndDate)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), *repo.lastFilter.StartDate)
	assert.Equal(t, *repo.lastFilter.StartDate, *repo.lastFilter.EndDate)
	require.NotNil(t, repo.lastFilter.Location)
	assert.Equal(t, "Field A", *repo.lastFilter.Location)
}

func TestFindConflictRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &stubScheduleRepo{err: repoErr}
	detector := NewDetector(repo)

	_, err := detector.FindConflict(context.Background(), candidate("10:00", "11:00"), nil)
	require.ErrorIs(t, err, repoErr)
}

func TestFindConflictReturnsFirstMatch(t *testing.T) {
	repo := &stubScheduleRepo{entries: []*domain.ScheduleEntry{
		entry(1, "08:00", "09:00"),
		entry(2, "10:00", "11:00"),
		entry(3, "10:30", "11:30"),
	}}
	detector := NewDetector(repo)

	found, err := detector.FindConflict(context.Background(), candidate("10:45", "12:00"), nil)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(2), found.ID)
}
