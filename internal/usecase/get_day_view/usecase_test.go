package get_day_view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

type stubScheduleRepo struct {
	items    []*domain.ScheduleWithActivity
	gotStart time.Time
	gotEnd   time.Time
}

func (s *stubScheduleRepo) ListWithActivity(_ context.Context, startDate, endDate time.Time) ([]*domain.ScheduleWithActivity, error) {
	s.gotStart = startDate
	s.gotEnd = endDate
	return s.items, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func item(ageGroup, name, start string) *domain.ScheduleWithActivity {
	return &domain.ScheduleWithActivity{
		Entry: domain.ScheduleEntry{
			AgeGroup:  ageGroup,
			StartTime: types.TimeString(start),
			EndTime:   types.TimeString("23:00"),
		},
		ActivityName: name,
	}
}

func TestExecuteGroupsByAgeGroup(t *testing.T) {
	repo := &stubScheduleRepo{items: []*domain.ScheduleWithActivity{
		item("juniors", "Archery", "09:00"),
		item("seniors", "Canoeing", "10:00"),
		item("juniors", "Crafts", "11:00"),
	}}
	uc := NewUseCase(repo, nopLogger{})

	day := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)

	assert.Equal(t, day, resp.Date)
	assert.Equal(t, 2, resp.DayOfWeek)
	require.Len(t, resp.Schedules, 2)

	juniors := resp.Schedules["juniors"]
	require.Len(t, juniors, 2)
	// Порядок внутри группы повторяет порядок выдачи репозитория
	assert.Equal(t, "Archery", juniors[0].Name)
	assert.Equal(t, "Crafts", juniors[1].Name)

	require.Len(t, resp.Schedules["seniors"], 1)
}

func TestExecuteQueriesSingleDay(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, nopLogger{})

	// Время суток в запросе отбрасывается
	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 6, 16, 18, 45, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	day := time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, day, repo.gotStart)
	assert.Equal(t, day, repo.gotEnd)
	assert.Empty(t, resp.Schedules)
}
