package get_week_view

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

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		name       string
		reference  time.Time
		wantMonday time.Time
		wantFriday time.Time
	}{
		{"monday", date(2026, 6, 15), date(2026, 6, 15), date(2026, 6, 19)},
		{"wednesday", date(2026, 6, 17), date(2026, 6, 15), date(2026, 6, 19)},
		{"friday", date(2026, 6, 19), date(2026, 6, 15), date(2026, 6, 19)},
		{"saturday", date(2026, 6, 20), date(2026, 6, 15), date(2026, 6, 19)},
		// Воскресенье принадлежит прошедшей неделе
		{"sunday", date(2026, 6, 21), date(2026, 6, 15), date(2026, 6, 19)},
		{"next monday", date(2026, 6, 22), date(2026, 6, 22), date(2026, 6, 26)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			monday, friday := weekBounds(tc.reference)
			assert.Equal(t, tc.wantMonday, monday)
			assert.Equal(t, tc.wantFriday, friday)
		})
	}
}

func TestExecuteUsesReferenceDate(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Reference: date(2026, 6, 17)})
	require.NoError(t, err)

	assert.Equal(t, date(2026, 6, 15), resp.StartDate)
	assert.Equal(t, date(2026, 6, 19), resp.EndDate)
	assert.Equal(t, date(2026, 6, 15), repo.gotStart)
	assert.Equal(t, date(2026, 6, 19), repo.gotEnd)
	assert.Empty(t, resp.Activities)
}

func TestExecuteDefaultsToCurrentWeek(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 6, 18, 15, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, date(2026, 6, 15), resp.StartDate)
	assert.Equal(t, date(2026, 6, 19), resp.EndDate)
}

func TestExecuteMapsActivityFields(t *testing.T) {
	repo := &stubScheduleRepo{items: []*domain.ScheduleWithActivity{
		{
			Entry: domain.ScheduleEntry{
				ID:            3,
				Date:          date(2026, 6, 16),
				StartTime:     types.TimeString("10:00"),
				EndTime:       types.TimeString("11:00"),
				AgeGroup:      "juniors",
				Location:      "Field A",
				AssignedCoach: "Sasha",
			},
			ActivityName: "Archery",
			ActivityDesc: "Target practice",
		},
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Reference: date(2026, 6, 16)})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)

	item := resp.Activities[0]
	assert.Equal(t, "Archery", item.Name)
	assert.Equal(t, "Target practice", item.Description)
	assert.Equal(t, 2, item.DayOfWeek)
	assert.Equal(t, "10:00", item.StartTime.String())
}
