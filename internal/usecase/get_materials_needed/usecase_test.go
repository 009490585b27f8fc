package get_materials_needed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/domain"
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

func withMaterials(required []domain.MaterialRequirement, defaults []string) *domain.ScheduleWithActivity {
	return &domain.ScheduleWithActivity{
		Entry:             domain.ScheduleEntry{MaterialsRequired: required},
		ActivityMaterials: defaults,
	}
}

func TestAggregateEntryQuantities(t *testing.T) {
	items := []*domain.ScheduleWithActivity{
		withMaterials([]domain.MaterialRequirement{
			{Item: "Rope", Quantity: 3},
			{Item: "Whistle", Quantity: 1},
		}, nil),
		withMaterials([]domain.MaterialRequirement{
			{Item: "Rope", Quantity: 2},
		}, nil),
	}

	lines := aggregateMaterials(items)
	require.Len(t, lines, 2)
	assert.Equal(t, MaterialLine{Name: "Rope", Quantity: 5, LowThreshold: domain.LowStockThreshold}, lines[0])
	assert.Equal(t, MaterialLine{Name: "Whistle", Quantity: 1, LowThreshold: domain.LowStockThreshold}, lines[1])
}

func TestAggregateActivityDefaultsCountOnePerOccurrence(t *testing.T) {
	// Две записи одной активности с дефолтным материалом Cones дают Cones=2
	items := []*domain.ScheduleWithActivity{
		withMaterials(nil, []string{"Cones"}),
		withMaterials(nil, []string{"Cones"}),
	}

	lines := aggregateMaterials(items)
	require.Len(t, lines, 1)
	assert.Equal(t, "Cones", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAggregateMixesEntryAndDefaultMaterials(t *testing.T) {
	items := []*domain.ScheduleWithActivity{
		withMaterials([]domain.MaterialRequirement{{Item: "Cones", Quantity: 10}}, []string{"Cones", "Balls"}),
	}

	lines := aggregateMaterials(items)
	require.Len(t, lines, 2)
	// Отсортировано по имени
	assert.Equal(t, "Balls", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, "Cones", lines[1].Name)
	assert.Equal(t, 11, lines[1].Quantity)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, aggregateMaterials(nil))
}

func TestExecuteExplicitPeriod(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, nopLogger{})

	start := date(2026, 6, 15)
	end := date(2026, 6, 17)
	resp, err := uc.Execute(context.Background(), &Request{StartDate: &start, EndDate: &end})
	require.NoError(t, err)

	assert.Equal(t, start, resp.StartDate)
	assert.Equal(t, end, resp.EndDate)
	assert.Equal(t, start, repo.gotStart)
	assert.Equal(t, end, repo.gotEnd)
}

func TestExecuteInvertedPeriodRejected(t *testing.T) {
	uc := NewUseCase(&stubScheduleRepo{}, nopLogger{})

	start := date(2026, 6, 17)
	end := date(2026, 6, 15)
	_, err := uc.Execute(context.Background(), &Request{StartDate: &start, EndDate: &end})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteDefaultsToCurrentWeek(t *testing.T) {
	repo := &stubScheduleRepo{}
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2026, 6, 18, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, date(2026, 6, 15), resp.StartDate)
	assert.Equal(t, date(2026, 6, 19), resp.EndDate)
}
