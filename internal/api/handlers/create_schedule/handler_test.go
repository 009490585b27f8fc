package create_schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CC-ScheduleService/internal/api/middleware"
	createSchedule "github.com/m04kA/CC-ScheduleService/internal/usecase/create_schedule"
	"github.com/m04kA/CC-ScheduleService/pkg/types"
)

type stubUseCase struct {
	resp    *createSchedule.Response
	err     error
	gotReq  *createSchedule.Request
	invoked bool
}

func (s *stubUseCase) Execute(_ context.Context, req *createSchedule.Request) (*createSchedule.Response, error) {
	s.invoked = true
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"activityId": 1,
	"date": "2026-06-15",
	"startTime": "10:30",
	"endTime": "11:30",
	"ageGroup": "juniors",
	"location": "Field A",
	"assignedCoach": "Sasha"
}`

func serve(t *testing.T, uc CreateScheduleUseCase, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	wrapped := middleware.Auth("camp_director")(http.HandlerFunc(handler.Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule", strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &stubUseCase{resp: &createSchedule.Response{
		ID:         42,
		ActivityID: 1,
		Date:       time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:30"),
		EndTime:    types.TimeString("11:30"),
		AgeGroup:   "juniors",
		Location:   "Field A",
		CreatedBy:  "alex",
	}}

	rec := serve(t, uc, validBody, map[string]string{"X-User": "alex"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-06-15", resp.Date)
	assert.Equal(t, "10:30", resp.StartTime)

	// Идентичность вызывающего прокинута из заголовка
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "alex", uc.gotReq.CreatedBy)
}

func TestHandleDefaultsCaller(t *testing.T) {
	uc := &stubUseCase{resp: &createSchedule.Response{ID: 1}}

	rec := serve(t, uc, validBody, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "camp_director", uc.gotReq.CreatedBy)
}

func TestHandleConflict(t *testing.T) {
	uc := &stubUseCase{err: &createSchedule.ConflictError{ConflictingID: 7}}

	rec := serve(t, uc, validBody, nil)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ConflictingSchedule)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleActivityNotFound(t *testing.T) {
	uc := &stubUseCase{err: createSchedule.ErrActivityNotFound}

	rec := serve(t, uc, validBody, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleBadDate(t *testing.T) {
	uc := &stubUseCase{}

	body := strings.Replace(validBody, "2026-06-15", "15.06.2026", 1)
	rec := serve(t, uc, body, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.invoked)
}

func TestHandleBadBody(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(t, uc, `{not json`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.invoked)
}

func TestHandleValidationError(t *testing.T) {
	uc := &stubUseCase{err: createSchedule.ErrInvalidInput}

	rec := serve(t, uc, validBody, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInternalError(t *testing.T) {
	uc := &stubUseCase{err: createSchedule.ErrInternal}

	rec := serve(t, uc, validBody, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
