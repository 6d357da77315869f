package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/twentyfourseven/internal/api"
	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/grid"
	"github.com/limbo/twentyfourseven/internal/notes"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/internal/service/mocks"
	"github.com/limbo/twentyfourseven/pkg/entity"
	jwtservice "github.com/limbo/twentyfourseven/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	userID     = uuid.New()
	categoryID = uuid.New()
	entryID    = uuid.New()
	secret     = "test_secret"
)

type testServer struct {
	serv     *api.Server
	users    *mocks.MockUserServiceI
	timer    *mocks.MockTimerServiceI
	gaps     *mocks.MockGapsServiceI
	reports  *mocks.MockReportServiceI
	ta       *mocks.MockTakeawayServiceI
	catalog  *mocks.MockCatalogServiceI
	activity *mocks.MockActivityServiceI
	notes    *mocks.MockNotesServiceI
	settings *mocks.MockSettingsServiceI
	backup   *mocks.MockBackupServiceI
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		users:    mocks.NewMockUserServiceI(ctrl),
		timer:    mocks.NewMockTimerServiceI(ctrl),
		gaps:     mocks.NewMockGapsServiceI(ctrl),
		reports:  mocks.NewMockReportServiceI(ctrl),
		ta:       mocks.NewMockTakeawayServiceI(ctrl),
		catalog:  mocks.NewMockCatalogServiceI(ctrl),
		activity: mocks.NewMockActivityServiceI(ctrl),
		notes:    mocks.NewMockNotesServiceI(ctrl),
		settings: mocks.NewMockSettingsServiceI(ctrl),
		backup:   mocks.NewMockBackupServiceI(ctrl),
	}
	ts.serv = api.New(&api.ServicesList{
		UserService:     ts.users,
		TimerService:    ts.timer,
		GapsService:     ts.gaps,
		ReportService:   ts.reports,
		TakeawayService: ts.ta,
		CatalogService:  ts.catalog,
		ActivityService: ts.activity,
		NotesService:    ts.notes,
		SettingsService: ts.settings,
		BackupService:   ts.backup,
		JwtService:      jwtservice.New(secret),
		Location:        time.UTC,
	})
	return ts
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	body, err := sonic.ConfigDefault.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(body)
}

// authed marks the request as coming from userID, as the auth middleware does.
func authed(r *http.Request) *http.Request {
	return r.WithContext(api.WithUserID(r.Context(), userID))
}

func monthRequest(method, target string, body *bytes.Reader) *http.Request {
	var r *http.Request
	if body == nil {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, body)
	}
	r.SetPathValue("year", "2024")
	r.SetPathValue("month", "2")
	return authed(r)
}

var february = service.MonthRef{UserID: userID, Year: 2024, Month: time.February}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)
	body := api.RegisterRequest{Email: "alice@example.com", Name: "alice", Password: "password123"}
	testCases := []struct {
		Desc         string
		Body         any
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "registered",
			Body:         body,
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{
					Email: "alice@example.com", Name: "alice", Password: "password123",
				}).Return(&entity.User{ID: userID}, nil)
			},
		},
		{
			Desc:         "existed user",
			Body:         body,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
		},
		{
			Desc:         "validation error",
			Body:         body,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("email")))
			},
		},
		{
			Desc:         "service error",
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/auth/register", jsonBody(t, tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.Register(rr, httptest.NewRequest(http.MethodPost, "/auth/register", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestLoginAndAuth(t *testing.T) {
	ts := newTestServer(t)
	user := &entity.User{ID: userID, Email: "alice@example.com", Name: "alice"}
	var token string
	t.Run("logged in", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), "alice@example.com", "password123").Return(user, nil)
		rr := httptest.NewRecorder()
		ts.serv.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, api.LoginRequest{Email: "alice@example.com", Password: "password123"})))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.LoginResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, userID.String(), resp.UserID)
		token = resp.Token
		assert.NotEmpty(t, token)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		ts.serv.Login(rr, httptest.NewRequest(http.MethodPost, "/auth/login",
			jsonBody(t, api.LoginRequest{Email: "alice@example.com", Password: "nope"})))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})

	var seen uuid.UUID
	handler := ts.serv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = api.GetUIDFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))
	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
			},
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "malformed token",
			Header:       "Bearer garbage",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "wrong scheme",
			Header:       "Basic " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "deleted user",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			seen = uuid.Nil
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusOK {
				assert.Equal(t, userID, seen)
			}
		})
	}
	t.Run("protected route through the router", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)

		ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		ts.settings.EXPECT().Get(gomock.Any(), userID).Return(&entity.Settings{}, nil)
		rr = httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		ts.serv.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
}

func TestTimerHandlers(t *testing.T) {
	ts := newTestServer(t)
	start := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	entry := &entity.TimeEntry{ID: entryID, UserID: userID, CategoryID: categoryID, StartTime: start}

	testCases := []struct {
		Desc         string
		Path         string
		Body         any
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "started",
			Path:         "/timer/start",
			Body:         api.StartTimerRequest{UserID: userID, CategoryID: categoryID},
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.timer.EXPECT().Start(gomock.Any(), &service.StartTimerRequest{UserID: userID, CategoryID: categoryID}).
					Return(entry, nil)
			},
		},
		{
			Desc:         "timer already running",
			Path:         "/timer/start",
			Body:         api.StartTimerRequest{UserID: userID, CategoryID: categoryID},
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.timer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrActiveTimerExists)
			},
		},
		{
			Desc:         "invalid uuid",
			Path:         "/timer/start",
			Body:         map[string]string{"userId": "not-a-uuid", "categoryId": categoryID.String()},
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "stopped",
			Path:         "/timer/stop",
			Body:         api.StopTimerRequest{UserID: userID, EntryID: entryID},
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.timer.EXPECT().Stop(gomock.Any(), &service.StopTimerRequest{UserID: userID, EntryID: entryID}).
					Return(entry, nil)
			},
		},
		{
			Desc:         "no running timer",
			Path:         "/timer/stop",
			Body:         api.StopTimerRequest{UserID: userID, EntryID: entryID},
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ts.timer.EXPECT().Stop(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrActiveTimerNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, tc.Path, jsonBody(t, tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}

	t.Run("active timer", func(t *testing.T) {
		ts.timer.EXPECT().GetActive(gomock.Any(), userID).Return(entry, nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/timer/active/"+userID.String(), nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var got entity.TimeEntry
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, entryID, got.ID)
	})
	t.Run("no active timer is null", func(t *testing.T) {
		ts.timer.EXPECT().GetActive(gomock.Any(), userID).Return(nil, nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/timer/active/"+userID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Equal(t, "null", strings.TrimSpace(rr.Body.String()))
	})
	t.Run("entries of authenticated user", func(t *testing.T) {
		ts.timer.EXPECT().ListEntries(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return([]entity.TimeEntry{*entry}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ListEntries(rr, authed(httptest.NewRequest(http.MethodGet, "/api/v1/entries?startDate=2024-03-01&endDate=2024-03-31", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestRangeQueries(t *testing.T) {
	ts := newTestServer(t)
	dayStart := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	query := "?userId=" + userID.String() + "&startDate=2024-03-10&endDate=2024-03-10"

	t.Run("gaps cover the whole end day", func(t *testing.T) {
		ts.gaps.EXPECT().CheckGaps(gomock.Any(), userID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, start, end time.Time) (*entity.GapsReport, error) {
				assert.True(t, start.Equal(dayStart))
				assert.True(t, end.Equal(dayEnd))
				return &entity.GapsReport{Gaps: []entity.Gap{}}, nil
			})
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/gaps/check"+query, nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("timestamps are taken as is", func(t *testing.T) {
		ts.reports.EXPECT().GetReport(gomock.Any(), userID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, start, end time.Time) (*entity.Report, error) {
				assert.True(t, start.Equal(dayStart.Add(9*time.Hour)))
				assert.True(t, end.Equal(dayStart.Add(17*time.Hour)))
				return &entity.Report{}, nil
			})
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports?userId="+userID.String()+
			"&startDate=2024-03-10T09:00:00Z&endDate=2024-03-10T17:00:00Z", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("inverted range", func(t *testing.T) {
		ts.reports.EXPECT().GetReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrInvalidRange)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports?userId="+userID.String()+
			"&startDate=2024-03-11&endDate=2024-03-10", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	for _, target := range []string{
		"/gaps/check?startDate=2024-03-10&endDate=2024-03-10",
		"/gaps/check?userId=" + userID.String() + "&endDate=2024-03-10",
		"/reports?userId=" + userID.String() + "&startDate=10.03.2024&endDate=2024-03-10",
		"/reports/dashboard",
		"/takeaways?userId=nope",
	} {
		t.Run("bad query "+target, func(t *testing.T) {
			rr := httptest.NewRecorder()
			ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
		})
	}
	t.Run("dashboard", func(t *testing.T) {
		ts.reports.EXPECT().GetDashboardData(gomock.Any(), userID).Return(&entity.Dashboard{}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reports/dashboard?userId="+userID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestTakeawayHandlers(t *testing.T) {
	ts := newTestServer(t)
	t.Run("created with date", func(t *testing.T) {
		ts.ta.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *service.CreateTakeawayRequest) (*entity.Takeaway, error) {
				assert.Equal(t, userID, req.UserID)
				require.NotNil(t, req.Date)
				assert.True(t, req.Date.Equal(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)))
				return &entity.Takeaway{ID: uuid.New(), Content: req.Content}, nil
			})
		date := "2024-03-09"
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/takeaways",
			jsonBody(t, api.CreateTakeawayRequest{UserID: userID, Content: "focus", Date: &date})))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("invalid date", func(t *testing.T) {
		date := "yesterday"
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/takeaways",
			jsonBody(t, api.CreateTakeawayRequest{UserID: userID, Content: "focus", Date: &date})))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("list without range", func(t *testing.T) {
		ts.ta.EXPECT().List(gomock.Any(), userID, nil, nil).Return([]entity.Takeaway{}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/takeaways?userId="+userID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestCatalogHandlers(t *testing.T) {
	ts := newTestServer(t)
	t.Run("categories are public", func(t *testing.T) {
		ts.catalog.EXPECT().ListCategories(gomock.Any()).Return([]entity.Category{{ID: categoryID, Name: "Work"}}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/categories", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("duplicate project", func(t *testing.T) {
		ts.catalog.EXPECT().CreateProject(gomock.Any(), &service.CreateProjectRequest{
			UserID: userID, CategoryID: categoryID, Name: "Thesis",
		}).Return(nil, errorvalues.ErrProjectExists)
		rr := httptest.NewRecorder()
		ts.serv.CreateProject(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/projects",
			jsonBody(t, api.CreateProjectRequest{CategoryID: categoryID, Name: "Thesis"}))))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.ListProjects(rr, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("goal with deadline", func(t *testing.T) {
		ts.catalog.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *service.CreateGoalRequest) (*entity.Goal, error) {
				require.NotNil(t, req.Deadline)
				assert.Equal(t, 23, req.Deadline.Hour())
				return &entity.Goal{ID: uuid.New(), Title: req.Title}, nil
			})
		deadline := "2024-12-31"
		rr := httptest.NewRecorder()
		ts.serv.CreateGoal(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/goals",
			jsonBody(t, api.CreateGoalRequest{Title: "Read", TargetHours: 40, Deadline: &deadline}))))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("complete goal", func(t *testing.T) {
		goalID := uuid.New()
		ts.catalog.EXPECT().CompleteGoal(gomock.Any(), goalID, userID).Return(nil)
		rr := httptest.NewRecorder()
		r := authed(httptest.NewRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/complete", nil))
		r.SetPathValue("id", goalID.String())
		ts.serv.CompleteGoal(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)

		rr = httptest.NewRecorder()
		r.SetPathValue("id", "42")
		ts.serv.CompleteGoal(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestActivityHandlers(t *testing.T) {
	ts := newTestServer(t)
	view := &service.MonthView{Year: 2024, Month: 2, Days: 29}

	t.Run("month", func(t *testing.T) {
		ts.activity.EXPECT().GetMonth(gomock.Any(), february).Return(view, nil)
		rr := httptest.NewRecorder()
		ts.serv.GetActivityMonth(rr, monthRequest(http.MethodGet, "/api/v1/activity/2024/2", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var got service.MonthView
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, 29, got.Days)
	})
	t.Run("invalid month", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodGet, "/api/v1/activity/2024/13", nil)
		r.SetPathValue("month", "13")
		ts.serv.GetActivityMonth(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("set cell", func(t *testing.T) {
		ts.activity.EXPECT().SetCell(gomock.Any(), february, grid.CellID{Day: 3, Hour: 9}, "w").
			Return(&service.MonthView{Changes: grid.Batch{{}}}, nil)
		rr := httptest.NewRecorder()
		ts.serv.SetActivityCell(rr, monthRequest(http.MethodPut, "/api/v1/activity/2024/2/cells",
			jsonBody(t, api.SetCellRequest{Day: 3, Hour: 9, Value: "w"})))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("cell outside the month", func(t *testing.T) {
		ts.activity.EXPECT().SetCell(gomock.Any(), february, grid.CellID{Day: 30, Hour: 0}, "W").
			Return(nil, errorvalues.ErrInvalidCell)
		rr := httptest.NewRecorder()
		ts.serv.SetActivityCell(rr, monthRequest(http.MethodPut, "/api/v1/activity/2024/2/cells",
			jsonBody(t, api.SetCellRequest{Day: 30, Hour: 0, Value: "W"})))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("rectangle selection", func(t *testing.T) {
		from, to := grid.CellID{Day: 1, Hour: 8}, grid.CellID{Day: 2, Hour: 10}
		ts.activity.EXPECT().Select(gomock.Any(), february, service.SelectRequest{From: &from, To: &to}).Return(view, nil)
		rr := httptest.NewRecorder()
		ts.serv.SelectActivityCells(rr, monthRequest(http.MethodPost, "/api/v1/activity/2024/2/selection",
			jsonBody(t, api.SelectRequest{From: &from, To: &to})))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("nothing to undo", func(t *testing.T) {
		ts.activity.EXPECT().Undo(gomock.Any(), february).Return(nil, errorvalues.ErrNothingToUndo)
		rr := httptest.NewRecorder()
		ts.serv.UndoActivity(rr, monthRequest(http.MethodPost, "/api/v1/activity/2024/2/undo", nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("copy empty selection", func(t *testing.T) {
		ts.activity.EXPECT().Copy(gomock.Any(), february).Return(nil, errorvalues.ErrEmptySelection)
		rr := httptest.NewRecorder()
		ts.serv.CopyActivity(rr, monthRequest(http.MethodPost, "/api/v1/activity/2024/2/copy", nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("paste text", func(t *testing.T) {
		ts.activity.EXPECT().PasteText(gomock.Any(), february, "W\tW\nS\tS").Return(view, nil)
		rr := httptest.NewRecorder()
		ts.serv.PasteActivityText(rr, monthRequest(http.MethodPost, "/api/v1/activity/2024/2/paste-text",
			jsonBody(t, api.PasteTextRequest{Text: "W\tW\nS\tS"})))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("totals of a day", func(t *testing.T) {
		ts.activity.EXPECT().Totals(gomock.Any(), february, 5).Return(&service.TotalsReport{Day: grid.Totals{"W": 8}}, nil)
		rr := httptest.NewRecorder()
		ts.serv.GetActivityTotals(rr, monthRequest(http.MethodGet, "/api/v1/activity/2024/2/totals?day=5", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)

		rr = httptest.NewRecorder()
		ts.serv.GetActivityTotals(rr, monthRequest(http.MethodGet, "/api/v1/activity/2024/2/totals?day=fifth", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/activity/2024/2/redo", nil)
		r.SetPathValue("year", "2024")
		r.SetPathValue("month", "2")
		ts.serv.RedoActivity(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestNotesHandlers(t *testing.T) {
	ts := newTestServer(t)
	note := &entity.NoteItem{ID: "note-1", Content: "- buy milk", Type: entity.NoteTodo}

	t.Run("list with filters", func(t *testing.T) {
		ts.notes.EXPECT().List(gomock.Any(), february, service.ListNotesRequest{
			Filter: notes.Filter{
				Tag:        "#WORK",
				PinnedOnly: true,
				Sort:       true,
				Types:      []entity.NoteType{entity.NoteTodo, entity.NoteLink},
			},
			Mode: notes.ViewCompact,
		}).Return(&notes.View{Mode: notes.ViewCompact}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ListNotes(rr, monthRequest(http.MethodGet,
			"/api/v1/notes/2024/2?tag=%23WORK&pinned=true&sort=1&types=todo,link&mode=compact", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unknown type filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.ListNotes(rr, monthRequest(http.MethodGet, "/api/v1/notes/2024/2?types=poem", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("add", func(t *testing.T) {
		ts.notes.EXPECT().Add(gomock.Any(), february, 14, "- buy milk").Return(note, nil)
		rr := httptest.NewRecorder()
		ts.serv.AddNote(rr, monthRequest(http.MethodPost, "/api/v1/notes/2024/2",
			jsonBody(t, api.AddNoteRequest{Day: 14, Content: "- buy milk"})))
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("edit content and type", func(t *testing.T) {
		content, typ := "call mom", entity.NoteImportant
		gomock.InOrder(
			ts.notes.EXPECT().Edit(gomock.Any(), february, "note-1", content).Return(note, nil),
			ts.notes.EXPECT().SetType(gomock.Any(), february, "note-1", typ).Return(note, nil),
		)
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodPatch, "/api/v1/notes/2024/2/note-1",
			jsonBody(t, api.EditNoteRequest{Content: &content, Type: &typ}))
		r.SetPathValue("id", "note-1")
		ts.serv.EditNote(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("edit without changes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodPatch, "/api/v1/notes/2024/2/note-1", jsonBody(t, map[string]any{}))
		r.SetPathValue("id", "note-1")
		ts.serv.EditNote(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("restore active note", func(t *testing.T) {
		ts.notes.EXPECT().Restore(gomock.Any(), february, "note-1").Return(nil, errorvalues.ErrNoteNotDeleted)
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodPost, "/api/v1/notes/2024/2/note-1/restore", nil)
		r.SetPathValue("id", "note-1")
		ts.serv.RestoreNote(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("missing note", func(t *testing.T) {
		ts.notes.EXPECT().TogglePin(gomock.Any(), february, "note-9").Return(nil, errorvalues.ErrNoteNotFound)
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodPost, "/api/v1/notes/2024/2/note-9/toggle-pin", nil)
		r.SetPathValue("id", "note-9")
		ts.serv.TogglePin(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("permanent delete", func(t *testing.T) {
		ts.notes.EXPECT().PermanentDelete(gomock.Any(), february, "note-1").Return(nil)
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodDelete, "/api/v1/notes/2024/2/note-1/permanent", nil)
		r.SetPathValue("id", "note-1")
		ts.serv.PermanentDeleteNote(rr, r)
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})
	t.Run("empty bin", func(t *testing.T) {
		ts.notes.EXPECT().EmptyBin(gomock.Any(), february).Return(3, nil)
		rr := httptest.NewRecorder()
		ts.serv.EmptyBin(rr, monthRequest(http.MethodDelete, "/api/v1/notes/2024/2/bin", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]int
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 3, resp["removed"])
	})
	t.Run("merge", func(t *testing.T) {
		ts.notes.EXPECT().Merge(gomock.Any(), february, []string{"note-1", "note-2"}).Return(note, nil)
		rr := httptest.NewRecorder()
		ts.serv.MergeNotes(rr, monthRequest(http.MethodPost, "/api/v1/notes/2024/2/merge",
			jsonBody(t, api.MergeNotesRequest{IDs: []string{"note-1", "note-2"}})))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("split", func(t *testing.T) {
		ts.notes.EXPECT().Split(gomock.Any(), february, "note-1").Return([]entity.NoteItem{*note, *note}, nil)
		rr := httptest.NewRecorder()
		r := monthRequest(http.MethodPost, "/api/v1/notes/2024/2/note-1/split", nil)
		r.SetPathValue("id", "note-1")
		ts.serv.SplitNote(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("suggestions default to the end of text", func(t *testing.T) {
		ts.notes.EXPECT().Suggest(gomock.Any(), february, "plan #wo", 8).Return([]string{"#WORK"}, nil)
		rr := httptest.NewRecorder()
		ts.serv.SuggestTags(rr, monthRequest(http.MethodGet, "/api/v1/notes/2024/2/suggestions?text=plan+%23wo", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var tags []string
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&tags))
		assert.Equal(t, []string{"#WORK"}, tags)
	})
}

func TestSettingsAndBackupHandlers(t *testing.T) {
	ts := newTestServer(t)
	categories := []entity.DynamicCategory{{Key: "W", Name: "Work", Color: "#3366ff"}}

	t.Run("update", func(t *testing.T) {
		ts.settings.EXPECT().Update(gomock.Any(), userID, categories).Return(&entity.Settings{Categories: categories}, nil)
		rr := httptest.NewRecorder()
		ts.serv.UpdateSettings(rr, authed(httptest.NewRequest(http.MethodPut, "/api/v1/settings",
			jsonBody(t, api.UpdateSettingsRequest{Categories: categories}))))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("duplicate key", func(t *testing.T) {
		ts.settings.EXPECT().Update(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrDuplicateCategoryKey)
		rr := httptest.NewRecorder()
		ts.serv.UpdateSettings(rr, authed(httptest.NewRequest(http.MethodPut, "/api/v1/settings",
			jsonBody(t, api.UpdateSettingsRequest{Categories: append(categories, categories...)}))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("export", func(t *testing.T) {
		ts.backup.EXPECT().Export(gomock.Any(), userID).Return(&entity.Backup{
			ExportedAt: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
			Data:       map[string]string{"twentyfourseven-2024-2-3-9": "W"},
		}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ExportBackup(rr, authed(httptest.NewRequest(http.MethodGet, "/api/v1/backup", nil)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Contains(t, rr.Header().Get("Content-Disposition"), "2024-03-10")
	})
	t.Run("import exported document", func(t *testing.T) {
		ts.backup.EXPECT().Import(gomock.Any(), userID, map[string]string{"twentyfourseven-2024-2-3-9": "W", "junk": "x"}).
			Return(&service.ImportResult{Imported: 1, Skipped: []string{"junk"}}, nil)
		rr := httptest.NewRecorder()
		ts.serv.ImportBackup(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/backup",
			strings.NewReader(`{"exportedAt":"2024-03-10T12:00:00Z","data":{"twentyfourseven-2024-2-3-9":"W","junk":"x"}}`))))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var result service.ImportResult
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
		assert.Equal(t, 1, result.Imported)
	})
	t.Run("nothing valid", func(t *testing.T) {
		ts.backup.EXPECT().Import(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrNothingToImport)
		rr := httptest.NewRecorder()
		ts.serv.ImportBackup(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/backup",
			strings.NewReader(`{"junk":"x"}`))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("corrupted file", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.serv.ImportBackup(rr, authed(httptest.NewRequest(http.MethodPost, "/api/v1/backup",
			strings.NewReader(`corrupted`))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rr := httptest.NewRecorder()
	ts.serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}
