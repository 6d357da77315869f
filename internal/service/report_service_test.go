package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository/mocks"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

func TestBuildReport(t *testing.T) {
	work := &entity.Category{ID: uuid.New(), Name: "Work"}
	health := &entity.Category{ID: uuid.New(), Name: "Health"}
	learning := &entity.Category{ID: uuid.New(), Name: "Learning"}
	entry := func(c *entity.Category, seconds int64) entity.TimeEntry {
		end := startedAt.Add(time.Duration(seconds) * time.Second)
		return entity.TimeEntry{CategoryID: c.ID, Category: c, StartTime: startedAt, EndTime: &end, Duration: ptr(seconds)}
	}
	entries := []entity.TimeEntry{
		entry(health, 600),
		entry(work, 1200),
		entry(learning, 600),
		entry(work, 600),
		{CategoryID: work.ID, StartTime: startedAt},
	}
	goals := []entity.Goal{{Title: "Ship", Progress: 40}}

	report := service.BuildReport(entries, goals, startedAt, stoppedAt)
	assert.Equal(t, int64(3000), report.TotalDuration)
	assert.Equal(t, 4, report.EntryCount)
	require.Len(t, report.CategoryData, 3)
	assert.Equal(t, "Work", report.CategoryData[0].Category.Name)
	assert.Equal(t, int64(1800), report.CategoryData[0].TotalDuration)
	assert.Equal(t, 2, report.CategoryData[0].EntryCount)
	assert.Equal(t, 60.0, report.CategoryData[0].Percentage)
	// equal durations fall back to the category name
	assert.Equal(t, "Health", report.CategoryData[1].Category.Name)
	assert.Equal(t, "Learning", report.CategoryData[2].Category.Name)
	assert.Equal(t, 20.0, report.CategoryData[2].Percentage)
	require.Len(t, report.Goals, 1)
	assert.Zero(t, report.Goals[0].Progress)
	assert.Equal(t, entity.DateRange{Start: startedAt, End: stoppedAt}, report.DateRange)

	t.Run("percentages are rounded", func(t *testing.T) {
		report := service.BuildReport([]entity.TimeEntry{entry(work, 1), entry(health, 2)}, nil, startedAt, stoppedAt)
		assert.Equal(t, 66.67, report.CategoryData[0].Percentage)
		assert.Equal(t, 33.33, report.CategoryData[1].Percentage)
	})
	t.Run("empty", func(t *testing.T) {
		report := service.BuildReport(nil, nil, startedAt, stoppedAt)
		assert.NotNil(t, report.CategoryData)
		assert.NotNil(t, report.Goals)
		assert.Zero(t, report.TotalDuration)
	})
}

func TestDashboardBounds(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// Wednesday 01:30 local, still Tuesday in UTC
	now := time.Date(2024, time.March, 12, 22, 30, 0, 0, time.UTC)

	today, tomorrow, week := service.DashboardBounds(now, loc, time.Monday)
	assert.Equal(t, time.Date(2024, time.March, 13, 0, 0, 0, 0, loc), today)
	assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, loc), tomorrow)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, loc), week)

	_, _, week = service.DashboardBounds(now, loc, time.Sunday)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, loc), week)

	_, _, week = service.DashboardBounds(now, loc, time.Wednesday)
	assert.Equal(t, today, week)
}

func TestGetReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mocks.NewMockTimeEntriesRepositoryI(ctrl)
	goals := mocks.NewMockGoalsRepositoryI(ctrl)
	s := service.NewReportService(entries, goals, time.UTC, time.Monday)
	ctx := context.Background()

	t.Run("invalid range", func(t *testing.T) {
		_, err := s.GetReport(ctx, userID, stoppedAt, stoppedAt)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
	t.Run("only incomplete goals", func(t *testing.T) {
		entries.EXPECT().ListClosed(gomock.Any(), userID, startedAt, stoppedAt).Return(nil, nil)
		goals.EXPECT().ListByUser(gomock.Any(), userID, true).Return([]entity.Goal{{Title: "Run"}}, nil)
		report, err := s.GetReport(ctx, userID, startedAt, stoppedAt)
		assert.NoError(t, err)
		assert.Len(t, report.Goals, 1)
	})
	t.Run("db error", func(t *testing.T) {
		entries.EXPECT().ListClosed(gomock.Any(), userID, startedAt, stoppedAt).Return(nil, errors.New("db error"))
		_, err := s.GetReport(ctx, userID, startedAt, stoppedAt)
		assert.Error(t, err)
	})
}

func TestGetDashboardData(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := mocks.NewMockTimeEntriesRepositoryI(ctrl)
	goals := mocks.NewMockGoalsRepositoryI(ctrl)
	// Sunday
	s := service.NewReportService(entries, goals, time.UTC, time.Monday).WithClock(fixedClock(stoppedAt))
	ctx := context.Background()

	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	last := today.AddDate(0, 0, 1).Add(-time.Microsecond)
	weekStart := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	running := &entity.TimeEntry{ID: entryID, StartTime: stoppedAt}

	entries.EXPECT().ListClosed(gomock.Any(), userID, today, last).Return([]entity.TimeEntry{closedEntry(startedAt, 30)}, nil)
	entries.EXPECT().ListClosed(gomock.Any(), userID, weekStart, last).Return([]entity.TimeEntry{
		closedEntry(startedAt, 30),
		closedEntry(weekStart, 60),
	}, nil)
	goals.EXPECT().ListByUser(gomock.Any(), userID, true).Return(nil, nil).Times(2)
	entries.EXPECT().GetActive(gomock.Any(), userID).Return(running, nil)

	dashboard, err := s.GetDashboardData(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), dashboard.Today.TotalDuration)
	assert.Equal(t, int64(5400), dashboard.Week.TotalDuration)
	assert.Equal(t, running, dashboard.ActiveTimer)
}
