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

func TestCatalogProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mocks.NewMockCategoriesRepositoryI(ctrl)
	projects := mocks.NewMockProjectsRepositoryI(ctrl)
	goals := mocks.NewMockGoalsRepositoryI(ctrl)
	s := service.NewCatalogService(categories, projects, goals)
	ctx := context.Background()
	projectID := uuid.New()
	project := &entity.Project{ID: projectID, UserID: userID, CategoryID: categoryID, Name: "Thesis"}

	t.Run("list categories", func(t *testing.T) {
		categories.EXPECT().List(gomock.Any()).Return([]entity.Category{{ID: categoryID, Name: "Work"}}, nil)
		list, err := s.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	testCases := []struct {
		Desc         string
		Req          service.CreateProjectRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req:  service.CreateProjectRequest{UserID: userID, CategoryID: categoryID, Name: " Thesis "},
			MockPrepFunc: func() {
				projects.EXPECT().Create(gomock.Any(), &entity.Project{UserID: userID, CategoryID: categoryID, Name: "Thesis"}).
					Return(projectID, nil)
				projects.EXPECT().GetByID(gomock.Any(), projectID).Return(project, nil)
			},
		},
		{
			Desc:  "duplicate name",
			Req:   service.CreateProjectRequest{UserID: userID, CategoryID: categoryID, Name: "Thesis"},
			Error: errorvalues.ErrProjectExists,
			MockPrepFunc: func() {
				projects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrProjectExists)
			},
		},
		{
			Desc:  "unknown category",
			Req:   service.CreateProjectRequest{UserID: userID, CategoryID: uuid.New(), Name: "Thesis"},
			Error: errorvalues.ErrCategoryNotFound,
			MockPrepFunc: func() {
				projects.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrCategoryNotFound)
			},
		},
		{
			Desc:         "blank name",
			Req:          service.CreateProjectRequest{UserID: userID, CategoryID: categoryID, Name: "   "},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			created, err := s.CreateProject(ctx, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, project, created)
		})
	}
}

func TestCatalogGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	goals := mocks.NewMockGoalsRepositoryI(ctrl)
	s := service.NewCatalogService(mocks.NewMockCategoriesRepositoryI(ctrl), mocks.NewMockProjectsRepositoryI(ctrl), goals)
	ctx := context.Background()
	goalID := uuid.New()

	t.Run("create", func(t *testing.T) {
		goals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(goalID, nil)
		goal, err := s.CreateGoal(ctx, &service.CreateGoalRequest{UserID: userID, Title: " Read 10 books ", TargetHours: 40})
		require.NoError(t, err)
		assert.Equal(t, goalID, goal.ID)
		assert.Equal(t, "Read 10 books", goal.Title)
	})
	t.Run("non positive target", func(t *testing.T) {
		_, err := s.CreateGoal(ctx, &service.CreateGoalRequest{UserID: userID, Title: "Read", TargetHours: 0})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("list includes completed", func(t *testing.T) {
		goals.EXPECT().ListByUser(gomock.Any(), userID, false).Return([]entity.Goal{{ID: goalID, Completed: true}}, nil)
		list, err := s.ListGoals(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
	t.Run("complete", func(t *testing.T) {
		goals.EXPECT().Complete(gomock.Any(), goalID, userID).Return(nil)
		assert.NoError(t, s.CompleteGoal(ctx, goalID, userID))
		goals.EXPECT().Complete(gomock.Any(), goalID, userID).Return(errorvalues.ErrGoalNotFound)
		assert.ErrorIs(t, s.CompleteGoal(ctx, goalID, userID), errorvalues.ErrGoalNotFound)
		goals.EXPECT().Complete(gomock.Any(), goalID, userID).Return(errors.New("db error"))
		assert.Error(t, s.CompleteGoal(ctx, goalID, userID))
	})
}

func TestTakeaways(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
	loc := time.FixedZone("UTC-5", -5*60*60)
	// 02:00 UTC is still the previous evening in loc
	now := time.Date(2024, time.March, 10, 2, 0, 0, 0, time.UTC)
	s := service.NewTakeawayService(repo, loc).WithClock(fixedClock(now))
	ctx := context.Background()
	takeawayID := uuid.New()

	t.Run("defaults to local today", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ta *entity.Takeaway) (uuid.UUID, error) {
				assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, loc), ta.Date)
				return takeawayID, nil
			})
		ta, err := s.Create(ctx, &service.CreateTakeawayRequest{UserID: userID, Content: " focus beats hours "})
		require.NoError(t, err)
		assert.Equal(t, takeawayID, ta.ID)
		assert.Equal(t, "focus beats hours", ta.Content)
	})
	t.Run("explicit date is truncated", func(t *testing.T) {
		date := time.Date(2024, time.February, 1, 18, 45, 0, 0, loc)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ta *entity.Takeaway) (uuid.UUID, error) {
				assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), ta.Date)
				return takeawayID, nil
			})
		_, err := s.Create(ctx, &service.CreateTakeawayRequest{UserID: userID, Content: "note", Date: &date})
		require.NoError(t, err)
	})
	t.Run("empty content", func(t *testing.T) {
		_, err := s.Create(ctx, &service.CreateTakeawayRequest{UserID: userID, Content: "  "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("list", func(t *testing.T) {
		from, to := now.AddDate(0, 0, -7), now
		repo.EXPECT().List(gomock.Any(), userID, &from, &to).Return([]entity.Takeaway{{ID: takeawayID}}, nil)
		list, err := s.List(ctx, userID, &from, &to)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		_, err = s.List(ctx, userID, &to, &from)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)
	})
}
