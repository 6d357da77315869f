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

func TestTakeawayCreate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	// 22:30 UTC is already the next day in loc
	now := time.Date(2024, time.May, 4, 22, 30, 0, 0, time.UTC)
	uid := uuid.New()
	takeawayID := uuid.New()

	t.Run("date defaults to local today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
		s := service.NewTakeawayService(repo, loc).WithClock(func() time.Time { return now })

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk *entity.Takeaway) (uuid.UUID, error) {
				assert.Equal(t, "learned pgx batching", tk.Content)
				assert.True(t, tk.Date.Equal(time.Date(2024, time.May, 5, 0, 0, 0, 0, loc)))
				return takeawayID, nil
			})
		tk, err := s.Create(context.Background(), &service.CreateTakeawayRequest{
			UserID:  uid,
			Content: "  learned pgx batching\n",
		})
		require.NoError(t, err)
		assert.Equal(t, takeawayID, tk.ID)
	})
	t.Run("explicit date is truncated to its day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
		s := service.NewTakeawayService(repo, loc).WithClock(func() time.Time { return now })

		date := time.Date(2024, time.April, 1, 15, 0, 0, 0, loc)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk *entity.Takeaway) (uuid.UUID, error) {
				assert.True(t, tk.Date.Equal(time.Date(2024, time.April, 1, 0, 0, 0, 0, loc)))
				return takeawayID, nil
			})
		_, err := s.Create(context.Background(), &service.CreateTakeawayRequest{
			UserID: uid, Content: "retro", Date: &date,
		})
		require.NoError(t, err)
	})
	t.Run("blank content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
		s := service.NewTakeawayService(repo, loc)

		_, err := s.Create(context.Background(), &service.CreateTakeawayRequest{UserID: uid, Content: "   "})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
		s := service.NewTakeawayService(repo, loc)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserNotFound)
		_, err := s.Create(context.Background(), &service.CreateTakeawayRequest{UserID: uid, Content: "x"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestTakeawayList(t *testing.T) {
	uid := uuid.New()
	from := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTakeawaysRepositoryI(ctrl)
	s := service.NewTakeawayService(repo, time.UTC)

	_, err := s.List(context.Background(), uid, &to, &from)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidRange)

	want := []entity.Takeaway{{ID: uuid.New(), UserID: uid, Content: "a"}}
	repo.EXPECT().List(gomock.Any(), uid, &from, &to).Return(want, nil)
	got, err := s.List(context.Background(), uid, &from, &to)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	repo.EXPECT().List(gomock.Any(), uid, nil, nil).Return(nil, errors.New("conn refused"))
	_, err = s.List(context.Background(), uid, nil, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errorvalues.ErrInvalidRange)
}
