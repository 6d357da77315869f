package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository/mocks"
	"github.com/limbo/twentyfourseven/internal/service"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	s := service.NewUserService(repo)
	ctx := context.Background()

	testCases := []struct {
		Desc         string
		Req          service.RegisterRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "success",
			Req:  service.RegisterRequest{Email: " Alice@Example.com ", Name: "alice", Password: "password123"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, u *entity.User) (uuid.UUID, error) {
						assert.Equal(t, "alice@example.com", u.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))
						return userID, nil
					})
			},
		},
		{
			Desc:  "email taken",
			Req:   service.RegisterRequest{Email: "alice@example.com", Name: "alice", Password: "password123"},
			Error: errorvalues.ErrUserExists,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserExists)
			},
		},
		{
			Desc:         "bad email",
			Req:          service.RegisterRequest{Email: "alice", Name: "alice", Password: "password123"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "short password",
			Req:          service.RegisterRequest{Email: "alice@example.com", Name: "alice", Password: "short"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "name starts with digit",
			Req:          service.RegisterRequest{Email: "alice@example.com", Name: "1alice", Password: "password123"},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := s.Register(ctx, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	s := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash("password123")
	require.NoError(t, err)
	stored := &entity.User{ID: userID, Email: "alice@example.com", Name: "alice", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
		user, err := s.Login(ctx, "ALICE@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(stored, nil)
		_, err := s.Login(ctx, "alice@example.com", "password124")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown email", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "bob@example.com").Return(nil, errorvalues.ErrUserNotFound)
		_, err := s.Login(ctx, "bob@example.com", "password123")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("db error", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("db error"))
		_, err := s.Login(ctx, "alice@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("get by id", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), userID).Return(stored, nil)
		user, err := s.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, stored, user)

		repo.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
		_, err = s.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
