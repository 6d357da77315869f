package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/twentyfourseven/internal/error_values"
	"github.com/limbo/twentyfourseven/internal/repository"
	"github.com/limbo/twentyfourseven/pkg/entity"
)

type TimerService struct {
	repo repository.TimeEntriesRepositoryI
	now  func() time.Time
}

func NewTimerService(repo repository.TimeEntriesRepositoryI) *TimerService {
	if repo == nil {
		log.Fatal("on timer service provided nil repo")
	}
	return &TimerService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the time source.
func (ts *TimerService) WithClock(now func() time.Time) *TimerService {
	ts.now = now
	return ts
}

func (ts *TimerService) Start(ctx context.Context, req *StartTimerRequest) (*entity.TimeEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	active, err := ts.repo.GetActive(ctx, req.UserID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if active != nil {
		return nil, errorvalues.ErrActiveTimerExists
	}
	id, err := ts.repo.Create(ctx, &entity.TimeEntry{
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		ProjectID:  req.ProjectID,
		StartTime:  ts.now().UTC(),
		Notes:      req.Notes,
	})
	if err != nil {
		switch {
		// A concurrent start lost the race on the one-active-timer index
		case errors.Is(err, errorvalues.ErrActiveTimerExists),
			errors.Is(err, errorvalues.ErrCategoryNotFound),
			errors.Is(err, errorvalues.ErrProjectNotFound),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	entry, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entry, nil
}

func (ts *TimerService) Stop(ctx context.Context, req *StopTimerRequest) (*entity.TimeEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	active, err := ts.repo.GetActive(ctx, req.UserID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if active == nil || active.ID != req.EntryID {
		return nil, errorvalues.ErrActiveTimerNotFound
	}
	end := ts.now().UTC()
	duration := int64(end.Sub(active.StartTime) / time.Second)
	if duration < 0 {
		duration = 0
	}
	err = ts.repo.Close(ctx, active.ID, req.UserID, end, duration, req.Notes)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActiveTimerNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	entry, err := ts.repo.GetByID(ctx, active.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entry, nil
}

func (ts *TimerService) GetActive(ctx context.Context, uid uuid.UUID) (*entity.TimeEntry, error) {
	entry, err := ts.repo.GetActive(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entry, nil
}

func (ts *TimerService) ListEntries(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.TimeEntry, error) {
	if !from.Before(to) {
		return nil, errorvalues.ErrInvalidRange
	}
	entries, err := ts.repo.List(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}
